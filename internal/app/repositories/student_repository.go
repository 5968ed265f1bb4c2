package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/acadservice/internal/app/models"
	"github.com/yigit/acadservice/internal/db"
	"github.com/yigit/acadservice/internal/pkg/logger"
)

// GradeRow is one joined mahasiswa/krs/mata_kuliah row
type GradeRow struct {
	Student models.Student
	Record  models.GradeRecord
}

// StudentRepository reads academic records. Every method takes the Querier
// to run on, normally the request's transaction.
type StudentRepository struct {
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		sb: statementBuilder(),
	}
}

// ListStudents retrieves all students ordered by NIM
func (r *StudentRepository) ListStudents(ctx context.Context, q db.Querier) ([]*models.Student, error) {
	sql, args, err := r.sb.Select("nim", "nama", "jurusan", "angkatan").
		From("mahasiswa").
		OrderBy("nim ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.NIM, &s.Nama, &s.Jurusan, &s.Angkatan); err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// GetGradeRows retrieves every graded course of a student joined with its credits.
// A student without krs rows, or an unknown NIM, yields an empty slice.
func (r *StudentRepository) GetGradeRows(ctx context.Context, q db.Querier, nim string) ([]GradeRow, error) {
	sql, args, err := r.sb.Select("m.nim", "m.nama", "m.jurusan", "m.angkatan", "krs.kode_mk", "krs.nilai", "mk.sks").
		From("mahasiswa m").
		Join("krs ON krs.nim = m.nim").
		Join("mata_kuliah mk ON mk.kode_mk = krs.kode_mk").
		Where(squirrel.Eq{"m.nim": nim}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building grade rows SQL")
		return nil, fmt.Errorf("failed to build grade rows query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("nim", nim).Msg("Error executing grade rows query")
		return nil, fmt.Errorf("error querying grade rows: %w", err)
	}
	defer rows.Close()

	var out []GradeRow
	for rows.Next() {
		var row GradeRow
		if err := rows.Scan(
			&row.Student.NIM, &row.Student.Nama, &row.Student.Jurusan, &row.Student.Angkatan,
			&row.Record.KodeMK, &row.Record.Nilai, &row.Record.SKS,
		); err != nil {
			logger.Error().Err(err).Str("nim", nim).Msg("Error scanning grade row")
			return nil, fmt.Errorf("error scanning grade row: %w", err)
		}
		row.Record.NIM = row.Student.NIM
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("nim", nim).Msg("Error iterating grade rows")
		return nil, fmt.Errorf("error iterating grade rows: %w", err)
	}

	return out, nil
}

// StudentExists checks whether a mahasiswa row exists for the NIM
func (r *StudentRepository) StudentExists(ctx context.Context, q db.Querier, nim string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("mahasiswa").
		Where(squirrel.Eq{"nim": nim}).
		Prefix("SELECT EXISTS (").Suffix(")").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student exists SQL")
		return false, fmt.Errorf("failed to build student existence query: %w", err)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("nim", nim).Msg("Error checking student existence")
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}
