package seed

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/acadservice/internal/app/models"
	"github.com/yigit/acadservice/internal/db"
)

// DemoStudents are inserted by CreateDemoData. 2201003 has no grades.
var DemoStudents = []appModels.Student{
	{NIM: "2201001", Nama: "Budi Santoso", Jurusan: "Informatika", Angkatan: 2022},
	{NIM: "2201002", Nama: "Siti Rahmawati", Jurusan: "Sistem Informasi", Angkatan: 2022},
	{NIM: "2201003", Nama: "Andi Wijaya", Jurusan: "Informatika", Angkatan: 2023},
}

// DemoCourses are inserted by CreateDemoData
var DemoCourses = []appModels.CourseCredits{
	{KodeMK: "IF101", SKS: 3},
	{KodeMK: "IF102", SKS: 4},
	{KodeMK: "IF201", SKS: 2},
}

// DemoGrades are inserted by CreateDemoData
var DemoGrades = []appModels.GradeRecord{
	{NIM: "2201001", KodeMK: "IF101", Nilai: "A"},
	{NIM: "2201001", KodeMK: "IF102", Nilai: "B"},
	{NIM: "2201002", KodeMK: "IF101", Nilai: "B+"},
	{NIM: "2201002", KodeMK: "IF201", Nilai: "A-"},
}

// insertGradeSQL adds one krs row unless the student already has a grade for
// the course. krs has no unique key, so ON CONFLICT cannot guard it.
const insertGradeSQL = `INSERT INTO krs (nim, kode_mk, nilai)
SELECT $1::varchar, $2::varchar, $3::varchar
WHERE NOT EXISTS (SELECT 1 FROM krs WHERE nim = $1 AND kode_mk = $2)`

// CreateDemoData inserts a small set of students, courses and grades in one
// transaction. Rows that already exist are left untouched, so running it on
// every start is safe.
func CreateDemoData(ctx context.Context, b db.TxBeginner, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating demo academic data...")
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	students := sb.Insert("mahasiswa").Columns("nim", "nama", "jurusan", "angkatan")
	for _, s := range DemoStudents {
		students = students.Values(s.NIM, s.Nama, s.Jurusan, s.Angkatan)
	}

	courses := sb.Insert("mata_kuliah").Columns("kode_mk", "sks")
	for _, c := range DemoCourses {
		courses = courses.Values(c.KodeMK, c.SKS)
	}

	steps := []struct {
		table string
		query squirrel.InsertBuilder
	}{
		{"mahasiswa", students},
		{"mata_kuliah", courses},
	}

	err := db.WithTransaction(ctx, b, pgx.TxOptions{}, func(ctx context.Context, tx pgx.Tx) error {
		for _, step := range steps {
			sql, args, err := step.query.Suffix("ON CONFLICT DO NOTHING").ToSql()
			if err != nil {
				return fmt.Errorf("failed to build %s seed query: %w", step.table, err)
			}
			tag, err := tx.Exec(ctx, sql, args...)
			if err != nil {
				lgr.Error().Err(err).Str("table", step.table).Msg("Error seeding table")
				return fmt.Errorf("failed to seed %s: %w", step.table, err)
			}
			lgr.Debug().Str("table", step.table).Int64("inserted", tag.RowsAffected()).Msg("Seeded table")
		}

		var inserted int64
		for _, g := range DemoGrades {
			tag, err := tx.Exec(ctx, insertGradeSQL, g.NIM, g.KodeMK, g.Nilai)
			if err != nil {
				lgr.Error().Err(err).Str("table", "krs").Str("nim", g.NIM).Msg("Error seeding table")
				return fmt.Errorf("failed to seed krs: %w", err)
			}
			inserted += tag.RowsAffected()
		}
		lgr.Debug().Str("table", "krs").Int64("inserted", inserted).Msg("Seeded table")
		return nil
	})
	if err != nil {
		return err
	}

	lgr.Info().Msg("Demo data check/creation finished.")
	return nil
}
