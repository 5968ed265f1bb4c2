package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/acadservice/internal/app/models"
	"github.com/yigit/acadservice/internal/app/repositories"
	"github.com/yigit/acadservice/internal/db"
	"github.com/yigit/acadservice/internal/pkg/apperrors"
	"github.com/yigit/acadservice/internal/pkg/dberrors"
	"github.com/yigit/acadservice/internal/pkg/grading"
)

// AcademicService defines the read operations over academic records
type AcademicService interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	CalculateIPS(ctx context.Context, nim string) (*models.GpaResult, error)
}

// StudentStore is the record store the service reads from
type StudentStore interface {
	ListStudents(ctx context.Context, q db.Querier) ([]*models.Student, error)
	GetGradeRows(ctx context.Context, q db.Querier, nim string) ([]repositories.GradeRow, error)
	StudentExists(ctx context.Context, q db.Querier, nim string) (bool, error)
}

// academicServiceImpl implements the AcademicService interface
type academicServiceImpl struct {
	txBeginner db.TxBeginner
	store      StudentStore
	logger     zerolog.Logger
}

// NewAcademicService creates a new academic service instance
func NewAcademicService(txBeginner db.TxBeginner, store StudentStore, logger zerolog.Logger) AcademicService {
	return &academicServiceImpl{
		txBeginner: txBeginner,
		store:      store,
		logger:     logger,
	}
}

// ListStudents retrieves every student
func (s *academicServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	var students []*models.Student
	err := db.WithTransaction(ctx, s.txBeginner, db.ReadOnly, func(ctx context.Context, tx pgx.Tx) error {
		var err error
		students, err = s.store.ListStudents(ctx, tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", dberrors.Classify(err))
	}
	return students, nil
}

// CalculateIPS computes the grade point average of the student with the given NIM.
// It fails with apperrors.ErrStudentNotFound when no such student exists and with
// apperrors.ErrNoAcademicRecords when the student has no graded courses.
func (s *academicServiceImpl) CalculateIPS(ctx context.Context, nim string) (*models.GpaResult, error) {
	nim = strings.TrimSpace(nim)
	if nim == "" {
		return nil, fmt.Errorf("%w: nim cannot be empty", apperrors.ErrValidationFailed)
	}

	var result models.GpaResult
	err := db.WithTransaction(ctx, s.txBeginner, db.ReadOnly, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := s.store.GetGradeRows(ctx, tx, nim)
		if err != nil {
			return err
		}

		if len(rows) == 0 {
			exists, err := s.store.StudentExists(ctx, tx, nim)
			if err != nil {
				return err
			}
			if !exists {
				return apperrors.NewAcademicNotFoundError(apperrors.ErrStudentNotFound, nim)
			}
			return apperrors.NewAcademicNotFoundError(apperrors.ErrNoAcademicRecords, nim)
		}

		records := make([]models.GradeRecord, 0, len(rows))
		for _, r := range rows {
			records = append(records, r.Record)
		}
		result = grading.Compute(rows[0].Student, records)
		return nil
	})
	if err != nil {
		return nil, dberrors.Classify(err)
	}

	s.logger.Debug().
		Str("nim", result.NIM).
		Int("totalSks", result.TotalSKS).
		Float64("ips", result.IPS).
		Msg("IPS calculated")

	return &result, nil
}
