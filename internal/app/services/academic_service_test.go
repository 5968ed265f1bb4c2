package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/acadservice/internal/app/models"
	"github.com/yigit/acadservice/internal/app/repositories"
	"github.com/yigit/acadservice/internal/db"
	"github.com/yigit/acadservice/internal/pkg/apperrors"
)

var gradeColumns = []string{"nim", "nama", "jurusan", "angkatan", "kode_mk", "nilai", "sks"}

func newService(t *testing.T) (AcademicService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewAcademicService(mock, repositories.NewStudentRepository(), zerolog.Nop()), mock
}

func TestCalculateIPS(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectBeginTx(db.ReadOnly)
	mock.ExpectQuery("JOIN krs").
		WithArgs("2201001").
		WillReturnRows(pgxmock.NewRows(gradeColumns).
			AddRow("2201001", "Budi Santoso", "Informatika", 2022, "IF101", "A", 3).
			AddRow("2201001", "Budi Santoso", "Informatika", 2022, "IF102", "B", 4))
	mock.ExpectCommit()

	res, err := svc.CalculateIPS(context.Background(), " 2201001 ")
	require.NoError(t, err)
	assert.Equal(t, &models.GpaResult{
		NIM:      "2201001",
		Nama:     "Budi Santoso",
		Jurusan:  "Informatika",
		TotalSKS: 7,
		IPS:      3.43,
	}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalculateIPSStudentWithoutGrades(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectBeginTx(db.ReadOnly)
	mock.ExpectQuery("JOIN krs").WithArgs("2201003").WillReturnRows(pgxmock.NewRows(gradeColumns))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("2201003").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	res, err := svc.CalculateIPS(context.Background(), "2201003")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperrors.ErrNoAcademicRecords)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.EqualError(t, err, "Data akademik untuk NIM 2201003 tidak ditemukan")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalculateIPSUnknownStudent(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectBeginTx(db.ReadOnly)
	mock.ExpectQuery("JOIN krs").WithArgs("0000").WillReturnRows(pgxmock.NewRows(gradeColumns))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("0000").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	_, err := svc.CalculateIPS(context.Background(), "0000")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrNoAcademicRecords)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalculateIPSBlankNIM(t *testing.T) {
	svc, mock := newService(t)

	_, err := svc.CalculateIPS(context.Background(), "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalculateIPSQueryError(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectBeginTx(db.ReadOnly)
	mock.ExpectQuery("JOIN krs").WithArgs("2201001").
		WillReturnError(&pgconn.PgError{Code: "42703", Message: `column "nilai" does not exist`})
	mock.ExpectRollback()

	_, err := svc.CalculateIPS(context.Background(), "2201001")
	assert.ErrorIs(t, err, apperrors.ErrQuery)
	assert.NotErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalculateIPSConnectionError(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectBeginTx(db.ReadOnly).WillReturnError(&pgconn.PgError{Code: "08001", Message: "could not connect"})

	_, err := svc.CalculateIPS(context.Background(), "2201001")
	assert.ErrorIs(t, err, apperrors.ErrConnection)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStudents(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectBeginTx(db.ReadOnly)
	mock.ExpectQuery("FROM mahasiswa").
		WillReturnRows(pgxmock.NewRows([]string{"nim", "nama", "jurusan", "angkatan"}).
			AddRow("2201001", "Budi Santoso", "Informatika", 2022))
	mock.ExpectCommit()

	students, err := svc.ListStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Budi Santoso", students[0].Nama)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStudentsError(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectBeginTx(db.ReadOnly)
	mock.ExpectQuery("FROM mahasiswa").WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	_, err := svc.ListStudents(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
