package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/acadservice/internal/app/models"
	"github.com/yigit/acadservice/internal/app/models/dto"
	"github.com/yigit/acadservice/internal/pkg/apperrors"
)

type fakeAcademicService struct {
	students []*models.Student
	results  map[string]*models.GpaResult
	err      error
	calls    []string
}

func (f *fakeAcademicService) ListStudents(context.Context) ([]*models.Student, error) {
	return f.students, f.err
}

func (f *fakeAcademicService) CalculateIPS(_ context.Context, nim string) (*models.GpaResult, error) {
	f.calls = append(f.calls, nim)
	if f.err != nil {
		return nil, f.err
	}
	if r, ok := f.results[nim]; ok {
		return r, nil
	}
	return nil, apperrors.NewAcademicNotFoundError(apperrors.ErrStudentNotFound, nim)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newRouter(svc *fakeAcademicService, pinger fakePinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	academic := NewAcademicController(svc)
	health := NewHealthController(pinger)
	health.now = func() time.Time { return time.Date(2025, 4, 23, 12, 1, 5, 0, time.UTC) }

	r.GET("/health", health.Health)
	r.GET("/ready", health.Ready)
	r.GET("/api/acad/mahasiswa", academic.GetAllStudents)
	r.GET("/api/acad/ips", academic.CalculateIPS)
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestGetAllStudents(t *testing.T) {
	svc := &fakeAcademicService{students: []*models.Student{
		{NIM: "2201001", Nama: "Budi Santoso", Jurusan: "Informatika", Angkatan: 2022},
	}}

	w := get(newRouter(svc, fakePinger{}), "/api/acad/mahasiswa")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"nim":"2201001","nama":"Budi Santoso","jurusan":"Informatika","angkatan":2022}]`, w.Body.String())
}

func TestGetAllStudentsEmpty(t *testing.T) {
	w := get(newRouter(&fakeAcademicService{}, fakePinger{}), "/api/acad/mahasiswa")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetAllStudentsDatabaseError(t *testing.T) {
	svc := &fakeAcademicService{err: fmt.Errorf("%w: password authentication failed", apperrors.ErrConnection)}

	w := get(newRouter(svc, fakePinger{}), "/api/acad/mahasiswa")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestCalculateIPS(t *testing.T) {
	svc := &fakeAcademicService{results: map[string]*models.GpaResult{
		"2201001": {NIM: "2201001", Nama: "Budi Santoso", Jurusan: "Informatika", TotalSKS: 7, IPS: 3.43},
	}}

	w := get(newRouter(svc, fakePinger{}), "/api/acad/ips?nim=2201001")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"nim":"2201001","nama":"Budi Santoso","jurusan":"Informatika","total_sks":7,"ips":3.43}`, w.Body.String())
	assert.Equal(t, []string{"2201001"}, svc.calls)
}

func TestCalculateIPSNotFound(t *testing.T) {
	svc := &fakeAcademicService{}

	w := get(newRouter(svc, fakePinger{}), "/api/acad/ips?nim=9999")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Data akademik untuk NIM 9999 tidak ditemukan", body.Error.Message)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, body.Error.Code)
	assert.NotContains(t, w.Body.String(), `"ips"`)
}

func TestCalculateIPSNoGrades(t *testing.T) {
	svc := &fakeAcademicService{err: apperrors.NewAcademicNotFoundError(apperrors.ErrNoAcademicRecords, "2201003")}

	w := get(newRouter(svc, fakePinger{}), "/api/acad/ips?nim=2201003")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, dto.ErrorCodeNoAcademicRecords, body.Error.Code)
	assert.Equal(t, "Data akademik untuk NIM 2201003 tidak ditemukan", body.Error.Message)
}

func TestCalculateIPSMissingNIM(t *testing.T) {
	svc := &fakeAcademicService{}

	w := get(newRouter(svc, fakePinger{}), "/api/acad/ips")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	assert.Equal(t, "nim", body.Error.Field)
	assert.Equal(t, "nim is required", body.Error.Details)
	assert.Empty(t, svc.calls)
}

func TestCalculateIPSQueryError(t *testing.T) {
	svc := &fakeAcademicService{err: fmt.Errorf("%w: relation \"krs\" does not exist", apperrors.ErrQuery)}

	w := get(newRouter(svc, fakePinger{}), "/api/acad/ips?nim=2201001")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "krs")
}

func TestHealth(t *testing.T) {
	w := get(newRouter(&fakeAcademicService{}, fakePinger{err: fmt.Errorf("down")}), "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"Acad Service is running","timestamp":"2025-04-23T12:01:05Z"}`, w.Body.String())
}

func TestReady(t *testing.T) {
	w := get(newRouter(&fakeAcademicService{}, fakePinger{}), "/ready")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ready","database":"up"}`, w.Body.String())

	w = get(newRouter(&fakeAcademicService{}, fakePinger{err: fmt.Errorf("dial tcp: refused")}), "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "refused")
}

func TestCalculateIPSBlankNIM(t *testing.T) {
	svc := &fakeAcademicService{}

	w := get(newRouter(svc, fakePinger{}), "/api/acad/ips?nim=%20%20")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	assert.Equal(t, "nim", body.Error.Field)
	assert.Empty(t, svc.calls)
}
