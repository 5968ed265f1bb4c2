package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	appControllers "github.com/yigit/acadservice/internal/app/controllers"
	"github.com/yigit/acadservice/internal/app/models"
	"github.com/yigit/acadservice/internal/config"
	appMiddleware "github.com/yigit/acadservice/internal/middleware"
)

type stubAcademicService struct{}

func (stubAcademicService) ListStudents(context.Context) ([]*models.Student, error) {
	return []*models.Student{{NIM: "2201001", Nama: "Budi Santoso", Jurusan: "Informatika", Angkatan: 2022}}, nil
}

func (stubAcademicService) CalculateIPS(_ context.Context, nim string) (*models.GpaResult, error) {
	return &models.GpaResult{NIM: nim, Nama: "Budi Santoso", Jurusan: "Informatika", TotalSKS: 3, IPS: 4}, nil
}

type upPinger struct{}

func (upPinger) Ping(context.Context) error { return nil }

func testDeps(metrics bool, rps float64) *Dependencies {
	deps := &Dependencies{
		AcademicService:  stubAcademicService{},
		HealthController: appControllers.NewHealthController(upPinger{}),
		Logger:           zerolog.Nop(),
	}
	deps.AcademicController = appControllers.NewAcademicController(deps.AcademicService)
	if metrics {
		deps.Metrics = appMiddleware.NewMetrics()
	}
	if rps > 0 {
		deps.RateLimiter = appMiddleware.NewRateLimiter(rps, 1)
	}
	return deps
}

func testConfig(mode string) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = mode
	cfg.CORS.AllowedOrigins = []string{"*"}
	return cfg
}

func request(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestSetupRouterRegistersRoutes(t *testing.T) {
	router := SetupRouter(testConfig("development"), testDeps(true, 0), zerolog.Nop())

	w := request(t, router, "/api/acad/mahasiswa")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(appMiddleware.RequestIDHeader))

	assert.Equal(t, http.StatusOK, request(t, router, "/api/acad/ips?nim=2201001").Code)
	assert.Equal(t, http.StatusOK, request(t, router, "/health").Code)
	assert.Equal(t, http.StatusOK, request(t, router, "/ready").Code)
	assert.Equal(t, http.StatusOK, request(t, router, "/swagger/doc.json").Code)

	metrics := request(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `endpoint="/api/acad/mahasiswa"`)

	missing := request(t, router, "/api/acad/unknown")
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Contains(t, missing.Body.String(), "RES_001")
}

func TestSetupRouterProductionHidesDocs(t *testing.T) {
	router := SetupRouter(testConfig("production"), testDeps(false, 0), zerolog.Nop())

	assert.Equal(t, http.StatusNotFound, request(t, router, "/swagger/doc.json").Code)
	assert.Equal(t, http.StatusNotFound, request(t, router, "/metrics").Code)
}

func TestSetupRouterAppliesRateLimit(t *testing.T) {
	router := SetupRouter(testConfig("development"), testDeps(false, 0.001), zerolog.Nop())

	assert.Equal(t, http.StatusOK, request(t, router, "/health").Code)
	assert.Equal(t, http.StatusTooManyRequests, request(t, router, "/health").Code)
}
