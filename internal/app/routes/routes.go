package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/acadservice/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	academicController *controllers.AcademicController,
	healthController *controllers.HealthController,
) {
	// Probes
	router.GET("/health", healthController.Health)
	router.GET("/ready", healthController.Ready)

	// Academic records (read-only)
	acad := router.Group("/api/acad")
	{
		acad.GET("/mahasiswa", academicController.GetAllStudents)
		acad.GET("/ips", academicController.CalculateIPS)
	}
}
