package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/acadservice/internal/app/models/dto"
	"github.com/yigit/acadservice/internal/app/services"
	"github.com/yigit/acadservice/internal/middleware"
	"github.com/yigit/acadservice/internal/pkg/logger"
	"github.com/yigit/acadservice/internal/pkg/validation"
)

// AcademicController handles student listing and IPS calculation
type AcademicController struct {
	academicService services.AcademicService
}

// NewAcademicController creates a new AcademicController and registers the
// binding rules its requests rely on
func NewAcademicController(academicService services.AcademicService) *AcademicController {
	if err := validation.RegisterRules(); err != nil {
		logger.Error().Err(err).Msg("Failed to register validation rules")
	}
	return &AcademicController{
		academicService: academicService,
	}
}

// GetAllStudents retrieves all students
// @Summary List students
// @Description Retrieves every student record
// @Tags academic
// @Produce json
// @Success 200 {array} dto.StudentResponse "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Database query failed"
// @Failure 503 {object} dto.ErrorResponse "Database unavailable"
// @Router /api/acad/mahasiswa [get]
func (c *AcademicController) GetAllStudents(ctx *gin.Context) {
	students, err := c.academicService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromStudents(students))
}

// CalculateIPS computes the grade point average of a student
// @Summary Calculate IPS
// @Description Computes the credit-weighted grade point average of the student with the given NIM
// @Tags academic
// @Produce json
// @Param nim query string true "NIM Mahasiswa"
// @Success 200 {object} dto.IPSResponse "IPS calculated successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid NIM"
// @Failure 404 {object} dto.ErrorResponse "No academic records for the NIM"
// @Failure 500 {object} dto.ErrorResponse "Database query failed"
// @Failure 503 {object} dto.ErrorResponse "Database unavailable"
// @Router /api/acad/ips [get]
func (c *AcademicController) CalculateIPS(ctx *gin.Context) {
	var query dto.IPSQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.academicService.CalculateIPS(ctx.Request.Context(), query.NIM)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.FromGpaResult(result))
}
