package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestionski/skistation/internal/app/models/dto"
	"github.com/gestionski/skistation/internal/app/services"
	"github.com/gestionski/skistation/internal/middleware"
	"github.com/gestionski/skistation/internal/pkg/apperrors"
)

// InstructorController handles instructor-related HTTP requests
type InstructorController struct {
	instructorService services.InstructorService
	now               func() time.Time
}

// NewInstructorController creates a new InstructorController.
// now is the clock used for years of service in responses.
func NewInstructorController(instructorService services.InstructorService, now func() time.Time) *InstructorController {
	if now == nil {
		now = time.Now
	}
	return &InstructorController{
		instructorService: instructorService,
		now:               now,
	}
}

// AddInstructor handles instructor creation
// @Summary Add an instructor
// @Description Registers a new instructor; any numInstructor in the body is ignored
// @Tags instructors
// @Accept json
// @Produce json
// @Param request body dto.InstructorRequest true "Instructor information"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructor/add [post]
func (c *InstructorController) AddInstructor(ctx *gin.Context) {
	var req dto.InstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	instructor, err := req.ToModel()
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	created, err := c.instructorService.AddInstructor(ctx.Request.Context(), instructor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewInstructorResponse(created, c.now()), "Instructor added successfully"))
}

// AddInstructorAndAssignToCourse handles creation or update plus course assignment
// @Summary Add an instructor and assign a course
// @Description Creates the instructor when numInstructor is absent, otherwise updates it, and replaces its courses with the given one
// @Tags instructors
// @Accept json
// @Produce json
// @Param numCourse path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.InstructorRequest true "Instructor information"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor assigned successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course or instructor not found"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructor/addAndAssignToCourse/{numCourse} [put]
func (c *InstructorController) AddInstructorAndAssignToCourse(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "numCourse")
	if !ok {
		return
	}

	var req dto.InstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	instructor, err := req.ToModel()
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	saved, err := c.instructorService.AddInstructorAndAssignToCourse(ctx.Request.Context(), instructor, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewInstructorResponse(saved, c.now()), "Instructor assigned to course successfully"))
}

// GetAllInstructors lists every instructor
// @Summary Get all instructors
// @Tags instructors
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorResponse} "Instructors retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /instructor/all [get]
func (c *InstructorController) GetAllInstructors(ctx *gin.Context) {
	instructors, err := c.instructorService.RetrieveAllInstructors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewInstructorResponses(instructors, c.now()), ""))
}

// GetInstructor retrieves a single instructor
// @Summary Get instructor details
// @Tags instructors
// @Produce json
// @Param id path int true "Instructor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID format"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /instructor/{id} [get]
func (c *InstructorController) GetInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	instructor, err := c.instructorService.RetrieveInstructor(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if instructor == nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInstructorNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewInstructorResponse(instructor, c.now()), ""))
}

// UpdateInstructor handles instructor updates
// @Summary Update an instructor
// @Description Overwrites names and date of hire of an existing instructor; courses are kept
// @Tags instructors
// @Accept json
// @Produce json
// @Param request body dto.UpdateInstructorRequest true "Instructor information"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /instructor/update [put]
func (c *InstructorController) UpdateInstructor(ctx *gin.Context) {
	var req dto.UpdateInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	instructor, err := req.ToModel()
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	updated, err := c.instructorService.UpdateInstructor(ctx.Request.Context(), instructor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewInstructorResponse(updated, c.now()), "Instructor updated successfully"))
}

// AssignInstructorToCourse replaces an instructor's courses with one course
// @Summary Assign an instructor to a course
// @Tags instructors
// @Produce json
// @Param instructorId path int true "Instructor ID" Format(int64) minimum(1)
// @Param courseId path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor assigned successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Instructor or course not found"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /instructor/{instructorId}/assign/{courseId} [post]
func (c *InstructorController) AssignInstructorToCourse(ctx *gin.Context) {
	instructorID, ok := parseIDParam(ctx, "instructorId")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	updated, err := c.instructorService.AssignInstructorToCourse(ctx.Request.Context(), instructorID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewInstructorResponse(updated, c.now()), "Instructor assigned to course successfully"))
}

// GetInstructorsSortedBySeniority lists instructors, longest serving first
// @Summary Get instructors sorted by seniority
// @Description Years of service descending, ties by ascending instructor id
// @Tags instructors
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorResponse} "Instructors retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /instructor/sortedBySeniority [get]
func (c *InstructorController) GetInstructorsSortedBySeniority(ctx *gin.Context) {
	instructors, err := c.instructorService.GetInstructorsSortedBySeniority(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewInstructorResponses(instructors, c.now()), ""))
}

// GetYearsOfService returns an instructor's whole years of service
// @Summary Get years of service
// @Description Returns 0 for an unknown instructor
// @Tags instructors
// @Produce json
// @Param id path int true "Instructor ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=int} "Years of service"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID format"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /instructor/yearsOfService/{id} [get]
func (c *InstructorController) GetYearsOfService(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	years, err := c.instructorService.GetYearsOfService(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(years, ""))
}

// RemoveInstructor deletes an instructor
// @Summary Remove an instructor
// @Tags instructors
// @Param id path int true "Instructor ID" Format(int64) minimum(1)
// @Success 204 "Instructor removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID format"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Router /instructor/remove/{id} [delete]
func (c *InstructorController) RemoveInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.instructorService.RemoveInstructor(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseIDParam reads a positive int64 path parameter, answering 400 otherwise
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}
