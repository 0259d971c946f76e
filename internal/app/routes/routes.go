package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gestionski/skistation/internal/app/controllers"
	"github.com/gestionski/skistation/internal/app/models/dto"
	"github.com/gestionski/skistation/internal/app/repositories"
	"github.com/gestionski/skistation/internal/middleware"
	"github.com/gestionski/skistation/internal/pkg/apperrors"
)

const healthTimeout = 2 * time.Second

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	instructorController *controllers.InstructorController,
	health repositories.Pinger,
) {
	// API version group
	v1 := router.Group("/api/v1")

	instructors := v1.Group("/instructor")
	{
		instructors.POST("/add", instructorController.AddInstructor)
		instructors.PUT("/addAndAssignToCourse/:numCourse", instructorController.AddInstructorAndAssignToCourse)
		instructors.GET("/all", instructorController.GetAllInstructors)
		instructors.GET("/sortedBySeniority", instructorController.GetInstructorsSortedBySeniority)
		instructors.GET("/yearsOfService/:id", instructorController.GetYearsOfService)
		instructors.GET("/:id", instructorController.GetInstructor)
		instructors.PUT("/update", instructorController.UpdateInstructor)
		instructors.POST("/:instructorId/assign/:courseId", instructorController.AssignInstructorToCourse)
		instructors.DELETE("/remove/:id", instructorController.RemoveInstructor)
	}

	// Health check endpoint, reports the store's reachability
	v1.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := health.Ping(ctx); err != nil {
			middleware.HandleAPIError(c, apperrors.NewStorageUnavailableError(err))
			return
		}

		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
}
