package repositories

import (
	"context"

	"github.com/gestionski/skistation/internal/app/models"
	"github.com/gestionski/skistation/internal/db"
)

// InstructorStore is the persistence port for instructors and their course sets.
// Implementations hand out copies: mutating a returned instructor never changes stored state.
type InstructorStore interface {
	// Create assigns a fresh id and stores the instructor together with its course set.
	Create(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error)
	// GetByID returns apperrors.ErrInstructorNotFound when no instructor has this id.
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	GetAll(ctx context.Context) ([]*models.Instructor, error)
	// Update overwrites every scalar field. A nil Courses slice keeps the stored set,
	// a non-nil one replaces it.
	Update(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// DeleteByID reports whether a row was removed.
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// CourseLookup resolves course ids owned by the course catalogue
type CourseLookup interface {
	// GetCourseByID returns apperrors.ErrCourseNotFound when the course does not exist.
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
}

// CourseCatalog is the write side used when seeding the course catalogue
type CourseCatalog interface {
	CourseLookup
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	CountCourses(ctx context.Context) (int64, error)
}

// Pinger is implemented by stores that can report their health
type Pinger interface {
	Ping(ctx context.Context) error
}

// Repositories holds all the repository instances
type Repositories struct {
	InstructorRepository InstructorStore
	CourseRepository     CourseCatalog
	Health               Pinger
}

// NewRepositories initializes all repositories on top of PostgreSQL
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		InstructorRepository: NewInstructorRepository(database),
		CourseRepository:     NewCourseRepository(database),
		Health:               database,
	}
}
