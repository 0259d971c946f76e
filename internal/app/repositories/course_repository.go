package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/gestionski/skistation/internal/app/models"
	"github.com/gestionski/skistation/internal/db"
	"github.com/gestionski/skistation/internal/pkg/apperrors"
	"github.com/gestionski/skistation/internal/pkg/dberrors"
	"github.com/gestionski/skistation/internal/pkg/logger"
)

// courseOfferingConstraint keeps one course per level, type, support and time slot
const courseOfferingConstraint = "courses_offering_key"

// CourseRepository reads the course catalogue
type CourseRepository struct {
	pg *db.PostgresDB
	sb squirrel.StatementBuilderType
}

var _ CourseCatalog = (*CourseRepository)(nil)

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(pg *db.PostgresDB) *CourseRepository {
	return &CourseRepository{
		pg: pg,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetCourseByID retrieves a course by ID
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select("id", "level", "type_course", "support", "price", "time_slot").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	var course models.Course
	err = r.pg.Pool.QueryRow(ctx, sql, args...).Scan(
		&course.ID, &course.Level, &course.Type, &course.Support, &course.Price, &course.TimeSlot)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		if dberrors.IsUnavailable(err) {
			return nil, apperrors.NewStorageUnavailableError(err)
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// CreateCourse inserts a course and returns it with its generated id
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("level", "type_course", "support", "price", "time_slot").
		Values(course.Level, string(course.Type), string(course.Support), course.Price, course.TimeSlot).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create course query: %w", err)
	}

	created := *course
	if err := r.pg.Pool.QueryRow(ctx, sql, args...).Scan(&created.ID); err != nil {
		if dberrors.IsUnavailable(err) {
			return nil, apperrors.NewStorageUnavailableError(err)
		}
		if dberrors.IsDuplicateConstraintError(err, courseOfferingConstraint) {
			logger.Warn().Int("level", course.Level).Str("type", string(course.Type)).Msg("Course already exists")
			return nil, apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return &created, nil
}

// CountCourses returns the size of the course catalogue
func (r *CourseRepository) CountCourses(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("courses").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var count int64
	if err := r.pg.Pool.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		if dberrors.IsUnavailable(err) {
			return 0, apperrors.NewStorageUnavailableError(err)
		}
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}
