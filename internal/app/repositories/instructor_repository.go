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

const courseFKConstraint = "instructor_courses_course_id_fkey"

var instructorColumns = []string{"id", "first_name", "last_name", "date_of_hire"}

// querier is satisfied by both the pool and an open transaction
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// InstructorRepository handles instructor database operations
type InstructorRepository struct {
	pg *db.PostgresDB
	sb squirrel.StatementBuilderType
}

var _ InstructorStore = (*InstructorRepository)(nil)

// NewInstructorRepository creates a new InstructorRepository
func NewInstructorRepository(pg *db.PostgresDB) *InstructorRepository {
	return &InstructorRepository{
		pg: pg,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts the instructor and its course set in one transaction
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	sql, args, err := r.sb.Insert("instructors").
		Columns("first_name", "last_name", "date_of_hire").
		Values(instructor.FirstName, instructor.LastName, instructor.DateOfHire).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create instructor SQL")
		return nil, fmt.Errorf("failed to build create instructor query: %w", err)
	}

	created := instructor.Clone()
	err = r.pg.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, sql, args...).Scan(&created.ID); err != nil {
			return err
		}
		if created.Courses == nil {
			return nil
		}
		return r.replaceCourses(ctx, tx, created.ID, created.CourseIDs())
	})
	if err != nil {
		return nil, r.translate(err, "creating instructor", 0)
	}

	logger.Info().Int64("instructorID", created.ID).Int("courses", len(created.Courses)).Msg("Instructor created successfully")
	return created, nil
}

// GetByID retrieves an instructor with its course set
func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	sql, args, err := r.sb.Select(instructorColumns...).
		From("instructors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get instructor by ID SQL")
		return nil, fmt.Errorf("failed to build get instructor query: %w", err)
	}

	var instructor models.Instructor
	err = r.pg.Pool.QueryRow(ctx, sql, args...).Scan(
		&instructor.ID, &instructor.FirstName, &instructor.LastName, &instructor.DateOfHire)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstructorNotFound
		}
		return nil, r.translate(err, "retrieving instructor", id)
	}

	courses, err := r.loadCourses(ctx, r.pg.Pool, []int64{id})
	if err != nil {
		return nil, r.translate(err, "retrieving instructor courses", id)
	}
	instructor.Courses = courses[id]

	return &instructor, nil
}

// GetAll retrieves every instructor ordered by id
func (r *InstructorRepository) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	sql, args, err := r.sb.Select(instructorColumns...).
		From("instructors").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all instructors SQL")
		return nil, fmt.Errorf("failed to build get all instructors query: %w", err)
	}

	rows, err := r.pg.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, r.translate(err, "listing instructors", 0)
	}
	defer rows.Close()

	instructors := make([]*models.Instructor, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var instructor models.Instructor
		if err := rows.Scan(&instructor.ID, &instructor.FirstName, &instructor.LastName, &instructor.DateOfHire); err != nil {
			logger.Error().Err(err).Msg("Error scanning instructor row")
			return nil, fmt.Errorf("error scanning instructor: %w", err)
		}
		instructors = append(instructors, &instructor)
		ids = append(ids, instructor.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, r.translate(err, "iterating instructors", 0)
	}

	if len(ids) == 0 {
		return instructors, nil
	}

	courses, err := r.loadCourses(ctx, r.pg.Pool, ids)
	if err != nil {
		return nil, r.translate(err, "listing instructor courses", 0)
	}
	for _, instructor := range instructors {
		instructor.Courses = courses[instructor.ID]
	}

	return instructors, nil
}

// Update overwrites the scalar fields and, when Courses is set, the course set
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	sql, args, err := r.sb.Update("instructors").
		Set("first_name", instructor.FirstName).
		Set("last_name", instructor.LastName).
		Set("date_of_hire", instructor.DateOfHire).
		Where(squirrel.Eq{"id": instructor.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update instructor SQL")
		return nil, fmt.Errorf("failed to build update instructor query: %w", err)
	}

	updated := instructor.Clone()
	err = r.pg.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrInstructorNotFound
		}

		if updated.Courses != nil {
			return r.replaceCourses(ctx, tx, updated.ID, updated.CourseIDs())
		}

		courses, err := r.loadCourses(ctx, tx, []int64{updated.ID})
		if err != nil {
			return err
		}
		updated.Courses = courses[updated.ID]
		return nil
	})
	if err != nil {
		return nil, r.translate(err, "updating instructor", instructor.ID)
	}

	logger.Info().Int64("instructorID", updated.ID).Msg("Instructor updated successfully")
	return updated, nil
}

// ExistsByID checks whether an instructor row exists
func (r *InstructorRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		Prefix("SELECT EXISTS (").
		From("instructors").
		Where(squirrel.Eq{"id": id}).
		Suffix(")").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building instructor exists SQL")
		return false, fmt.Errorf("failed to build instructor exists query: %w", err)
	}

	var exists bool
	if err := r.pg.Pool.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, r.translate(err, "checking instructor existence", id)
	}
	return exists, nil
}

// DeleteByID removes the instructor; its course links go with it through ON DELETE CASCADE
func (r *InstructorRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	sql, args, err := r.sb.Delete("instructors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete instructor SQL")
		return false, fmt.Errorf("failed to build delete instructor query: %w", err)
	}

	tag, err := r.pg.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return false, r.translate(err, "deleting instructor", id)
	}

	deleted := tag.RowsAffected() > 0
	if deleted {
		logger.Info().Int64("instructorID", id).Msg("Instructor deleted successfully")
	}
	return deleted, nil
}

// replaceCourses swaps the stored course set for courseIDs
func (r *InstructorRepository) replaceCourses(ctx context.Context, tx pgx.Tx, instructorID int64, courseIDs []int64) error {
	sql, args, err := r.sb.Delete("instructor_courses").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build clear instructor courses query: %w", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return err
	}

	if len(courseIDs) == 0 {
		return nil
	}

	insert := r.sb.Insert("instructor_courses").Columns("instructor_id", "course_id")
	for _, courseID := range courseIDs {
		insert = insert.Values(instructorID, courseID)
	}
	sql, args, err = insert.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert instructor courses query: %w", err)
	}
	_, err = tx.Exec(ctx, sql, args...)
	return err
}

// loadCourses returns the course sets of the given instructors keyed by instructor id
func (r *InstructorRepository) loadCourses(ctx context.Context, q querier, instructorIDs []int64) (map[int64][]models.Course, error) {
	sql, args, err := r.sb.Select("ic.instructor_id", "c.id", "c.level", "c.type_course", "c.support", "c.price", "c.time_slot").
		From("instructor_courses ic").
		Join("courses c ON c.id = ic.course_id").
		Where(squirrel.Eq{"ic.instructor_id": instructorIDs}).
		OrderBy("ic.instructor_id", "c.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build load courses query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[int64][]models.Course, len(instructorIDs))
	for rows.Next() {
		var (
			instructorID int64
			course       models.Course
		)
		if err := rows.Scan(&instructorID, &course.ID, &course.Level, &course.Type, &course.Support, &course.Price, &course.TimeSlot); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		result[instructorID] = append(result[instructorID], course)
	}
	return result, rows.Err()
}

// translate maps driver errors onto the application error vocabulary
func (r *InstructorRepository) translate(err error, action string, instructorID int64) error {
	var appErr *apperrors.CustomError
	switch {
	case errors.As(err, &appErr):
		return err
	case dberrors.IsForeignKeyViolation(err, courseFKConstraint):
		logger.Warn().Int64("instructorID", instructorID).Msg("Course set references an unknown course")
		return apperrors.ErrCourseNotFound
	case dberrors.IsUnavailable(err):
		logger.Error().Err(err).Int64("instructorID", instructorID).Msgf("Storage unavailable while %s", action)
		return apperrors.NewStorageUnavailableError(err)
	default:
		logger.Error().Err(err).Int64("instructorID", instructorID).Msgf("Error %s", action)
		return fmt.Errorf("error %s: %w", action, err)
	}
}
