package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/gestionski/skistation/internal/app/models"
	"github.com/gestionski/skistation/internal/app/repositories"
	"github.com/gestionski/skistation/internal/pkg/apperrors"
	"github.com/gestionski/skistation/internal/pkg/logger"
)

// InstructorService defines the interface for instructor-related operations
type InstructorService interface {
	AddInstructor(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error)
	RetrieveAllInstructors(ctx context.Context) ([]*models.Instructor, error)
	UpdateInstructor(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error)
	// RetrieveInstructor returns (nil, nil) when no instructor has this id
	RetrieveInstructor(ctx context.Context, id int64) (*models.Instructor, error)
	RemoveInstructor(ctx context.Context, id int64) error
	AddInstructorAndAssignToCourse(ctx context.Context, instructor *models.Instructor, courseID int64) (*models.Instructor, error)
	AssignInstructorToCourse(ctx context.Context, instructorID, courseID int64) (*models.Instructor, error)
	// GetYearsOfService returns 0 for an unknown instructor
	GetYearsOfService(ctx context.Context, id int64) (int, error)
	GetInstructorsSortedBySeniority(ctx context.Context) ([]*models.Instructor, error)
}

// instructorServiceImpl implements the InstructorService interface
type instructorServiceImpl struct {
	store   repositories.InstructorStore
	courses repositories.CourseLookup
	now     func() time.Time
}

// NewInstructorService creates a new instructor service instance.
// now supplies "today" for seniority; nil means time.Now.
func NewInstructorService(store repositories.InstructorStore, courses repositories.CourseLookup, now func() time.Time) InstructorService {
	if now == nil {
		now = time.Now
	}
	return &instructorServiceImpl{
		store:   store,
		courses: courses,
		now:     now,
	}
}

// AddInstructor stores a new instructor; name checks happen at the request edge
func (s *instructorServiceImpl) AddInstructor(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	if instructor == nil {
		return nil, fmt.Errorf("%w: instructor is nil", apperrors.ErrValidationFailed)
	}

	toCreate := instructor.Clone()
	toCreate.ID = 0
	created, err := s.store.Create(ctx, toCreate)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().Int64("instructorID", created.ID).Msg("Instructor added")
	return created, nil
}

// RetrieveAllInstructors lists every instructor
func (s *instructorServiceImpl) RetrieveAllInstructors(ctx context.Context) ([]*models.Instructor, error) {
	return s.store.GetAll(ctx)
}

// UpdateInstructor overwrites a previously stored instructor
func (s *instructorServiceImpl) UpdateInstructor(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	if instructor == nil || instructor.ID <= 0 {
		return nil, apperrors.ErrInstructorIDRequired
	}
	return s.store.Update(ctx, instructor)
}

func (s *instructorServiceImpl) RetrieveInstructor(ctx context.Context, id int64) (*models.Instructor, error) {
	instructor, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrInstructorNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return instructor, nil
}

// RemoveInstructor deletes in a single conditional step, so a concurrent delete
// surfaces as not-found instead of slipping between a check and the delete
func (s *instructorServiceImpl) RemoveInstructor(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrInstructorNotFound
	}

	logger.FromContext(ctx).Info().Int64("instructorID", id).Msg("Instructor removed")
	return nil
}

// AddInstructorAndAssignToCourse replaces the instructor's course set with {course}.
// An instructor without an id is created; one with an id must already exist.
func (s *instructorServiceImpl) AddInstructorAndAssignToCourse(ctx context.Context, instructor *models.Instructor, courseID int64) (*models.Instructor, error) {
	if instructor == nil {
		return nil, fmt.Errorf("%w: instructor is nil", apperrors.ErrValidationFailed)
	}

	course, err := s.courses.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	target := instructor.Clone()
	target.Courses = []models.Course{*course}

	if target.ID == 0 {
		created, err := s.store.Create(ctx, target)
		if err != nil {
			return nil, err
		}
		logger.FromContext(ctx).Info().Int64("instructorID", created.ID).Int64("courseID", courseID).Msg("Instructor created and assigned to course")
		return created, nil
	}

	return s.store.Update(ctx, target)
}

// AssignInstructorToCourse replaces a stored instructor's course set with {course}
func (s *instructorServiceImpl) AssignInstructorToCourse(ctx context.Context, instructorID, courseID int64) (*models.Instructor, error) {
	instructor, err := s.store.GetByID(ctx, instructorID)
	if err != nil {
		return nil, err
	}

	course, err := s.courses.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	instructor.Courses = []models.Course{*course}
	updated, err := s.store.Update(ctx, instructor)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().Int64("instructorID", instructorID).Int64("courseID", courseID).Msg("Instructor assigned to course")
	return updated, nil
}

func (s *instructorServiceImpl) GetYearsOfService(ctx context.Context, id int64) (int, error) {
	instructor, err := s.RetrieveInstructor(ctx, id)
	if err != nil {
		return 0, err
	}
	return instructor.YearsOfService(s.now()), nil
}

// GetInstructorsSortedBySeniority orders by years of service, longest first, then by id
func (s *instructorServiceImpl) GetInstructorsSortedBySeniority(ctx context.Context) ([]*models.Instructor, error) {
	instructors, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	years := make(map[int64]int, len(instructors))
	for _, inst := range instructors {
		years[inst.ID] = inst.YearsOfService(now)
	}

	slices.SortStableFunc(instructors, func(a, b *models.Instructor) int {
		if c := cmp.Compare(years[b.ID], years[a.ID]); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return instructors, nil
}
