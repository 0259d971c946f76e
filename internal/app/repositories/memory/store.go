// Package memory keeps instructors and courses in process memory.
// It backs the "memory" database driver and the handler and service tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/gestionski/skistation/internal/app/models"
	"github.com/gestionski/skistation/internal/app/repositories"
	"github.com/gestionski/skistation/internal/pkg/apperrors"
)

type instructorRecord struct {
	instructor models.Instructor
	courseIDs  []int64
}

// Store is a concurrency-safe in-memory implementation of the repository ports
type Store struct {
	mu               sync.RWMutex
	instructors      map[int64]*instructorRecord
	courses          map[int64]models.Course
	nextInstructorID int64
	nextCourseID     int64
}

var (
	_ repositories.InstructorStore = (*Store)(nil)
	_ repositories.CourseCatalog   = (*Store)(nil)
	_ repositories.Pinger          = (*Store)(nil)
)

// NewStore creates an empty store. Courses passed in keep their ids.
func NewStore(courses ...models.Course) *Store {
	s := &Store{
		instructors: make(map[int64]*instructorRecord),
		courses:     make(map[int64]models.Course),
	}
	for _, c := range courses {
		s.courses[c.ID] = c
		s.nextCourseID = max(s.nextCourseID, c.ID)
	}
	return s
}

// Ping always succeeds unless the context is done
func (s *Store) Ping(ctx context.Context) error {
	return ctxErr(ctx)
}

func (s *Store) Create(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var courseIDs []int64
	if instructor.Courses != nil {
		ids, err := s.resolveCourseIDs(instructor.CourseIDs())
		if err != nil {
			return nil, err
		}
		courseIDs = ids
	}

	s.nextInstructorID++
	rec := &instructorRecord{instructor: *instructor.Clone(), courseIDs: courseIDs}
	rec.instructor.ID = s.nextInstructorID
	rec.instructor.Courses = nil
	s.instructors[rec.instructor.ID] = rec

	return s.hydrate(rec), nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.instructors[id]
	if !ok {
		return nil, apperrors.ErrInstructorNotFound
	}
	return s.hydrate(rec), nil
}

func (s *Store) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Instructor, 0, len(s.instructors))
	for _, rec := range s.instructors {
		result = append(result, s.hydrate(rec))
	}
	slices.SortFunc(result, func(a, b *models.Instructor) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result, nil
}

func (s *Store) Update(ctx context.Context, instructor *models.Instructor) (*models.Instructor, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.instructors[instructor.ID]
	if !ok {
		return nil, apperrors.ErrInstructorNotFound
	}

	courseIDs := rec.courseIDs
	if instructor.Courses != nil {
		ids, err := s.resolveCourseIDs(instructor.CourseIDs())
		if err != nil {
			return nil, err
		}
		courseIDs = ids
	}

	next := &instructorRecord{instructor: *instructor.Clone(), courseIDs: courseIDs}
	next.instructor.Courses = nil
	s.instructors[instructor.ID] = next

	return s.hydrate(next), nil
}

func (s *Store) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if err := ctxErr(ctx); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.instructors[id]
	return ok, nil
}

func (s *Store) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if err := ctxErr(ctx); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.instructors[id]; !ok {
		return false, nil
	}
	delete(s.instructors, id)
	return true, nil
}

func (s *Store) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return &c, nil
}

func (s *Store) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.courses {
		if sameOffering(existing, *course) {
			return nil, apperrors.ErrCourseAlreadyExists
		}
	}

	s.nextCourseID++
	c := *course
	c.ID = s.nextCourseID
	s.courses[c.ID] = c
	return &c, nil
}

func (s *Store) CountCourses(ctx context.Context) (int64, error) {
	if err := ctxErr(ctx); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.courses)), nil
}

func sameOffering(a, b models.Course) bool {
	return a.Level == b.Level && a.Type == b.Type && a.Support == b.Support && a.TimeSlot == b.TimeSlot
}

// resolveCourseIDs dedupes and sorts ids, failing on any unknown course. Caller holds the lock.
func (s *Store) resolveCourseIDs(ids []int64) ([]int64, error) {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := s.courses[id]; !ok {
			return nil, apperrors.ErrCourseNotFound
		}
		out = append(out, id)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

// hydrate builds a detached copy with the course set resolved. Caller holds the lock.
func (s *Store) hydrate(rec *instructorRecord) *models.Instructor {
	out := rec.instructor.Clone()
	out.Courses = nil
	for _, id := range rec.courseIDs {
		if c, ok := s.courses[id]; ok {
			out.Courses = append(out.Courses, c)
		}
	}
	return out
}

func ctxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageUnavailableError(err)
	}
	return nil
}
