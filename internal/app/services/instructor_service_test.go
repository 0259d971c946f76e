package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/gestionski/skistation/internal/app/models"
	"github.com/gestionski/skistation/internal/app/repositories"
	"github.com/gestionski/skistation/internal/app/repositories/memory"
	"github.com/gestionski/skistation/internal/pkg/apperrors"
)

var (
	fixedNow = time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

	courseC1 = models.Course{ID: 1, Level: 1, Type: models.CourseTypeCollectiveChildren, Support: models.SupportSki, Price: 80, TimeSlot: 1}
	courseC2 = models.Course{ID: 2, Level: 3, Type: models.CourseTypeIndividual, Support: models.SupportSnowboard, Price: 150, TimeSlot: 2}
)

func yearsAgo(n int) *time.Time {
	d := time.Date(fixedNow.Year()-n, fixedNow.Month(), fixedNow.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

type InstructorServiceSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memory.Store
	service InstructorService
}

func (s *InstructorServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore(courseC1, courseC2)
	s.service = NewInstructorService(s.store, s.store, func() time.Time { return fixedNow })
}

func TestInstructorServiceSuite(t *testing.T) {
	suite.Run(t, new(InstructorServiceSuite))
}

func (s *InstructorServiceSuite) add(first string, hired *time.Time) *models.Instructor {
	inst, err := s.service.AddInstructor(s.ctx, &models.Instructor{FirstName: first, LastName: "Test", DateOfHire: hired})
	s.Require().NoError(err)
	return inst
}

func (s *InstructorServiceSuite) TestAddThenRetrieveRoundTrips() {
	input := &models.Instructor{FirstName: "Lena", LastName: "Moser", DateOfHire: yearsAgo(3)}

	created, err := s.service.AddInstructor(s.ctx, input)
	s.Require().NoError(err)
	s.NotZero(created.ID)

	got, err := s.service.RetrieveInstructor(s.ctx, created.ID)
	s.Require().NoError(err)

	expected := input.Clone()
	expected.ID = created.ID
	s.Equal(expected, got)
}

func (s *InstructorServiceSuite) TestAddIgnoresCallerID() {
	created, err := s.service.AddInstructor(s.ctx, &models.Instructor{ID: 77, FirstName: "A", LastName: "B"})
	s.Require().NoError(err)
	s.NotEqual(int64(77), created.ID)
}

func (s *InstructorServiceSuite) TestRetrieveAbsentIsNotAnError() {
	got, err := s.service.RetrieveInstructor(s.ctx, 12345)
	s.NoError(err)
	s.Nil(got)
}

func (s *InstructorServiceSuite) TestRetrieveAll() {
	s.add("a", nil)
	s.add("b", nil)

	all, err := s.service.RetrieveAllInstructors(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *InstructorServiceSuite) TestUpdate() {
	created := s.add("Paul", yearsAgo(2))

	created.FirstName = "Paulo"
	created.DateOfHire = nil
	updated, err := s.service.UpdateInstructor(s.ctx, created)
	s.Require().NoError(err)
	s.Equal("Paulo", updated.FirstName)
	s.Nil(updated.DateOfHire)

	_, err = s.service.UpdateInstructor(s.ctx, &models.Instructor{FirstName: "x", LastName: "y"})
	s.ErrorIs(err, apperrors.ErrValidationFailed)

	_, err = s.service.UpdateInstructor(s.ctx, &models.Instructor{ID: 999, FirstName: "x", LastName: "y"})
	s.ErrorIs(err, apperrors.ErrInstructorNotFound)
}

func (s *InstructorServiceSuite) TestRemove() {
	err := s.service.RemoveInstructor(s.ctx, 404)
	s.ErrorIs(err, apperrors.ErrInstructorNotFound)
	s.True(apperrors.IsNotFound(err))

	created := s.add("Gone", nil)
	s.Require().NoError(s.service.RemoveInstructor(s.ctx, created.ID))

	got, err := s.service.RetrieveInstructor(s.ctx, created.ID)
	s.NoError(err)
	s.Nil(got)

	s.ErrorIs(s.service.RemoveInstructor(s.ctx, created.ID), apperrors.ErrInstructorNotFound)
}

func (s *InstructorServiceSuite) TestYearsOfService() {
	fiveYears := s.add("Five", yearsAgo(5))
	noDate := s.add("None", nil)

	years, err := s.service.GetYearsOfService(s.ctx, fiveYears.ID)
	s.Require().NoError(err)
	s.Equal(5, years)

	years, err = s.service.GetYearsOfService(s.ctx, noDate.ID)
	s.Require().NoError(err)
	s.Equal(0, years)

	years, err = s.service.GetYearsOfService(s.ctx, 999)
	s.Require().NoError(err)
	s.Equal(0, years)
}

func (s *InstructorServiceSuite) TestSortedBySeniority() {
	one := s.add("One", yearsAgo(1))
	ten := s.add("Ten", yearsAgo(10))
	five := s.add("Five", yearsAgo(5))

	sorted, err := s.service.GetInstructorsSortedBySeniority(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(sorted, 3)
	s.Equal([]int64{ten.ID, five.ID, one.ID}, []int64{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func (s *InstructorServiceSuite) TestSortedBySeniorityIsNonIncreasingWithIDTieBreak() {
	hires := []*time.Time{yearsAgo(4), nil, yearsAgo(7), yearsAgo(4), yearsAgo(0), nil, yearsAgo(7)}
	for i, h := range hires {
		s.add(string(rune('a'+i)), h)
	}

	sorted, err := s.service.GetInstructorsSortedBySeniority(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(sorted, len(hires))

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1].YearsOfService(fixedNow), sorted[i].YearsOfService(fixedNow)
		s.GreaterOrEqual(prev, cur)
		if prev == cur {
			s.Less(sorted[i-1].ID, sorted[i].ID)
		}
	}
}

func (s *InstructorServiceSuite) TestAssignReplacesCourseSet() {
	created := s.add("Ana", yearsAgo(2))

	after1, err := s.service.AssignInstructorToCourse(s.ctx, created.ID, courseC1.ID)
	s.Require().NoError(err)
	s.Equal([]models.Course{courseC1}, after1.Courses)

	after2, err := s.service.AssignInstructorToCourse(s.ctx, created.ID, courseC2.ID)
	s.Require().NoError(err)
	s.Equal([]models.Course{courseC2}, after2.Courses)

	stored, err := s.service.RetrieveInstructor(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal([]models.Course{courseC2}, stored.Courses)
}

func (s *InstructorServiceSuite) TestAssignFailures() {
	created := s.add("Ana", nil)
	_, err := s.service.AssignInstructorToCourse(s.ctx, created.ID, courseC1.ID)
	s.Require().NoError(err)

	_, err = s.service.AssignInstructorToCourse(s.ctx, created.ID, 99)
	s.ErrorIs(err, apperrors.ErrCourseNotFound)

	stored, err := s.service.RetrieveInstructor(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal([]models.Course{courseC1}, stored.Courses)

	_, err = s.service.AssignInstructorToCourse(s.ctx, 404, courseC1.ID)
	s.ErrorIs(err, apperrors.ErrInstructorNotFound)
}

func (s *InstructorServiceSuite) TestAddAndAssignCreatesUnpersistedInstructor() {
	created, err := s.service.AddInstructorAndAssignToCourse(s.ctx, &models.Instructor{FirstName: "New", LastName: "Hire"}, courseC2.ID)
	s.Require().NoError(err)
	s.NotZero(created.ID)
	s.Equal([]models.Course{courseC2}, created.Courses)

	all, err := s.service.RetrieveAllInstructors(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *InstructorServiceSuite) TestAddAndAssignUpdatesExistingInstructor() {
	created := s.add("Ana", nil)
	_, err := s.service.AssignInstructorToCourse(s.ctx, created.ID, courseC1.ID)
	s.Require().NoError(err)

	created.LastName = "Renamed"
	updated, err := s.service.AddInstructorAndAssignToCourse(s.ctx, created, courseC2.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, updated.ID)
	s.Equal("Renamed", updated.LastName)
	s.Equal([]models.Course{courseC2}, updated.Courses)

	_, err = s.service.AddInstructorAndAssignToCourse(s.ctx, &models.Instructor{ID: 500, FirstName: "x", LastName: "y"}, courseC1.ID)
	s.ErrorIs(err, apperrors.ErrInstructorNotFound)
}

func (s *InstructorServiceSuite) TestAddAndAssignUnknownCourseWritesNothing() {
	created := s.add("Ana", nil)
	_, err := s.service.AssignInstructorToCourse(s.ctx, created.ID, courseC1.ID)
	s.Require().NoError(err)

	created.FirstName = "Changed"
	_, err = s.service.AddInstructorAndAssignToCourse(s.ctx, created, 99)
	s.ErrorIs(err, apperrors.ErrCourseNotFound)
	s.True(apperrors.IsNotFound(err))

	stored, err := s.service.RetrieveInstructor(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Ana", stored.FirstName)
	s.Equal([]models.Course{courseC1}, stored.Courses)

	_, err = s.service.AddInstructorAndAssignToCourse(s.ctx, &models.Instructor{FirstName: "x", LastName: "y"}, 99)
	s.ErrorIs(err, apperrors.ErrCourseNotFound)
	all, err := s.service.RetrieveAllInstructors(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

// failingStore reports every call as an infrastructure fault
type failingStore struct{}

var _ repositories.InstructorStore = failingStore{}

var errDown = apperrors.NewStorageUnavailableError(errors.New("connection refused"))

func (failingStore) Create(context.Context, *models.Instructor) (*models.Instructor, error) {
	return nil, errDown
}
func (failingStore) GetByID(context.Context, int64) (*models.Instructor, error) { return nil, errDown }
func (failingStore) GetAll(context.Context) ([]*models.Instructor, error) { return nil, errDown }
func (failingStore) Update(context.Context, *models.Instructor) (*models.Instructor, error) {
	return nil, errDown
}
func (failingStore) ExistsByID(context.Context, int64) (bool, error) { return false, errDown }
func (failingStore) DeleteByID(context.Context, int64) (bool, error) { return false, errDown }

func TestStorageFaultsPropagate(t *testing.T) {
	ctx := context.Background()
	svc := NewInstructorService(failingStore{}, memory.NewStore(courseC1), nil)

	_, err := svc.RetrieveInstructor(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)

	_, err = svc.GetYearsOfService(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)

	assert.ErrorIs(t, svc.RemoveInstructor(ctx, 1), apperrors.ErrStorageUnavailable)

	_, err = svc.GetInstructorsSortedBySeniority(ctx)
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)

	_, err = svc.AddInstructorAndAssignToCourse(ctx, &models.Instructor{FirstName: "a", LastName: "b"}, courseC1.ID)
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
}

func TestYearsOfServiceUsesInjectedClock(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	hired := time.Date(2016, time.February, 29, 0, 0, 0, 0, time.UTC)
	created, err := store.Create(ctx, &models.Instructor{FirstName: "Leap", LastName: "Day", DateOfHire: &hired})
	require.NoError(t, err)

	clock := time.Date(2017, time.February, 28, 12, 0, 0, 0, time.UTC)
	svc := NewInstructorService(store, store, func() time.Time { return clock })

	years, err := svc.GetYearsOfService(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, years)

	clock = time.Date(2017, time.March, 1, 0, 0, 0, 0, time.UTC)
	years, err = svc.GetYearsOfService(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, years)
}
