package dto

import (
	"testing"
	"time"

	"github.com/gestionski/skistation/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructorRequestToModel(t *testing.T) {
	hire := "2019-12-01"
	id := int64(4)
	req := InstructorRequest{NumInstructor: &id, FirstName: "Lena", LastName: "Moser", DateOfHire: &hire}

	inst, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, int64(4), inst.ID)
	assert.Equal(t, "Lena", inst.FirstName)
	require.NotNil(t, inst.DateOfHire)
	assert.Equal(t, time.Date(2019, time.December, 1, 0, 0, 0, 0, time.UTC), *inst.DateOfHire)
	assert.Nil(t, inst.Courses)

	noDate := InstructorRequest{FirstName: "Lena", LastName: "Moser"}
	inst, err = noDate.ToModel()
	require.NoError(t, err)
	assert.Zero(t, inst.ID)
	assert.Nil(t, inst.DateOfHire)

	bad := "12/01/2019"
	_, err = (&UpdateInstructorRequest{NumInstructor: 1, FirstName: "a", LastName: "b", DateOfHire: &bad}).ToModel()
	assert.Error(t, err)
}

func TestNewInstructorResponseComputesYearsOfService(t *testing.T) {
	hired := time.Date(2015, time.January, 20, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.January, 19, 12, 0, 0, 0, time.UTC)
	inst := &models.Instructor{
		ID:         9,
		FirstName:  "Paul",
		LastName:   "Favre",
		DateOfHire: &hired,
		Courses:    []models.Course{{ID: 2, Level: 1, Type: models.CourseTypeIndividual, Support: models.SupportSnowboard, Price: 80, TimeSlot: 1}},
	}

	resp := NewInstructorResponse(inst, now)
	require.NotNil(t, resp)
	assert.Equal(t, 9, resp.YearsOfService)
	assert.Equal(t, "2015-01-20", *resp.DateOfHire)
	require.Len(t, resp.Courses, 1)
	assert.Equal(t, "INDIVIDUAL", resp.Courses[0].TypeCourse)

	assert.Nil(t, NewInstructorResponse(nil, now))
	assert.Equal(t, 0, NewInstructorResponse(&models.Instructor{ID: 1}, now).YearsOfService)
}
