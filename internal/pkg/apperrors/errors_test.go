package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseAlreadyExistsIsConflict(t *testing.T) {
	err := fmt.Errorf("create course: %w", ErrCourseAlreadyExists)

	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, IsNotFound(err))

	var custom *CustomError
	assert.True(t, errors.As(err, &custom))
	assert.Equal(t, "COURSE_ALREADY_EXISTS", custom.Code)
	assert.Equal(t, "course already exists", custom.Error())
}

func TestNotFoundErrors(t *testing.T) {
	assert.True(t, IsNotFound(ErrInstructorNotFound))
	assert.True(t, IsNotFound(ErrCourseNotFound))
	assert.False(t, IsNotFound(ErrInstructorIDRequired))
	assert.True(t, errors.Is(NewStorageUnavailableError(errors.New("dial tcp")), ErrStorageUnavailable))
}
