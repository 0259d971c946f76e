package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleValidationError(t *testing.T) {
	type body struct {
		FirstName string `validate:"required"`
		LastName  string `validate:"required"`
	}

	t.Run("field errors", func(t *testing.T) {
		detail := HandleValidationError(validator.New().Struct(body{FirstName: "Anna"}))

		assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
		assert.Equal(t, "lastName", detail.Field)
		list, ok := detail.Details.([]ErrorDetail)
		require.True(t, ok)
		require.Len(t, list, 1)
		assert.Equal(t, "lastName is required", list[0].Message)
	})

	t.Run("empty field list", func(t *testing.T) {
		detail := HandleValidationError(validator.ValidationErrors{})

		assert.Equal(t, "Validation failed", detail.Message)
		assert.Nil(t, detail.Details)
	})

	t.Run("malformed body", func(t *testing.T) {
		detail := HandleValidationError(errors.New("unexpected EOF"))

		assert.Equal(t, "Invalid request format", detail.Message)
		assert.Equal(t, "unexpected EOF", detail.Details)
	})
}

func TestValidationErrorsHasErrors(t *testing.T) {
	list := NewValidationErrors()
	assert.False(t, list.HasErrors())
	assert.True(t, list.AddError("firstName", "firstName is required").HasErrors())
}
