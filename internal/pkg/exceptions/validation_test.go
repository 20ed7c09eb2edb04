package exceptions

import (
	"errors"
	"healthcare-service/internal/pkg/constvars"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required"`
	Count int    `validate:"gte=1"`
}

func TestValidationViolations(t *testing.T) {
	err := validator.New().Struct(sample{})
	require.Error(t, err)

	assert.Equal(t, []string{"Name is required", "Count must be greater than or equal to 1"}, ValidationViolations(err))
	assert.Equal(t, "Name is required", FormatFirstValidationError(err))
	assert.Equal(t, "Name is required, Count must be greater than or equal to 1", FormatAllValidationErrors(err))
}

func TestValidationViolationsPlainError(t *testing.T) {
	assert.Nil(t, ValidationViolations(nil))
	assert.Equal(t, []string{"boom"}, ValidationViolations(errors.New("boom")))
	assert.Equal(t, constvars.ErrDevInvalidInput, FormatFirstValidationError(errors.New("boom")))
}

func TestErrInputValidation(t *testing.T) {
	err := validator.New().Struct(sample{Name: "x"})
	require.Error(t, err)

	customErr := ErrInputValidation(err)

	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, "Count must be greater than or equal to 1", customErr.ClientMessage)
	assert.Equal(t, []string{"Count must be greater than or equal to 1"}, customErr.Violations)
}
