package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Platform string `json:"platform" validate:"omitempty,oneof=ios android web"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signUpRequest{Email: "ada@example.com", Password: "correct-horse"}))

	err := v.Validate(&signUpRequest{Email: "ada", Password: "short", Platform: "tv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email")
	assert.Contains(t, err.Error(), "password must be at least 8")
	assert.Contains(t, err.Error(), "platform must be one of [ios android web]")
}

func TestValidator_Validate_Required(t *testing.T) {
	err := New().Validate(&signUpRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
}
