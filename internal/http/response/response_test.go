package response

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnauthorized_FixedPayload(t *testing.T) {
	data, err := json.Marshal(Unauthorized())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":true,"message":"unauthorized access"}`, string(data))
}

func TestForbidden_FixedPayload(t *testing.T) {
	data, err := json.Marshal(Forbidden())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":true,"message":"Forbidden access"}`, string(data))
}

func TestValidationError_RequiredField(t *testing.T) {
	type req struct {
		Email string `validate:"required,email"`
		Price float64 `validate:"required,gt=0"`
	}
	err := validator.New().Struct(req{})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.True(t, resp.Error)
	assert.Contains(t, resp.Message, "Email is a required field")
	assert.Contains(t, resp.Message, "Price is a required field")
}
