package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_LoginRequest(t *testing.T) {
	v := New()

	assert.Nil(t, v.Validate(&LoginRequest{Username: "21BCE1234", Password: "secret"}))

	errs := v.Validate(&LoginRequest{Password: "secret"})
	require.Len(t, errs, 1)
	assert.Equal(t, "username", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)

	errs = v.Validate(&LoginRequest{})
	assert.Len(t, errs, 2)
	assert.Contains(t, errs.Error(), "username")
	assert.Contains(t, errs.Error(), "password")
}

func TestValidate_ComplaintFieldsAreFreeForm(t *testing.T) {
	v := New()

	// Submission fields carry no constraints; an empty form binds fine.
	assert.Nil(t, v.Validate(&ComplaintCreateRequest{}))
}
