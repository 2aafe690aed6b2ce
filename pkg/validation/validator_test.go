package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkops/inkops/pkg/api/types"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New()
	require.NoError(t, err, "embedded schemas must compile")
	return v
}

func TestCollections(t *testing.T) {
	v := newValidator(t)
	assert.Equal(t, []string{"clients", "inventory", "payments", "sessions"}, v.Collections())
}

func TestValidate_ValidClient(t *testing.T) {
	v := newValidator(t)
	result, err := v.Validate("clients", &types.ClientRecord{Name: "Ana", Email: "ana@example.com", Active: true})
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	v := newValidator(t)
	result, err := v.Validate("clients", map[string]any{"email": "ana@example.com"})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Error(), "name")
}

func TestValidate_BadBirthdate(t *testing.T) {
	v := newValidator(t)
	result, err := v.Validate("clients", map[string]any{"name": "Ana", "birthdate": "03/07/1990"})
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidate_PaymentRules(t *testing.T) {
	v := newValidator(t)

	result, err := v.Validate("payments", &types.Payment{ClientID: 1, Amount: 250, Method: "pix"})
	require.NoError(t, err)
	assert.True(t, result.Valid)

	result, err = v.Validate("payments", map[string]any{"clientId": 1, "amount": 0})
	require.NoError(t, err)
	assert.False(t, result.Valid, "zero amount must be rejected")

	result, err = v.Validate("payments", map[string]any{"clientId": 1, "amount": 10, "method": "barter"})
	require.NoError(t, err)
	assert.False(t, result.Valid, "unknown payment method must be rejected")
}

func TestValidate_SessionStatusEnum(t *testing.T) {
	v := newValidator(t)
	result, err := v.Validate("sessions", map[string]any{"clientId": 2, "status": "pending"})
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidate_InventoryNegativeQuantity(t *testing.T) {
	v := newValidator(t)
	result, err := v.Validate("inventory", map[string]any{"name": "gloves", "quantity": -1})
	require.NoError(t, err)
	assert.False(t, result.Valid)
	if assert.NotEmpty(t, result.Errors) {
		assert.NotEmpty(t, result.Errors[0].Path)
	}
}

func TestValidate_UnknownProperty(t *testing.T) {
	v := newValidator(t)
	result, err := v.Validate("inventory", map[string]any{"name": "gloves", "quantity": 2, "colour": "black"})
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidate_UnknownCollection(t *testing.T) {
	v := newValidator(t)
	_, err := v.Validate("tattoos", map[string]any{})
	assert.ErrorIs(t, err, ErrUnknownCollection)
}
