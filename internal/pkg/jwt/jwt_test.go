package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndDecode(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	token, expiresAt, err := svc.GenerateAccessToken("emp-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Positive(t, expiresAt)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	employeeID, err := svc.EmployeeID(decoded)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", employeeID)
}

func TestEmployeeIDMissing(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	_, token, err := svc.JWTAuth().Encode(map[string]interface{}{"type": "access"})
	require.NoError(t, err)
	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	_, err = svc.EmployeeID(decoded)
	assert.ErrorIs(t, err, ErrMissingEmployee)

	_, err = svc.EmployeeID(nil)
	assert.Error(t, err)
}

func TestInvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret", "soon")
	_, _, err := svc.GenerateAccessToken("emp-1")
	assert.Error(t, err)
}

func TestWrongSecretFails(t *testing.T) {
	token, _, err := NewJWTService("a", "1h").GenerateAccessToken("emp-1")
	require.NoError(t, err)

	_, err = NewJWTService("b", "1h").JWTAuth().Decode(token)
	assert.Error(t, err)
}
