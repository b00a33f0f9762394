package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/gestion-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

// Caso 1: generate/parse redondo conserva userID y role.
func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 42, "seller", "gestion-api-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "seller", role)
}

// Caso 2: un token firmado con otro secreto se rechaza.
func TestJWT_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secreto", 1, "admin", "gestion-api-test", 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

// Caso 3: un token expirado se rechaza.
func TestJWT_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "admin", "gestion-api-test", -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

// Caso 4: secret vacío no emite tokens.
func TestJWT_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "admin", "gestion-api-test", 60)
	assert.Error(t, err)
}
