package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestion-api/internal/application/auth"
	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/infrastructure/memory"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testPassword = "clave-segura-123"
)

// buildAuthUC deja un usuario listo en memoria y devuelve el caso de uso.
func buildAuthUC(t *testing.T, active bool) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	require.NoError(t, err)

	users := memory.NewUserRepository(memory.New())
	require.NoError(t, users.Create(&entity.User{
		Username:     "vendedor1",
		PasswordHash: string(hash),
		Name:         "Vendedor Uno",
		Role:         entity.RoleSeller,
		Active:       active,
	}))

	return auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "gestion-api-test",
	})
}

// Caso 1: credenciales correctas devuelven el usuario y un token no vacío.
func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc := buildAuthUC(t, true)

	resp, err := uc.Login(dto.LoginRequest{Username: "vendedor1", Password: testPassword})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "vendedor1", resp.User.Username)
	assert.Equal(t, entity.RoleSeller, resp.User.Role)
}

// Caso 2: contraseña incorrecta → ErrUnauthorized.
func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := buildAuthUC(t, true)

	_, err := uc.Login(dto.LoginRequest{Username: "vendedor1", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Caso 3: usuario inexistente → ErrUnauthorized, indistinguible del caso 2.
func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := buildAuthUC(t, true)

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Caso 4: usuario desactivado no puede entrar aunque la clave sea correcta.
func TestLogin_UsuarioDesactivado(t *testing.T) {
	uc := buildAuthUC(t, false)

	_, err := uc.Login(dto.LoginRequest{Username: "vendedor1", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
