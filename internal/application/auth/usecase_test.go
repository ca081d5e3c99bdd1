package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/firstfortune/tracking-api/internal/application/dto"
	"github.com/firstfortune/tracking-api/internal/domain"
	"github.com/firstfortune/tracking-api/internal/domain/entity"
	"github.com/firstfortune/tracking-api/internal/infrastructure/memory"
	pkgjwt "github.com/firstfortune/tracking-api/pkg/jwt"
	"github.com/firstfortune/tracking-api/pkg/logger"
)

const testSecret = "auth-usecase-test-secret"

func newAuthUC(t *testing.T) (*AuthUseCase, *memory.UserRepo) {
	t.Helper()
	users := memory.NewUserRepository()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := NewAuthUseCase(users, JWTConfig{Secret: testSecret, Issuer: "tracking-api-test"}, log)
	return uc, users
}

func signupRequest() dto.SignupRequest {
	return dto.SignupRequest{
		FirstName: "Nina",
		LastName:  "Velasco",
		Email:     "nina@example.com",
		Password:  "secreta1",
		Company:   "Acme Freight",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_HasheaElPasswordConBcrypt(t *testing.T) {
	uc, users := newAuthUC(t)

	out, err := uc.Signup(signupRequest())
	require.NoError(t, err)
	assert.Equal(t, "nina@example.com", out.Email)

	stored, err := users.GetByEmail("nina@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta1", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta1")))
}

func TestSignup_FuerzaRolCustomerYNoVerificado(t *testing.T) {
	uc, _ := newAuthUC(t)

	out, err := uc.Signup(signupRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, out.Role)
	assert.False(t, out.Verified)
}

func TestSignup_EmailDuplicadoCaseInsensitive(t *testing.T) {
	uc, _ := newAuthUC(t)
	_, err := uc.Signup(signupRequest())
	require.NoError(t, err)

	dup := signupRequest()
	dup.Email = "NINA@Example.COM"
	_, err = uc.Signup(dup)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_OK_TokenConClaimsCorrectos(t *testing.T) {
	uc, _ := newAuthUC(t)
	created, err := uc.Signup(signupRequest())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "nina@example.com", Password: "secreta1"})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, created.ID, out.User.ID)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, "nina@example.com", claims.Email)
	assert.Equal(t, entity.RoleCustomer, claims.Role)
}

func TestLogin_EmailDesconocidoYPasswordIncorrecto_MismoError(t *testing.T) {
	uc, _ := newAuthUC(t)
	_, err := uc.Signup(signupRequest())
	require.NoError(t, err)

	_, errUnknown := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "loquesea"})
	_, errWrong := uc.Login(dto.LoginRequest{Email: "nina@example.com", Password: "incorrecta"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, domain.ErrInvalidCredentials,
		"ambos fallos deben ser indistinguibles para el cliente")
}

func TestLogin_RememberMe_ExtiendeLaExpiracion(t *testing.T) {
	uc, _ := newAuthUC(t)
	_, err := uc.Signup(signupRequest())
	require.NoError(t, err)

	normal, err := uc.Login(dto.LoginRequest{Email: "nina@example.com", Password: "secreta1"})
	require.NoError(t, err)
	extended, err := uc.Login(dto.LoginRequest{Email: "nina@example.com", Password: "secreta1", RememberMe: true})
	require.NoError(t, err)

	normalClaims, err := pkgjwt.Parse(testSecret, normal.Token)
	require.NoError(t, err)
	extendedClaims, err := pkgjwt.Parse(testSecret, extended.Token)
	require.NoError(t, err)

	assert.Greater(t, extendedClaims.ExpiresAt.Unix(), normalClaims.ExpiresAt.Unix(),
		"rememberMe debe emitir un token de vida más larga")
}

// ──────────────────────────────────────────────────────────────────────────────
// ForgotPassword
// ──────────────────────────────────────────────────────────────────────────────

// Email desconocido no es error: la respuesta HTTP es idéntica exista o no la
// cuenta, así que el use case tampoco puede filtrar la diferencia.
func TestForgotPassword_EmailDesconocido_NoRetornaError(t *testing.T) {
	uc, _ := newAuthUC(t)
	assert.NoError(t, uc.ForgotPassword("fantasma@example.com"))
}

func TestForgotPassword_EmailConocido_NoRetornaError(t *testing.T) {
	uc, _ := newAuthUC(t)
	_, err := uc.Signup(signupRequest())
	require.NoError(t, err)
	assert.NoError(t, uc.ForgotPassword("nina@example.com"))
}
