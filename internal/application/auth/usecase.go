package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/firstfortune/tracking-api/internal/application/dto"
	"github.com/firstfortune/tracking-api/internal/domain"
	"github.com/firstfortune/tracking-api/internal/domain/entity"
	"github.com/firstfortune/tracking-api/internal/domain/repository"
	"github.com/firstfortune/tracking-api/pkg/jwt"
	"github.com/firstfortune/tracking-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	Issuer string
}

// AuthUseCase casos de uso de autenticación: registro, login y reseteo de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log}
}

// Signup crea un usuario: hashea password con bcrypt (cost 10) y persiste.
// El rol siempre queda en customer y verified en false; un email ya registrado
// (comparación case-insensitive) retorna ErrEmailAlreadyExists.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Company:      in.Company,
		Phone:        in.Phone,
		Role:         entity.RoleCustomer,
		Verified:     false,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y password incorrecto producen el mismo error para no
// filtrar qué cuentas existen.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	ttl := jwt.DefaultTTL
	if in.RememberMe {
		ttl = jwt.RememberMeTTL
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, user.ID, user.Email, user.Role, ttl)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    dto.NewUserResponse(user),
	}, nil
}

// ForgotPassword genera un token de reseteo y lo deja en el log del servidor
// (el envío de email está stubbeado). Nunca retorna error por email
// desconocido: el handler responde igual exista o no la cuenta.
func (uc *AuthUseCase) ForgotPassword(email string) error {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	resetToken := uuid.New().String()
	uc.log.Info().
		Int64("user_id", user.ID).
		Str("reset_token", resetToken).
		Msg("password reset solicitado (envío de email pendiente de integrar)")
	return nil
}
