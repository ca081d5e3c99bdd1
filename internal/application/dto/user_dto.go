package dto

import (
	"time"

	"github.com/firstfortune/tracking-api/internal/domain/entity"
)

// SignupRequest entrada para registro. El rol siempre se fuerza a customer y
// verified a false: la elevación de privilegios no pasa por este endpoint.
type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Company   string `json:"company" validate:"omitempty,max=200"`
	Phone     string `json:"phone" validate:"omitempty,max=50"`
}

// LoginRequest entrada para login. RememberMe extiende el token a 30 días.
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// ForgotPasswordRequest entrada para solicitar reseteo de contraseña.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UserResponse salida de un usuario. Nunca incluye el hash de password:
// todo camino de lectura lo descarta antes de salir del núcleo.
type UserResponse struct {
	ID          int64              `json:"id"`
	Email       string             `json:"email"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Company     string             `json:"company,omitempty"`
	Phone       string             `json:"phone,omitempty"`
	Role        string             `json:"role"`
	Verified    bool               `json:"verified"`
	CreatedAt   time.Time          `json:"createdAt"`
	VaultAssets entity.VaultAssets `json:"vaultAssets,omitempty"`
}

// LoginResponse salida con token JWT y usuario (sin password).
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// SignupResponse salida del registro.
type SignupResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// NewUserResponse mapea la entidad al DTO descartando PasswordHash.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Company:     u.Company,
		Phone:       u.Phone,
		Role:        u.Role,
		Verified:    u.Verified,
		CreatedAt:   u.CreatedAt,
		VaultAssets: u.VaultAssets,
	}
}

// NewUserResponses mapea una lista de usuarios.
func NewUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
