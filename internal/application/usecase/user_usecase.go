package usecase

import (
	"github.com/firstfortune/tracking-api/internal/application/dto"
	"github.com/firstfortune/tracking-api/internal/domain"
	"github.com/firstfortune/tracking-api/internal/domain/entity"
	"github.com/firstfortune/tracking-api/internal/domain/repository"
)

// UserUseCase casos de uso de perfil, bóveda y enumeración admin.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Profile devuelve el usuario autenticado sin el hash de password.
func (uc *UserUseCase) Profile(userID int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// Vault devuelve el sub-registro de activos en bóveda del usuario, si existe.
func (uc *UserUseCase) Vault(userID int64) (entity.VaultAssets, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.VaultAssets == nil {
		return nil, domain.ErrNotFound
	}
	return user.VaultAssets, nil
}

// ListUsers enumera todos los usuarios (solo admin), passwords descartados.
func (uc *UserUseCase) ListUsers() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponses(users), nil
}
