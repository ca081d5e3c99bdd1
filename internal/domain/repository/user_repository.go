package repository

import "github.com/firstfortune/tracking-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// El password debe llegar ya hasheado: el store no hashea, eso es
// responsabilidad del caso de uso que llama a Create.
type UserRepository interface {
	// Create persiste el usuario y asigna el siguiente ID secuencial.
	// Retorna domain.ErrEmailAlreadyExists si el email ya existe (case-insensitive).
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	// GetByEmail busca por email con comparación case-insensitive exacta.
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
}
