package memory

import (
	"strings"
	"sync"

	"github.com/firstfortune/tracking-api/internal/domain"
	"github.com/firstfortune/tracking-api/internal/domain/entity"
	"github.com/firstfortune/tracking-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria del puerto UserRepository. A diferencia
// del runtime de un solo hilo del despliegue anterior, aquí los handlers
// corren concurrentes, así que la colección se protege con RWMutex.
type UserRepo struct {
	mu     sync.RWMutex
	users  []*entity.User
	nextID int64
}

// NewUserRepository construye el store en memoria de usuarios.
func NewUserRepository() *UserRepo {
	return &UserRepo{nextID: 1}
}

// Create persiste el usuario y asigna el siguiente ID secuencial.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, user)
	return nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// GetByEmail obtiene un usuario por email (case-insensitive); nil si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// List devuelve todos los usuarios en orden de creación.
func (r *UserRepo) List() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

// cloneUser copia el registro para que los lectores no compartan memoria con
// el store. VaultAssets se trata como solo-lectura después del seed.
func cloneUser(u *entity.User) *entity.User {
	c := *u
	return &c
}
