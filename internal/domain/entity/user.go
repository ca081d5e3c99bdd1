package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// VaultAssets sub-registro libre de activos en custodia (oro, diamantes, etc.).
// Solo algunas cuentas lo tienen; nil significa que no hay activos en bóveda.
type VaultAssets map[string]any

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Email        string // clave de búsqueda, comparación case-insensitive
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Company      string
	Phone        string
	Role         string // admin, customer
	Verified     bool
	CreatedAt    time.Time
	VaultAssets  VaultAssets
}
