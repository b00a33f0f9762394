package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleUser   = "user"
	RoleSeller = "seller"
)

// User representa un usuario del sistema. Username es único entre todos los
// usuarios, estén activos o no. PasswordHash nunca sale del dominio en claro.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt
	Name         string
	Email        string
	Role         string // admin, user, seller
	Active       bool
	CreatedAt    time.Time
}

// UserPatch conjunto parcial de campos para actualizar un usuario.
// Los punteros nil significan "no tocar". ID y CreatedAt nunca cambian.
type UserPatch struct {
	PasswordHash *string // ya hasheado por el caso de uso
	Name         *string
	Email        *string
	Role         *string
	Active       *bool
}
