package dto

import "time"

// CreateUserRequest entrada para crear un usuario.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role"` // admin, user, seller; por defecto user
}

// UpdateUserRequest entrada para actualización parcial de un usuario.
// Los campos nil no se tocan.
type UpdateUserRequest struct {
	Password *string `json:"password" validate:"omitempty,min=6"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
}

// UserResponse salida de un usuario. Nunca incluye el hash de contraseña.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse lista de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}
