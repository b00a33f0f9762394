package dto

// LoginRequest credenciales para el login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse usuario autenticado más el token emitido. El token es un
// comprobante para el cliente; esta API no lo exige en ninguna ruta.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
