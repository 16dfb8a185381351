package dto

import "time"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=64"`
}

// LoginResponse token de sesión firmado más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest alta de usuario (solo admin).
type CreateUserRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=64"`
	Name            string `json:"name" validate:"required,max=64"`
	Role            string `json:"role" validate:"required,oneof=admin s-user user"`
	Password        string `json:"password" validate:"required,min=8,max=64"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// UpdateRoleRequest cambio de rol (solo admin). Repetir el mismo rol es
// idempotente: éxito ambas veces.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin s-user user"`
}

// ChangePasswordRequest cambio de contraseña propio: la nueva debe
// coincidir con la confirmación y diferir de la anterior.
type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword" validate:"required,max=64"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=64,nefield=OldPassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// SetPasswordRequest cambio de contraseña de otro usuario (solo admin).
type SetPasswordRequest struct {
	Password        string `json:"password" validate:"required,min=8,max=64"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// UserResponse usuario sin campos sensibles.
type UserResponse struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Name       string     `json:"name"`
	Role       string     `json:"role"`
	Active     bool       `json:"active"`
	LastActive *time.Time `json:"lastActive,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}
