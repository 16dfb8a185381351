package entity

import (
	"time"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

// MaxWrongAttempts intentos fallidos antes de bloquear la cuenta.
const MaxWrongAttempts = 5

// LockDuration tiempo de bloqueo tras superar MaxWrongAttempts.
const LockDuration = 30 * time.Minute

// User sujeto de autenticación y autorización.
type User struct {
	ID            int64
	Username      string // único
	Name          string
	Role          domain.Role
	Active        bool
	PasswordHash  string
	WrongAttempts int        // intentos de login fallidos consecutivos
	LockedUntil   *time.Time // nil = sin bloqueo
	LastActive    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Locked true si la cuenta sigue bloqueada en el instante now.
func (u *User) Locked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// UserBrief proyección reducida para listados.
type UserBrief struct {
	ID       int64
	Username string
	Name     string
	Role     domain.Role
	Active   bool
}

// Validate re-valida la forma de la proyección leída del almacén.
func (b UserBrief) Validate() error {
	if b.ID <= 0 || b.Username == "" || !b.Role.Valid() {
		return domain.ErrDataCorrupted
	}
	return nil
}
