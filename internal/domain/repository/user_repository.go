package repository

import (
	"context"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]entity.UserBrief, error)
	UpdateRole(ctx context.Context, id int64, role domain.Role) error
	UpdateActive(ctx context.Context, id int64, active bool) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	// SaveLoginState persiste contadores de bloqueo y última actividad
	// tras un intento de login (exitoso o no).
	SaveLoginState(ctx context.Context, user *entity.User) error
}
