package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
	"github.com/seifmegahed/daftar-sub000/internal/application/validate"
	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
	"github.com/seifmegahed/daftar-sub000/internal/domain/repository"
)

// UserUseCase administración de usuarios. Todas las operaciones son solo
// admin salvo la lectura del propio perfil.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Create alta de usuario: hashea la contraseña con bcrypt y persiste.
func (uc *UserUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !domain.Can(actor, domain.ActionManageUsers, 0) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Username:     in.Username,
		Name:         in.Name,
		Role:         domain.Role(in.Role),
		Active:       true,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	id, err := uc.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return toUserResponse(user), nil
}

// GetByID perfil de un usuario: el propio o cualquiera para un admin.
func (uc *UserUseCase) GetByID(ctx context.Context, actor domain.Actor, id int64) (*dto.UserResponse, error) {
	if actor.ID != id && !domain.Can(actor, domain.ActionManageUsers, 0) {
		return nil, domain.ErrForbidden
	}
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List todos los usuarios (solo admin).
func (uc *UserUseCase) List(ctx context.Context, actor domain.Actor) ([]dto.UserResponse, error) {
	if !domain.Can(actor, domain.ActionManageUsers, 0) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, b := range list {
		out = append(out, dto.UserResponse{
			ID: b.ID, Username: b.Username, Name: b.Name, Role: string(b.Role), Active: b.Active,
		})
	}
	return out, nil
}

// UpdateRole cambia el rol de otro usuario (solo admin). Repetir el mismo
// rol es idempotente: la escritura no-op también reporta éxito.
func (uc *UserUseCase) UpdateRole(ctx context.Context, actor domain.Actor, id int64, in dto.UpdateRoleRequest) error {
	if !domain.Can(actor, domain.ActionManageUsers, 0) {
		return domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return err
	}
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.users.UpdateRole(ctx, id, domain.Role(in.Role))
}

// SetActive activa o desactiva la cuenta (solo admin).
func (uc *UserUseCase) SetActive(ctx context.Context, actor domain.Actor, id int64, active bool) error {
	if !domain.Can(actor, domain.ActionManageUsers, 0) {
		return domain.ErrForbidden
	}
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.users.UpdateActive(ctx, id, active)
}

// SetPassword fija la contraseña de otro usuario (solo admin).
func (uc *UserUseCase) SetPassword(ctx context.Context, actor domain.Actor, id int64, in dto.SetPasswordRequest) error {
	if !domain.Can(actor, domain.ActionSetUserPassword, 0) {
		return domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return err
	}
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.users.UpdatePassword(ctx, id, string(hash))
}

// Unlock limpia contadores de bloqueo de la cuenta (solo admin).
func (uc *UserUseCase) Unlock(ctx context.Context, actor domain.Actor, id int64) error {
	if !domain.Can(actor, domain.ActionManageUsers, 0) {
		return domain.ErrForbidden
	}
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	user.WrongAttempts = 0
	user.LockedUntil = nil
	return uc.users.SaveLoginState(ctx, user)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Name:       u.Name,
		Role:       string(u.Role),
		Active:     u.Active,
		LastActive: u.LastActive,
		CreatedAt:  u.CreatedAt,
	}
}
