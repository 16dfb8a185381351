// Package auth autenticación: login con bloqueo por intentos fallidos y
// cambio de contraseña propio.
package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
	"github.com/seifmegahed/daftar-sub000/internal/application/validate"
	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
	"github.com/seifmegahed/daftar-sub000/internal/domain/repository"
	"github.com/seifmegahed/daftar-sub000/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
	// now inyectable para los tests de bloqueo.
	now func() time.Time
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg, now: time.Now}
}

// Login verifica credenciales con la política de bloqueo: una cuenta
// bloqueada no compara contraseñas; el quinto intento fallido la bloquea
// por treinta minutos; el éxito limpia contadores y firma el JWT.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrWrongPassword // no revelar si el usuario existe
	}
	if !user.Active {
		return nil, domain.ErrAccountInactive
	}
	now := uc.now()
	if user.Locked(now) {
		return nil, domain.ErrAccountLocked
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		user.WrongAttempts++
		if user.WrongAttempts >= entity.MaxWrongAttempts {
			until := now.Add(entity.LockDuration)
			user.LockedUntil = &until
			user.WrongAttempts = 0
		}
		if saveErr := uc.users.SaveLoginState(ctx, user); saveErr != nil {
			return nil, saveErr
		}
		if user.LockedUntil != nil {
			return nil, domain.ErrAccountLocked
		}
		return nil, domain.ErrWrongPassword
	}

	user.WrongAttempts = 0
	user.LockedUntil = nil
	user.LastActive = &now
	if err := uc.users.SaveLoginState(ctx, user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:         user.ID,
			Username:   user.Username,
			Name:       user.Name,
			Role:       string(user.Role),
			Active:     user.Active,
			LastActive: user.LastActive,
			CreatedAt:  user.CreatedAt,
		},
	}, nil
}

// ChangePassword cambio propio: exige la contraseña anterior correcta; la
// nueva debe coincidir con la confirmación y diferir de la anterior (reglas
// cruzadas del DTO).
func (uc *AuthUseCase) ChangePassword(ctx context.Context, actor domain.Actor, in dto.ChangePasswordRequest) error {
	if err := validate.Struct(in); err != nil {
		return err
	}
	user, err := uc.users.GetByID(ctx, actor.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.OldPassword)); err != nil {
		return domain.ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.users.UpdatePassword(ctx, user.ID, string(hash))
}
