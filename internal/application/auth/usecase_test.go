package auth

// Test interno al paquete para poder inyectar el reloj (campo now) y
// verificar la política de bloqueo con tiempos deterministas.

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
)

// memUserRepo doble en memoria del puerto de usuarios. Cuenta las
// comparaciones implícitamente a través del estado persistido.
type memUserRepo struct {
	byID      map[int64]*entity.User
	saveCalls int
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{byID: map[int64]*entity.User{}} }

func (m *memUserRepo) Create(_ context.Context, u *entity.User) (int64, error) {
	id := int64(len(m.byID) + 1)
	cp := *u
	cp.ID = id
	m.byID[id] = &cp
	return id, nil
}

func (m *memUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) List(_ context.Context) ([]entity.UserBrief, error) { return nil, nil }

func (m *memUserRepo) UpdateRole(_ context.Context, id int64, role domain.Role) error {
	m.byID[id].Role = role
	return nil
}

func (m *memUserRepo) UpdateActive(_ context.Context, id int64, active bool) error {
	m.byID[id].Active = active
	return nil
}

func (m *memUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	m.byID[id].PasswordHash = passwordHash
	return nil
}

func (m *memUserRepo) SaveLoginState(_ context.Context, user *entity.User) error {
	m.saveCalls++
	u := m.byID[user.ID]
	u.WrongAttempts = user.WrongAttempts
	u.LockedUntil = user.LockedUntil
	u.LastActive = user.LastActive
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testPassword = "clave-correcta-1"
	testSecret   = "test-secret-key-for-unit-tests"
)

func seedUser(t *testing.T, repo *memUserRepo) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	id, err := repo.Create(context.Background(), &entity.User{
		Username:     "jdoe",
		Name:         "John Doe",
		Role:         domain.RoleUser,
		Active:       true,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)
	return repo.byID[id]
}

func newTestUseCase(repo *memUserRepo, at time.Time) *AuthUseCase {
	uc := NewAuthUseCase(repo, JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "test"})
	uc.now = func() time.Time { return at }
	return uc
}

func login(uc *AuthUseCase, password string) (*dto.LoginResponse, error) {
	return uc.Login(context.Background(), dto.LoginRequest{Username: "jdoe", Password: password})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	repo := newMemUserRepo()
	seedUser(t, repo)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	resp, err := login(uc, testPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token, "el login exitoso firma un JWT")
	assert.Equal(t, "jdoe", resp.User.Username)

	stored := repo.byID[resp.User.ID]
	require.NotNil(t, stored.LastActive)
	assert.Equal(t, now, *stored.LastActive, "la última actividad se registra con el reloj inyectado")
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newTestUseCase(newMemUserRepo(), time.Now())
	_, err := login(uc, testPassword)
	// No revelar si el usuario existe: misma respuesta que contraseña mala.
	assert.ErrorIs(t, err, domain.ErrWrongPassword)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo)
	u.Active = false
	uc := newTestUseCase(repo, time.Now())

	_, err := login(uc, testPassword)
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la política de bloqueo
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_QuintoIntentoBloquea(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	// Cuatro intentos fallidos: contraseña mala, sin bloqueo todavía.
	for i := 1; i < entity.MaxWrongAttempts; i++ {
		_, err := login(uc, "clave-equivocada")
		require.ErrorIs(t, err, domain.ErrWrongPassword, "intento %d", i)
		assert.Equal(t, i, repo.byID[u.ID].WrongAttempts)
		assert.Nil(t, repo.byID[u.ID].LockedUntil)
	}

	// El quinto bloquea la cuenta media hora.
	_, err := login(uc, "clave-equivocada")
	require.ErrorIs(t, err, domain.ErrAccountLocked)
	stored := repo.byID[u.ID]
	require.NotNil(t, stored.LockedUntil)
	assert.Equal(t, now.Add(entity.LockDuration), *stored.LockedUntil)
	assert.Zero(t, stored.WrongAttempts, "el contador se reinicia al bloquear")
}

func TestLogin_CuentaBloqueadaNoComparaContrasenas(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	until := now.Add(10 * time.Minute)
	u.LockedUntil = &until
	uc := newTestUseCase(repo, now)
	saves := repo.saveCalls

	// Incluso con la contraseña correcta la cuenta bloqueada rechaza.
	_, err := login(uc, testPassword)
	assert.ErrorIs(t, err, domain.ErrAccountLocked)
	assert.Equal(t, saves, repo.saveCalls, "un intento sobre cuenta bloqueada no persiste nada")
}

func TestLogin_BloqueoExpiraYExitoLimpia(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo)
	lockStart := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	until := lockStart.Add(entity.LockDuration)
	u.LockedUntil = &until
	u.WrongAttempts = 0

	// Un segundo después de expirar el bloqueo, el login correcto entra y
	// limpia los contadores.
	uc := newTestUseCase(repo, until.Add(time.Second))
	resp, err := login(uc, testPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	stored := repo.byID[u.ID]
	assert.Nil(t, stored.LockedUntil)
	assert.Zero(t, stored.WrongAttempts)
}

func TestLogin_ExitoReiniciaContador(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo)
	uc := newTestUseCase(repo, time.Now())

	_, err := login(uc, "clave-equivocada")
	require.ErrorIs(t, err, domain.ErrWrongPassword)
	require.Equal(t, 1, repo.byID[u.ID].WrongAttempts)

	_, err = login(uc, testPassword)
	require.NoError(t, err)
	assert.Zero(t, repo.byID[u.ID].WrongAttempts, "el éxito limpia intentos fallidos previos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de cambio de contraseña propio
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword(t *testing.T) {
	repo := newMemUserRepo()
	u := seedUser(t, repo)
	uc := newTestUseCase(repo, time.Now())
	actor := domain.Actor{ID: u.ID, Role: domain.RoleUser}

	t.Run("anterior incorrecta", func(t *testing.T) {
		err := uc.ChangePassword(context.Background(), actor, dto.ChangePasswordRequest{
			OldPassword:     "no-es-la-clave",
			NewPassword:     "clave-nueva-22",
			ConfirmPassword: "clave-nueva-22",
		})
		assert.ErrorIs(t, err, domain.ErrWrongPassword)
	})

	t.Run("cambio exitoso", func(t *testing.T) {
		err := uc.ChangePassword(context.Background(), actor, dto.ChangePasswordRequest{
			OldPassword:     testPassword,
			NewPassword:     "clave-nueva-22",
			ConfirmPassword: "clave-nueva-22",
		})
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(repo.byID[u.ID].PasswordHash), []byte("clave-nueva-22")))

		// La contraseña anterior deja de servir.
		_, err = login(uc, testPassword)
		assert.ErrorIs(t, err, domain.ErrWrongPassword)
	})
}
