package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
	"github.com/seifmegahed/daftar-sub000/internal/application/usecase"
	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/pkg/logger"
)

type clientFixture struct {
	clients   *fakeClientRepo
	addresses *fakeAddressRepo
	contacts  *fakeContactRepo
	projects  *fakeProjectRepo
	documents *fakeDocumentRepo
	tx        *fakeTx
	uc        *usecase.ClientUseCase
}

func newClientFixture() *clientFixture {
	f := &clientFixture{
		clients:   newFakeClientRepo(),
		addresses: newFakeAddressRepo(),
		contacts:  newFakeContactRepo(),
		projects:  newFakeProjectRepo(),
		documents: newFakeDocumentRepo(),
	}
	f.tx = &fakeTx{repos: usecase.TxRepos{
		Clients:   f.clients,
		Addresses: f.addresses,
		Contacts:  f.contacts,
		Projects:  f.projects,
		Documents: f.documents,
	}}
	f.uc = usecase.NewClientUseCase(f.clients, f.addresses, f.contacts, f.projects, f.tx, logger.NewNop())
	return f
}

var testActor = domain.Actor{ID: 1, Role: domain.RoleUser}

func validCreateClientRequest() dto.CreateClientRequest {
	return dto.CreateClientRequest{
		Name:               "Acme Corp",
		RegistrationNumber: "REG-001",
		Address: dto.AddressData{
			Name:        "HQ",
			AddressLine: "123 Main St",
			Country:     "Egypt",
			City:        "Cairo",
		},
		Contact: dto.ContactData{
			Name:  "Jane Roe",
			Email: "jane@acme.test",
			Phone: "+20100000000",
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta compuesta
// ──────────────────────────────────────────────────────────────────────────────

func TestClientCreateFull_AltaCompuesta(t *testing.T) {
	f := newClientFixture()

	resp, err := f.uc.CreateFull(context.Background(), testActor, validCreateClientRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, 1, f.tx.runs, "el alta compuesta corre en una sola transacción")
	assert.Equal(t, "Acme Corp", resp.Name)
	assert.NotZero(t, resp.ID, "la respuesta debe llevar el id generado por el almacén")
	require.NotNil(t, resp.PrimaryAddressID, "la referencia primaria a dirección debe quedar fijada")
	require.NotNil(t, resp.PrimaryContactID, "la referencia primaria a contacto debe quedar fijada")

	// Los hijos quedan colgados del cliente recién creado.
	owner := domain.AccountRef{Kind: domain.RefClient, ID: resp.ID}
	addrs, _ := f.addresses.ListByOwner(context.Background(), owner)
	conts, _ := f.contacts.ListByOwner(context.Background(), owner)
	require.Len(t, addrs, 1)
	require.Len(t, conts, 1)
	assert.Equal(t, addrs[0].ID, *resp.PrimaryAddressID)
	assert.Equal(t, conts[0].ID, *resp.PrimaryContactID)
}

func TestClientCreateFull_FalloEnHijoRevierte(t *testing.T) {
	f := newClientFixture()
	boom := errors.New("fallo simulado al insertar la dirección")
	f.addresses.createErr = boom

	resp, err := f.uc.CreateFull(context.Background(), testActor, validCreateClientRequest())
	require.ErrorIs(t, err, boom, "el error del paso hijo debe propagarse sin envolver")
	assert.Nil(t, resp)
	assert.Equal(t, 0, f.clients.primaryRefsCalls,
		"los pasos posteriores al fallo no deben ejecutarse")
	assert.ErrorIs(t, f.tx.lastError, boom, "la transacción debe terminar en error (rollback)")
}

func TestClientCreateFull_DuplicadoSePropaga(t *testing.T) {
	f := newClientFixture()
	f.clients.createErr = domain.ErrDuplicate

	_, err := f.uc.CreateFull(context.Background(), testActor, validCreateClientRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestClientCreateFull_ValidacionYPermisos(t *testing.T) {
	f := newClientFixture()

	t.Run("actor sin permisos", func(t *testing.T) {
		_, err := f.uc.CreateFull(context.Background(), domain.Actor{}, validCreateClientRequest())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("dirección incompleta", func(t *testing.T) {
		in := validCreateClientRequest()
		in.Address.AddressLine = ""
		_, err := f.uc.CreateFull(context.Background(), testActor, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, 0, f.tx.runs, "la validación debe cortar antes de tocar el almacén")
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestClientUpdate_Parcial(t *testing.T) {
	f := newClientFixture()
	resp, err := f.uc.CreateFull(context.Background(), testActor, validCreateClientRequest())
	require.NoError(t, err)

	web := "https://acme.test"
	updated, err := f.uc.Update(context.Background(), testActor, resp.ID, dto.UpdateClientRequest{Website: &web})
	require.NoError(t, err)
	assert.Equal(t, web, updated.Website)
	assert.Equal(t, "Acme Corp", updated.Name, "los campos no enviados no deben cambiar")
}

func TestClientUpdate_NoExiste(t *testing.T) {
	f := newClientFixture()
	name := "Nadie"
	_, err := f.uc.Update(context.Background(), testActor, 99, dto.UpdateClientRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado con cascada manual
// ──────────────────────────────────────────────────────────────────────────────

func TestClientDelete_BloqueadoPorProyectos(t *testing.T) {
	f := newClientFixture()
	resp, err := f.uc.CreateFull(context.Background(), testActor, validCreateClientRequest())
	require.NoError(t, err)

	f.projects.countByClient[resp.ID] = 2

	err = f.uc.Delete(context.Background(), testActor, resp.ID)
	require.ErrorIs(t, err, domain.ErrInUse,
		"un cliente con proyectos no se elimina")
	got, _ := f.clients.GetByID(context.Background(), resp.ID)
	assert.NotNil(t, got, "el cliente debe seguir existiendo")
	assert.Equal(t, 1, f.tx.runs, "solo el alta debe haber corrido en transacción")
}

func TestClientDelete_CascadaCompleta(t *testing.T) {
	f := newClientFixture()
	resp, err := f.uc.CreateFull(context.Background(), testActor, validCreateClientRequest())
	require.NoError(t, err)

	err = f.uc.Delete(context.Background(), testActor, resp.ID)
	require.NoError(t, err)

	got, _ := f.clients.GetByID(context.Background(), resp.ID)
	assert.Nil(t, got, "el cliente debe desaparecer")

	owner := domain.AccountRef{Kind: domain.RefClient, ID: resp.ID}
	assert.Contains(t, f.addresses.deletedOwners, owner, "las direcciones del cliente deben borrarse en cascada")
	assert.Contains(t, f.contacts.deletedOwners, owner, "los contactos del cliente deben borrarse en cascada")
	assert.Contains(t, f.documents.deletedRelOwners, domain.DocumentRef{Kind: domain.RefClient, ID: resp.ID},
		"las relaciones de documentos del cliente deben borrarse en cascada")
}

func TestClientDelete_NoExiste(t *testing.T) {
	f := newClientFixture()
	err := f.uc.Delete(context.Background(), testActor, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
