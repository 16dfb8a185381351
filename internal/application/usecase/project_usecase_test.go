package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
	"github.com/seifmegahed/daftar-sub000/internal/application/usecase"
	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
	"github.com/seifmegahed/daftar-sub000/pkg/logger"
)

type projectFixture struct {
	projects  *fakeProjectRepo
	clients   *fakeClientRepo
	suppliers *fakeSupplierRepo
	items     *fakeItemRepo
	users     *fakeUserRepo
	lineItems *fakeLineItemRepo
	documents *fakeDocumentRepo
	tx        *fakeTx
	uc        *usecase.ProjectUseCase

	clientID int64
	itemID   int64
}

func newProjectFixture(t *testing.T) *projectFixture {
	t.Helper()
	f := &projectFixture{
		projects:  newFakeProjectRepo(),
		clients:   newFakeClientRepo(),
		suppliers: newFakeSupplierRepo(),
		items:     newFakeItemRepo(),
		users:     newFakeUserRepo(),
		lineItems: newFakeLineItemRepo(),
		documents: newFakeDocumentRepo(),
	}
	f.tx = &fakeTx{repos: usecase.TxRepos{
		Projects:  f.projects,
		LineItems: f.lineItems,
		Documents: f.documents,
	}}
	f.uc = usecase.NewProjectUseCase(
		f.projects, f.clients, f.suppliers, f.items, f.users, f.lineItems, f.tx, logger.NewNop(),
	)

	ctx := context.Background()
	var err error
	f.clientID, err = f.clients.Create(ctx, &entity.Client{Name: "Acme Corp"})
	require.NoError(t, err)
	f.itemID, err = f.items.Create(ctx, &entity.Item{Name: "Bomba centrífuga"})
	require.NoError(t, err)
	_, err = f.users.Create(ctx, &entity.User{Username: "owner", Name: "Owner", Role: domain.RoleUser, Active: true})
	require.NoError(t, err)
	return f
}

func (f *projectFixture) createProject(t *testing.T, actor domain.Actor) *dto.ProjectResponse {
	t.Helper()
	resp, err := f.uc.Create(context.Background(), actor, dto.CreateProjectRequest{
		Name:     "Planta de bombeo",
		ClientID: f.clientID,
	})
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta y propiedad
// ──────────────────────────────────────────────────────────────────────────────

func TestProjectCreate_DuenoPorDefecto(t *testing.T) {
	f := newProjectFixture(t)
	actor := domain.Actor{ID: 7, Role: domain.RoleUser}

	resp, err := f.uc.Create(context.Background(), actor, dto.CreateProjectRequest{
		Name:     "Planta de bombeo",
		ClientID: f.clientID,
	})
	require.NoError(t, err)
	assert.Equal(t, actor.ID, resp.OwnerID, "sin OwnerID explícito el dueño es el actor")
	assert.Equal(t, int(entity.StatusActive), resp.Status)
}

func TestProjectCreate_ClienteInexistente(t *testing.T) {
	f := newProjectFixture(t)
	_, err := f.uc.Create(context.Background(), testActor, dto.CreateProjectRequest{
		Name:     "Huérfano",
		ClientID: 999,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectCreate_DuenoExplicitoInexistente(t *testing.T) {
	f := newProjectFixture(t)
	_, err := f.uc.Create(context.Background(), testActor, dto.CreateProjectRequest{
		Name:     "Sin dueño",
		ClientID: f.clientID,
		OwnerID:  999,
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alcance "dueño o admin"
// ──────────────────────────────────────────────────────────────────────────────

func TestProjectUpdate_SoloDuenoOAdmin(t *testing.T) {
	f := newProjectFixture(t)
	owner := domain.Actor{ID: 7, Role: domain.RoleUser}
	resp := f.createProject(t, owner)

	otro := domain.Actor{ID: 8, Role: domain.RoleUser}
	name := "Renombrado"

	_, err := f.uc.Update(context.Background(), otro, resp.ID, dto.UpdateProjectRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden, "un usuario que no es dueño no edita el proyecto")

	_, err = f.uc.Update(context.Background(), owner, resp.ID, dto.UpdateProjectRequest{Name: &name})
	assert.NoError(t, err, "el dueño sí edita")

	admin := domain.Actor{ID: 1, Role: domain.RoleAdmin}
	_, err = f.uc.Update(context.Background(), admin, resp.ID, dto.UpdateProjectRequest{Name: &name})
	assert.NoError(t, err, "un admin edita cualquier proyecto")
}

func TestProjectTransferOwner(t *testing.T) {
	f := newProjectFixture(t)
	owner := domain.Actor{ID: 7, Role: domain.RoleUser}
	resp := f.createProject(t, owner)

	err := f.uc.TransferOwner(context.Background(), owner, resp.ID, dto.TransferOwnerRequest{OwnerID: 1})
	require.NoError(t, err)

	got, _ := f.projects.GetByID(context.Background(), resp.ID)
	assert.Equal(t, int64(1), got.OwnerID)

	// Tras transferir, el dueño anterior pierde el control.
	err = f.uc.TransferOwner(context.Background(), owner, resp.ID, dto.TransferOwnerRequest{OwnerID: 7})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProjectTransferOwner_NuevoDuenoInexistente(t *testing.T) {
	f := newProjectFixture(t)
	owner := domain.Actor{ID: 7, Role: domain.RoleUser}
	resp := f.createProject(t, owner)

	err := f.uc.TransferOwner(context.Background(), owner, resp.ID, dto.TransferOwnerRequest{OwnerID: 404})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestProjectSetStatus(t *testing.T) {
	f := newProjectFixture(t)
	owner := domain.Actor{ID: 7, Role: domain.RoleUser}
	resp := f.createProject(t, owner)

	err := f.uc.SetStatus(context.Background(), owner, resp.ID, dto.SetStatusRequest{Status: int(entity.StatusCompleted)})
	require.NoError(t, err)
	got, _ := f.projects.GetByID(context.Background(), resp.ID)
	assert.Equal(t, entity.StatusCompleted, got.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Líneas de compra, venta y vínculos
// ──────────────────────────────────────────────────────────────────────────────

func TestProjectAddPurchaseItem(t *testing.T) {
	f := newProjectFixture(t)
	owner := domain.Actor{ID: 7, Role: domain.RoleUser}
	resp := f.createProject(t, owner)
	supplierID, err := f.suppliers.Create(context.Background(), &entity.Supplier{Name: "Proveedor SA"})
	require.NoError(t, err)

	line, err := f.uc.AddPurchaseItem(context.Background(), owner, resp.ID, dto.AddPurchaseItemRequest{
		ItemID:     f.itemID,
		SupplierID: supplierID,
		Price:      decimal.NewFromFloat(1250.50),
		Currency:   "EGP",
		Quantity:   3,
	})
	require.NoError(t, err)
	assert.True(t, line.Price.Equal(decimal.NewFromFloat(1250.50)),
		"el precio decimal debe conservarse exacto")

	t.Run("proveedor inexistente", func(t *testing.T) {
		_, err := f.uc.AddPurchaseItem(context.Background(), owner, resp.ID, dto.AddPurchaseItemRequest{
			ItemID: f.itemID, SupplierID: 999, Price: decimal.NewFromInt(1), Currency: "EGP", Quantity: 1,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestProjectLinkItem_DuplicadoRechazado(t *testing.T) {
	f := newProjectFixture(t)
	owner := domain.Actor{ID: 7, Role: domain.RoleUser}
	resp := f.createProject(t, owner)

	require.NoError(t, f.uc.LinkItem(context.Background(), owner, resp.ID, f.itemID))
	err := f.uc.LinkItem(context.Background(), owner, resp.ID, f.itemID)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el mismo par proyecto-ítem no se vincula dos veces")
}

func TestProjectGetItems(t *testing.T) {
	f := newProjectFixture(t)
	owner := domain.Actor{ID: 7, Role: domain.RoleUser}
	resp := f.createProject(t, owner)
	supplierID, _ := f.suppliers.Create(context.Background(), &entity.Supplier{Name: "Proveedor SA"})

	_, err := f.uc.AddPurchaseItem(context.Background(), owner, resp.ID, dto.AddPurchaseItemRequest{
		ItemID: f.itemID, SupplierID: supplierID, Price: decimal.NewFromInt(100), Currency: "USD", Quantity: 2,
	})
	require.NoError(t, err)
	_, err = f.uc.AddSaleItem(context.Background(), owner, resp.ID, dto.AddSaleItemRequest{
		ItemID: f.itemID, Price: decimal.NewFromInt(150), Currency: "USD", Quantity: 2,
	})
	require.NoError(t, err)
	require.NoError(t, f.uc.LinkItem(context.Background(), owner, resp.ID, f.itemID))

	items, err := f.uc.GetItems(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Len(t, items.Purchases, 1)
	assert.Len(t, items.Sales, 1)
	assert.Equal(t, []int64{f.itemID}, items.LinkedIDs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado con cascada de líneas y relaciones de documentos
// ──────────────────────────────────────────────────────────────────────────────

func TestProjectDelete_Cascada(t *testing.T) {
	f := newProjectFixture(t)
	owner := domain.Actor{ID: 7, Role: domain.RoleUser}
	resp := f.createProject(t, owner)

	require.NoError(t, f.uc.Delete(context.Background(), owner, resp.ID))

	got, _ := f.projects.GetByID(context.Background(), resp.ID)
	assert.Nil(t, got)
	assert.Contains(t, f.lineItems.deletedProjects, resp.ID,
		"las líneas del proyecto deben borrarse en cascada")
	assert.Contains(t, f.documents.deletedRelOwners, domain.DocumentRef{Kind: domain.RefProject, ID: resp.ID},
		"las relaciones de documentos del proyecto deben borrarse en cascada")
}

func TestProjectDelete_NoDuenoProhibido(t *testing.T) {
	f := newProjectFixture(t)
	owner := domain.Actor{ID: 7, Role: domain.RoleUser}
	resp := f.createProject(t, owner)

	err := f.uc.Delete(context.Background(), domain.Actor{ID: 8, Role: domain.RoleUser}, resp.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	got, _ := f.projects.GetByID(context.Background(), resp.ID)
	assert.NotNil(t, got, "el proyecto debe sobrevivir al intento")
}

func TestProjectSetStatus_CodigoFueraDeRango(t *testing.T) {
	f := newProjectFixture(t)
	owner := domain.Actor{ID: 7, Role: domain.RoleUser}
	resp := f.createProject(t, owner)

	err := f.uc.SetStatus(context.Background(), owner, resp.ID, dto.SetStatusRequest{Status: 9})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// El estado original no debe cambiar.
	got, _ := f.projects.GetByID(context.Background(), resp.ID)
	assert.Equal(t, entity.StatusActive, got.Status)
}
