package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
	"github.com/seifmegahed/daftar-sub000/internal/application/validate"
	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
	"github.com/seifmegahed/daftar-sub000/internal/domain/repository"
	"github.com/seifmegahed/daftar-sub000/pkg/logger"
)

var errGettingProjects = errors.New("error al obtener los proyectos")

// ProjectUseCase acciones sobre proyectos y sus líneas de compra/venta.
// Editar, transferir o eliminar exige ser dueño del proyecto o admin.
type ProjectUseCase struct {
	projects  repository.ProjectRepository
	clients   repository.ClientRepository
	suppliers repository.SupplierRepository
	items     repository.ItemRepository
	users     repository.UserRepository
	lineItems repository.LineItemRepository
	tx        TxRunner
	log       *logger.Logger
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(
	projects repository.ProjectRepository,
	clients repository.ClientRepository,
	suppliers repository.SupplierRepository,
	items repository.ItemRepository,
	users repository.UserRepository,
	lineItems repository.LineItemRepository,
	tx TxRunner,
	log *logger.Logger,
) *ProjectUseCase {
	return &ProjectUseCase{
		projects: projects, clients: clients, suppliers: suppliers,
		items: items, users: users, lineItems: lineItems, tx: tx, log: log,
	}
}

// Create alta de proyecto. El cliente debe existir; sin OwnerID explícito
// el dueño es el actor.
func (uc *ProjectUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	client, err := uc.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	ownerID := in.OwnerID
	if ownerID == 0 {
		ownerID = actor.ID
	} else if owner, err := uc.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	} else if owner == nil {
		return nil, domain.ErrUserNotFound
	}
	now := time.Now()
	project := &entity.Project{
		Name:        in.Name,
		ClientID:    in.ClientID,
		OwnerID:     ownerID,
		Status:      entity.ProjectStatus(in.Status),
		Description: in.Description,
		Notes:       in.Notes,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   actor.ID,
	}
	id, err := uc.projects.Create(ctx, project)
	if err != nil {
		return nil, err
	}
	project.ID = id
	return toProjectResponse(project), nil
}

// GetByID obtiene el detalle de un proyecto.
func (uc *ProjectUseCase) GetByID(ctx context.Context, id int64) (*dto.ProjectResponse, error) {
	project, err := uc.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(project), nil
}

// List página de proyectos con filtro (estado o rangos de fecha) y búsqueda.
func (uc *ProjectUseCase) List(ctx context.Context, in dto.PageRequest) (*dto.ProjectListResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	in.DefaultPage()
	params := repository.ListParams{
		Page:   in.Page,
		Filter: repository.Filter{Type: repository.FilterType(in.FilterType), Value: in.FilterValue},
		Search: in.Search,
	}
	list, err := uc.projects.List(ctx, params)
	if err != nil {
		if errors.Is(err, domain.ErrDataCorrupted) || errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		uc.log.Error().Err(err).Msg("listar proyectos")
		return nil, errGettingProjects
	}
	total, err := uc.projects.Count(ctx, params.Filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		uc.log.Error().Err(err).Msg("contar proyectos")
		return nil, errGettingProjects
	}
	items := make([]dto.ProjectBriefResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.ProjectBriefResponse{
			ID:         b.ID,
			Name:       b.Name,
			Status:     int(b.Status),
			ClientName: b.ClientName,
			CreatedAt:  b.CreatedAt,
		})
	}
	return &dto.ProjectListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: in.Page, Limit: repository.DefaultPageLimit, Total: total},
	}, nil
}

// Update edición parcial (dueño o admin).
func (uc *ProjectUseCase) Update(ctx context.Context, actor domain.Actor, id int64, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	project, err := uc.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if !domain.Can(actor, domain.ActionManageProject, project.OwnerID) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Notes != nil {
		project.Notes = *in.Notes
	}
	if in.StartDate != nil {
		project.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		project.EndDate = in.EndDate
	}
	project.UpdatedAt = time.Now()
	project.UpdatedBy = &actor.ID
	if err := uc.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// TransferOwner cambia el dueño (dueño actual o admin). El nuevo dueño
// debe existir.
func (uc *ProjectUseCase) TransferOwner(ctx context.Context, actor domain.Actor, id int64, in dto.TransferOwnerRequest) error {
	if err := validate.Struct(in); err != nil {
		return err
	}
	project, err := uc.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	if !domain.Can(actor, domain.ActionManageProject, project.OwnerID) {
		return domain.ErrForbidden
	}
	newOwner, err := uc.users.GetByID(ctx, in.OwnerID)
	if err != nil {
		return err
	}
	if newOwner == nil {
		return domain.ErrUserNotFound
	}
	return uc.projects.UpdateOwner(ctx, id, in.OwnerID, actor.ID)
}

// SetStatus cambia el código de estado (dueño o admin).
func (uc *ProjectUseCase) SetStatus(ctx context.Context, actor domain.Actor, id int64, in dto.SetStatusRequest) error {
	if err := validate.Struct(in); err != nil {
		return err
	}
	status := entity.ProjectStatus(in.Status)
	if !status.Valid() {
		return domain.ErrInvalidInput
	}
	project, err := uc.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	if !domain.Can(actor, domain.ActionManageProject, project.OwnerID) {
		return domain.ErrForbidden
	}
	return uc.projects.UpdateStatus(ctx, id, status, actor.ID)
}

// Delete elimina el proyecto y sus dependientes en una transacción, líneas
// y relaciones de documentos antes que la fila del proyecto.
func (uc *ProjectUseCase) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	project, err := uc.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	if !domain.Can(actor, domain.ActionManageProject, project.OwnerID) {
		return domain.ErrForbidden
	}
	docOwner := domain.DocumentRef{Kind: domain.RefProject, ID: id}
	return uc.tx.Run(ctx, func(r TxRepos) error {
		if err := r.LineItems.DeleteByProject(ctx, id); err != nil {
			return err
		}
		if err := r.Documents.DeleteRelationsByOwner(ctx, docOwner); err != nil {
			return err
		}
		return r.Projects.Delete(ctx, id)
	})
}

// AddPurchaseItem agrega una línea de compra; ítem y proveedor deben existir.
func (uc *ProjectUseCase) AddPurchaseItem(ctx context.Context, actor domain.Actor, projectID int64, in dto.AddPurchaseItemRequest) (*dto.PurchaseItemResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	project, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if !domain.Can(actor, domain.ActionManageProject, project.OwnerID) {
		return nil, domain.ErrForbidden
	}
	item, err := uc.items.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.suppliers.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	line := &entity.PurchaseItem{
		ProjectID:  projectID,
		ItemID:     in.ItemID,
		SupplierID: in.SupplierID,
		Price:      in.Price,
		Currency:   in.Currency,
		Quantity:   in.Quantity,
		CreatedAt:  time.Now(),
		CreatedBy:  actor.ID,
	}
	id, err := uc.lineItems.CreatePurchase(ctx, line)
	if err != nil {
		return nil, err
	}
	line.ID = id
	return &dto.PurchaseItemResponse{
		ID: id, ItemID: line.ItemID, SupplierID: line.SupplierID,
		Price: line.Price, Currency: line.Currency, Quantity: line.Quantity,
	}, nil
}

// AddSaleItem agrega una línea de venta; el ítem debe existir.
func (uc *ProjectUseCase) AddSaleItem(ctx context.Context, actor domain.Actor, projectID int64, in dto.AddSaleItemRequest) (*dto.SaleItemResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	project, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if !domain.Can(actor, domain.ActionManageProject, project.OwnerID) {
		return nil, domain.ErrForbidden
	}
	item, err := uc.items.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	line := &entity.SaleItem{
		ProjectID: projectID,
		ItemID:    in.ItemID,
		Price:     in.Price,
		Currency:  in.Currency,
		Quantity:  in.Quantity,
		CreatedAt: time.Now(),
		CreatedBy: actor.ID,
	}
	id, err := uc.lineItems.CreateSale(ctx, line)
	if err != nil {
		return nil, err
	}
	line.ID = id
	return &dto.SaleItemResponse{
		ID: id, ItemID: line.ItemID,
		Price: line.Price, Currency: line.Currency, Quantity: line.Quantity,
	}, nil
}

// LinkItem vincula un ítem al proyecto sin datos comerciales.
func (uc *ProjectUseCase) LinkItem(ctx context.Context, actor domain.Actor, projectID, itemID int64) error {
	project, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	if !domain.Can(actor, domain.ActionManageProject, project.OwnerID) {
		return domain.ErrForbidden
	}
	item, err := uc.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	_, err = uc.lineItems.CreateLink(ctx, &entity.ProjectItem{
		ProjectID: projectID,
		ItemID:    itemID,
		CreatedAt: time.Now(),
		CreatedBy: actor.ID,
	})
	return err
}

// GetItems las tres colecciones de líneas del proyecto.
func (uc *ProjectUseCase) GetItems(ctx context.Context, projectID int64) (*dto.ProjectItemsResponse, error) {
	project, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	purchases, err := uc.lineItems.PurchasesByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	sales, err := uc.lineItems.SalesByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	links, err := uc.lineItems.LinksByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := &dto.ProjectItemsResponse{
		Purchases: make([]dto.PurchaseItemResponse, 0, len(purchases)),
		Sales:     make([]dto.SaleItemResponse, 0, len(sales)),
		LinkedIDs: make([]int64, 0, len(links)),
	}
	for _, p := range purchases {
		out.Purchases = append(out.Purchases, dto.PurchaseItemResponse{
			ID: p.ID, ItemID: p.ItemID, SupplierID: p.SupplierID,
			Price: p.Price, Currency: p.Currency, Quantity: p.Quantity,
		})
	}
	for _, s := range sales {
		out.Sales = append(out.Sales, dto.SaleItemResponse{
			ID: s.ID, ItemID: s.ItemID,
			Price: s.Price, Currency: s.Currency, Quantity: s.Quantity,
		})
	}
	for _, l := range links {
		out.LinkedIDs = append(out.LinkedIDs, l.ItemID)
	}
	return out, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	if p == nil {
		return nil
	}
	return &dto.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		ClientID:    p.ClientID,
		OwnerID:     p.OwnerID,
		Status:      int(p.Status),
		Description: p.Description,
		Notes:       p.Notes,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
