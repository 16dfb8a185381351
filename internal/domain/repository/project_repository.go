package repository

import (
	"context"

	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para Project (DIP).
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Project, error)
	List(ctx context.Context, params ListParams) ([]entity.ProjectBrief, error)
	Count(ctx context.Context, filter Filter) (int, error)
	Update(ctx context.Context, project *entity.Project) error
	UpdateOwner(ctx context.Context, id, ownerID int64, updatedBy int64) error
	UpdateStatus(ctx context.Context, id int64, status entity.ProjectStatus, updatedBy int64) error
	Delete(ctx context.Context, id int64) error
	// CountByClient proyectos que referencian al cliente (bloquea el borrado
	// del cliente mientras sea mayor que cero).
	CountByClient(ctx context.Context, clientID int64) (int, error)
}

// LineItemRepository define el puerto para las tres tablas de líneas
// (compras, ventas y vínculos proyecto-ítem).
type LineItemRepository interface {
	CreatePurchase(ctx context.Context, line *entity.PurchaseItem) (int64, error)
	CreateSale(ctx context.Context, line *entity.SaleItem) (int64, error)
	CreateLink(ctx context.Context, link *entity.ProjectItem) (int64, error)
	PurchasesByProject(ctx context.Context, projectID int64) ([]entity.PurchaseItem, error)
	SalesByProject(ctx context.Context, projectID int64) ([]entity.SaleItem, error)
	LinksByProject(ctx context.Context, projectID int64) ([]entity.ProjectItem, error)
	// CountByItem referencias totales de un ítem en las tres tablas
	// (invariante de borrado de Item).
	CountByItem(ctx context.Context, itemID int64) (int, error)
	CountBySupplier(ctx context.Context, supplierID int64) (int, error)
	DeleteByProject(ctx context.Context, projectID int64) error
}
