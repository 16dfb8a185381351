package repository

import (
	"context"

	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client (DIP).
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	List(ctx context.Context, params ListParams) ([]entity.ClientBrief, error)
	Count(ctx context.Context, filter Filter) (int, error)
	Update(ctx context.Context, client *entity.Client) error
	// UpdatePrimaryRefs fija las referencias débiles a dirección y contacto
	// primarios una vez que las filas hijas existen.
	UpdatePrimaryRefs(ctx context.Context, id int64, addressID, contactID *int64) error
	Delete(ctx context.Context, id int64) error
}

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	List(ctx context.Context, params ListParams) ([]entity.SupplierBrief, error)
	Count(ctx context.Context, filter Filter) (int, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	UpdatePrimaryRefs(ctx context.Context, id int64, addressID, contactID *int64) error
	Delete(ctx context.Context, id int64) error
}
