package repository

import (
	"context"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
)

// AddressRepository define el puerto de persistencia para Address (DIP).
type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Address, error)
	ListByOwner(ctx context.Context, owner domain.AccountRef) ([]entity.Address, error)
	Update(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, id int64) error
	// DeleteByOwner elimina todas las direcciones del dueño (cascada manual
	// dentro de la transacción de borrado del padre).
	DeleteByOwner(ctx context.Context, owner domain.AccountRef) error
}

// ContactRepository define el puerto de persistencia para Contact (DIP).
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Contact, error)
	ListByOwner(ctx context.Context, owner domain.AccountRef) ([]entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, id int64) error
	DeleteByOwner(ctx context.Context, owner domain.AccountRef) error
}
