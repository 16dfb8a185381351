package repository

import (
	"context"

	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	List(ctx context.Context, params ListParams) ([]entity.ItemBrief, error)
	Count(ctx context.Context, filter Filter) (int, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id int64) error
}
