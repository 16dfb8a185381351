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

var errGettingItems = errors.New("error al obtener los ítems")

// ItemUseCase acciones sobre el catálogo de ítems. Un ítem referenciado
// por líneas de compra/venta o vínculos de proyecto no se elimina.
type ItemUseCase struct {
	items     repository.ItemRepository
	lineItems repository.LineItemRepository
	log       *logger.Logger
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(items repository.ItemRepository, lineItems repository.LineItemRepository, log *logger.Logger) *ItemUseCase {
	return &ItemUseCase{items: items, lineItems: lineItems, log: log}
}

// Create alta de un ítem de catálogo.
func (uc *ItemUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now()
	item := &entity.Item{
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		Make:        in.Make,
		MPN:         in.MPN,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   actor.ID,
	}
	id, err := uc.items.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id
	return toItemResponse(item), nil
}

// GetByID obtiene el detalle de un ítem.
func (uc *ItemUseCase) GetByID(ctx context.Context, id int64) (*dto.ItemResponse, error) {
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List página de ítems con búsqueda ponderada (nombre sobre tipo/marca).
func (uc *ItemUseCase) List(ctx context.Context, in dto.PageRequest) (*dto.ItemListResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	in.DefaultPage()
	params := repository.ListParams{
		Page:   in.Page,
		Filter: repository.Filter{Type: repository.FilterType(in.FilterType), Value: in.FilterValue},
		Search: in.Search,
	}
	list, err := uc.items.List(ctx, params)
	if err != nil {
		if errors.Is(err, domain.ErrDataCorrupted) {
			return nil, err
		}
		uc.log.Error().Err(err).Msg("listar ítems")
		return nil, errGettingItems
	}
	total, err := uc.items.Count(ctx, params.Filter)
	if err != nil {
		uc.log.Error().Err(err).Msg("contar ítems")
		return nil, errGettingItems
	}
	items := make([]dto.ItemBriefResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.ItemBriefResponse{ID: b.ID, Name: b.Name, Type: b.Type, Make: b.Make})
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: in.Page, Limit: repository.DefaultPageLimit, Total: total},
	}, nil
}

// Update edición parcial de un ítem.
func (uc *ItemUseCase) Update(ctx context.Context, actor domain.Actor, id int64, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Type != nil {
		item.Type = *in.Type
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Make != nil {
		item.Make = *in.Make
	}
	if in.MPN != nil {
		item.MPN = *in.MPN
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
	item.UpdatedAt = time.Now()
	item.UpdatedBy = &actor.ID
	if err := uc.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina el ítem solo si ninguna línea lo referencia (invariante
// de conteo de referencias verificado antes del borrado).
func (uc *ItemUseCase) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return domain.ErrForbidden
	}
	item, err := uc.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	refs, err := uc.lineItems.CountByItem(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrInUse
	}
	return uc.items.Delete(ctx, id)
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Type:        i.Type,
		Description: i.Description,
		Make:        i.Make,
		MPN:         i.MPN,
		Notes:       i.Notes,
	}
}
