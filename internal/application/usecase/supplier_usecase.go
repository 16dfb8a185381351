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

var errGettingSuppliers = errors.New("error al obtener los proveedores")

// SupplierUseCase acciones sobre proveedores. Mismo alta compuesta y misma
// cascada de borrado que ClientUseCase.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
	lineItems repository.LineItemRepository
	tx        TxRunner
	log       *logger.Logger
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(
	suppliers repository.SupplierRepository,
	lineItems repository.LineItemRepository,
	tx TxRunner,
	log *logger.Logger,
) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, lineItems: lineItems, tx: tx, log: log}
}

// CreateFull alta compuesta: proveedor + dirección + contacto en una
// transacción; rollback total si cualquier paso falla.
func (uc *SupplierUseCase) CreateFull(ctx context.Context, actor domain.Actor, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	now := time.Now()
	supplier := &entity.Supplier{
		Name:               in.Name,
		FieldOfBusiness:    in.FieldOfBusiness,
		RegistrationNumber: in.RegistrationNumber,
		Notes:              in.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
		CreatedBy:          actor.ID,
	}

	err := uc.tx.Run(ctx, func(r TxRepos) error {
		id, err := r.Suppliers.Create(ctx, supplier)
		if err != nil {
			return err
		}
		supplier.ID = id
		owner := domain.AccountRef{Kind: domain.RefSupplier, ID: id}
		addressID, err := r.Addresses.Create(ctx, &entity.Address{
			Owner:       owner,
			Name:        in.Address.Name,
			AddressLine: in.Address.AddressLine,
			Country:     in.Address.Country,
			City:        in.Address.City,
			Notes:       in.Address.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
			CreatedBy:   actor.ID,
		})
		if err != nil {
			return err
		}
		contactID, err := r.Contacts.Create(ctx, &entity.Contact{
			Owner:     owner,
			Name:      in.Contact.Name,
			Email:     in.Contact.Email,
			Phone:     in.Contact.Phone,
			Notes:     in.Contact.Notes,
			CreatedAt: now,
			UpdatedAt: now,
			CreatedBy: actor.ID,
		})
		if err != nil {
			return err
		}
		supplier.PrimaryAddressID = &addressID
		supplier.PrimaryContactID = &contactID
		return r.Suppliers.UpdatePrimaryRefs(ctx, id, &addressID, &contactID)
	})
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene el detalle de un proveedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// List página de proveedores con filtro y búsqueda.
func (uc *SupplierUseCase) List(ctx context.Context, in dto.PageRequest) (*dto.SupplierListResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	in.DefaultPage()
	params := repository.ListParams{
		Page:   in.Page,
		Filter: repository.Filter{Type: repository.FilterType(in.FilterType), Value: in.FilterValue},
		Search: in.Search,
	}
	list, err := uc.suppliers.List(ctx, params)
	if err != nil {
		if errors.Is(err, domain.ErrDataCorrupted) {
			return nil, err
		}
		uc.log.Error().Err(err).Msg("listar proveedores")
		return nil, errGettingSuppliers
	}
	total, err := uc.suppliers.Count(ctx, params.Filter)
	if err != nil {
		uc.log.Error().Err(err).Msg("contar proveedores")
		return nil, errGettingSuppliers
	}
	items := make([]dto.SupplierBriefResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.SupplierBriefResponse{
			ID:              b.ID,
			Name:            b.Name,
			FieldOfBusiness: b.FieldOfBusiness,
			CreatedAt:       b.CreatedAt,
		})
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: in.Page, Limit: repository.DefaultPageLimit, Total: total},
	}, nil
}

// Update edición parcial de campos del proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, actor domain.Actor, id int64, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	supplier, err := uc.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.FieldOfBusiness != nil {
		supplier.FieldOfBusiness = *in.FieldOfBusiness
	}
	if in.RegistrationNumber != nil {
		supplier.RegistrationNumber = *in.RegistrationNumber
	}
	if in.Notes != nil {
		supplier.Notes = *in.Notes
	}
	supplier.UpdatedAt = time.Now()
	supplier.UpdatedBy = &actor.ID
	if err := uc.suppliers.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina el proveedor y sus dependientes en una transacción. Un
// proveedor referenciado por líneas de compra no se elimina.
func (uc *SupplierUseCase) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return domain.ErrForbidden
	}
	supplier, err := uc.suppliers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	refs, err := uc.lineItems.CountBySupplier(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrInUse
	}
	owner := domain.AccountRef{Kind: domain.RefSupplier, ID: id}
	docOwner := domain.DocumentRef{Kind: domain.RefSupplier, ID: id}
	return uc.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Documents.DeleteRelationsByOwner(ctx, docOwner); err != nil {
			return err
		}
		if err := r.Addresses.DeleteByOwner(ctx, owner); err != nil {
			return err
		}
		if err := r.Contacts.DeleteByOwner(ctx, owner); err != nil {
			return err
		}
		return r.Suppliers.Delete(ctx, id)
	})
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:                 s.ID,
		Name:               s.Name,
		FieldOfBusiness:    s.FieldOfBusiness,
		RegistrationNumber: s.RegistrationNumber,
		Notes:              s.Notes,
		PrimaryAddressID:   s.PrimaryAddressID,
		PrimaryContactID:   s.PrimaryContactID,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}
