package usecase

import (
	"context"
	"time"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
	"github.com/seifmegahed/daftar-sub000/internal/application/validate"
	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
	"github.com/seifmegahed/daftar-sub000/internal/domain/repository"
)

// ContactInfoUseCase direcciones y contactos adicionales de clientes y
// proveedores. El dueño llega como referencia discriminada (regla XOR
// validada antes de tocar el almacén).
type ContactInfoUseCase struct {
	addresses repository.AddressRepository
	contacts  repository.ContactRepository
}

// NewContactInfoUseCase construye el caso de uso.
func NewContactInfoUseCase(addresses repository.AddressRepository, contacts repository.ContactRepository) *ContactInfoUseCase {
	return &ContactInfoUseCase{addresses: addresses, contacts: contacts}
}

// AddAddress agrega una dirección al dueño referenciado.
func (uc *ContactInfoUseCase) AddAddress(ctx context.Context, actor domain.Actor, owner domain.AccountRef, in dto.AddressData) (*dto.AddressResponse, error) {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return nil, domain.ErrForbidden
	}
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now()
	address := &entity.Address{
		Owner:       owner,
		Name:        in.Name,
		AddressLine: in.AddressLine,
		Country:     in.Country,
		City:        in.City,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   actor.ID,
	}
	id, err := uc.addresses.Create(ctx, address)
	if err != nil {
		return nil, err
	}
	address.ID = id
	return toAddressResponse(address), nil
}

// ListAddresses direcciones del dueño referenciado.
func (uc *ContactInfoUseCase) ListAddresses(ctx context.Context, owner domain.AccountRef) ([]dto.AddressResponse, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	list, err := uc.addresses.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AddressResponse, 0, len(list))
	for i := range list {
		out = append(out, *toAddressResponse(&list[i]))
	}
	return out, nil
}

// UpdateAddress edición de una dirección existente.
func (uc *ContactInfoUseCase) UpdateAddress(ctx context.Context, actor domain.Actor, id int64, in dto.AddressData) (*dto.AddressResponse, error) {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	address, err := uc.addresses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, domain.ErrNotFound
	}
	address.Name = in.Name
	address.AddressLine = in.AddressLine
	address.Country = in.Country
	address.City = in.City
	address.Notes = in.Notes
	address.UpdatedAt = time.Now()
	address.UpdatedBy = &actor.ID
	if err := uc.addresses.Update(ctx, address); err != nil {
		return nil, err
	}
	return toAddressResponse(address), nil
}

// DeleteAddress borra una dirección suelta (no la cascada del padre).
func (uc *ContactInfoUseCase) DeleteAddress(ctx context.Context, actor domain.Actor, id int64) error {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return domain.ErrForbidden
	}
	address, err := uc.addresses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if address == nil {
		return domain.ErrNotFound
	}
	return uc.addresses.Delete(ctx, id)
}

// AddContact agrega un contacto al dueño referenciado.
func (uc *ContactInfoUseCase) AddContact(ctx context.Context, actor domain.Actor, owner domain.AccountRef, in dto.ContactData) (*dto.ContactResponse, error) {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return nil, domain.ErrForbidden
	}
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	now := time.Now()
	contact := &entity.Contact{
		Owner:     owner,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: actor.ID,
	}
	id, err := uc.contacts.Create(ctx, contact)
	if err != nil {
		return nil, err
	}
	contact.ID = id
	return toContactResponse(contact), nil
}

// ListContacts contactos del dueño referenciado.
func (uc *ContactInfoUseCase) ListContacts(ctx context.Context, owner domain.AccountRef) ([]dto.ContactResponse, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	list, err := uc.contacts.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(list))
	for i := range list {
		out = append(out, *toContactResponse(&list[i]))
	}
	return out, nil
}

// UpdateContact edición de un contacto existente.
func (uc *ContactInfoUseCase) UpdateContact(ctx context.Context, actor domain.Actor, id int64, in dto.ContactData) (*dto.ContactResponse, error) {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	contact, err := uc.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	contact.Name = in.Name
	contact.Email = in.Email
	contact.Phone = in.Phone
	contact.Notes = in.Notes
	contact.UpdatedAt = time.Now()
	contact.UpdatedBy = &actor.ID
	if err := uc.contacts.Update(ctx, contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// DeleteContact borra un contacto suelto.
func (uc *ContactInfoUseCase) DeleteContact(ctx context.Context, actor domain.Actor, id int64) error {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return domain.ErrForbidden
	}
	contact, err := uc.contacts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if contact == nil {
		return domain.ErrNotFound
	}
	return uc.contacts.Delete(ctx, id)
}

func toAddressResponse(a *entity.Address) *dto.AddressResponse {
	return &dto.AddressResponse{
		ID:          a.ID,
		Name:        a.Name,
		AddressLine: a.AddressLine,
		Country:     a.Country,
		City:        a.City,
		Notes:       a.Notes,
	}
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
		Notes: c.Notes,
	}
}
