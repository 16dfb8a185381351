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

// errGettingClients mensaje genérico para fallos de lectura (el detalle
// queda en el log, no en la respuesta).
var errGettingClients = errors.New("error al obtener los clientes")

// ClientUseCase acciones sobre clientes. El alta es compuesta: cliente +
// dirección primaria + contacto primario en una transacción.
type ClientUseCase struct {
	clients   repository.ClientRepository
	addresses repository.AddressRepository
	contacts  repository.ContactRepository
	projects  repository.ProjectRepository
	tx        TxRunner
	log       *logger.Logger
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(
	clients repository.ClientRepository,
	addresses repository.AddressRepository,
	contacts repository.ContactRepository,
	projects repository.ProjectRepository,
	tx TxRunner,
	log *logger.Logger,
) *ClientUseCase {
	return &ClientUseCase{clients: clients, addresses: addresses, contacts: contacts, projects: projects, tx: tx, log: log}
}

// CreateFull alta compuesta. Pasos en orden fijo dentro de la transacción:
// insertar cliente, insertar dirección y contacto con la FK del cliente,
// actualizar las referencias primarias del cliente. Si cualquier paso falla
// no queda estado parcial.
func (uc *ClientUseCase) CreateFull(ctx context.Context, actor domain.Actor, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	now := time.Now()
	client := &entity.Client{
		Name:               in.Name,
		RegistrationNumber: in.RegistrationNumber,
		Website:            in.Website,
		Notes:              in.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
		CreatedBy:          actor.ID,
	}

	err := uc.tx.Run(ctx, func(r TxRepos) error {
		id, err := r.Clients.Create(ctx, client)
		if err != nil {
			return err
		}
		client.ID = id
		owner := domain.AccountRef{Kind: domain.RefClient, ID: id}
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
		client.PrimaryAddressID = &addressID
		client.PrimaryContactID = &contactID
		return r.Clients.UpdatePrimaryRefs(ctx, id, &addressID, &contactID)
	})
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene el detalle de un cliente.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List página de clientes con filtro y búsqueda, más el conteo total que
// espeja el filtro.
func (uc *ClientUseCase) List(ctx context.Context, in dto.PageRequest) (*dto.ClientListResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	in.DefaultPage()
	params := repository.ListParams{
		Page:   in.Page,
		Filter: repository.Filter{Type: repository.FilterType(in.FilterType), Value: in.FilterValue},
		Search: in.Search,
	}
	list, err := uc.clients.List(ctx, params)
	if err != nil {
		if errors.Is(err, domain.ErrDataCorrupted) {
			return nil, err
		}
		uc.log.Error().Err(err).Msg("listar clientes")
		return nil, errGettingClients
	}
	total, err := uc.clients.Count(ctx, params.Filter)
	if err != nil {
		uc.log.Error().Err(err).Msg("contar clientes")
		return nil, errGettingClients
	}
	items := make([]dto.ClientBriefResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.ClientBriefResponse{
			ID:                 b.ID,
			Name:               b.Name,
			RegistrationNumber: b.RegistrationNumber,
			CreatedAt:          b.CreatedAt,
		})
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: in.Page, Limit: repository.DefaultPageLimit, Total: total},
	}, nil
}

// Update edición parcial de campos del cliente.
func (uc *ClientUseCase) Update(ctx context.Context, actor domain.Actor, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return nil, domain.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	client, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.RegistrationNumber != nil {
		client.RegistrationNumber = *in.RegistrationNumber
	}
	if in.Website != nil {
		client.Website = *in.Website
	}
	if in.Notes != nil {
		client.Notes = *in.Notes
	}
	client.UpdatedAt = time.Now()
	client.UpdatedBy = &actor.ID
	if err := uc.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina el cliente y sus dependientes en una transacción, filas
// de detalle primero. Un cliente con proyectos no se elimina.
func (uc *ClientUseCase) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if !domain.Can(actor, domain.ActionManageRecords, 0) {
		return domain.ErrForbidden
	}
	client, err := uc.clients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	refs, err := uc.projects.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return domain.ErrInUse
	}
	owner := domain.AccountRef{Kind: domain.RefClient, ID: id}
	docOwner := domain.DocumentRef{Kind: domain.RefClient, ID: id}
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
		return r.Clients.Delete(ctx, id)
	})
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:                 c.ID,
		Name:               c.Name,
		RegistrationNumber: c.RegistrationNumber,
		Website:            c.Website,
		Notes:              c.Notes,
		PrimaryAddressID:   c.PrimaryAddressID,
		PrimaryContactID:   c.PrimaryContactID,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
