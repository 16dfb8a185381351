package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
	"github.com/seifmegahed/daftar-sub000/internal/domain/repository"
)

var _ repository.AddressRepository = (*AddressRepo)(nil)
var _ repository.ContactRepository = (*ContactRepo)(nil)

// accountOwnerCond condición de dueño para las tablas con par de FKs
// cliente/proveedor.
func accountOwnerCond(owner domain.AccountRef) (string, int64) {
	if owner.Kind == domain.RefClient {
		return "client_id = $1", owner.ID
	}
	return "supplier_id = $1", owner.ID
}

// ── Direcciones ──────────────────────────────────────────────────────────

// AddressRepo implementación de AddressRepository (usable con pool o tx).
type AddressRepo struct {
	q Querier
}

// NewAddressRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAddressRepository(q Querier) *AddressRepo {
	return &AddressRepo{q: q}
}

// Create persiste una dirección y devuelve su id.
func (r *AddressRepo) Create(ctx context.Context, address *entity.Address) (int64, error) {
	clientID, supplierID := accountRefColumns(address.Owner)
	query := `
		INSERT INTO addresses (client_id, supplier_id, name, address_line, country, city, notes,
		                       created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		clientID, supplierID, address.Name, address.AddressLine, address.Country, address.City,
		address.Notes, address.CreatedAt, address.UpdatedAt, address.CreatedBy,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("insert address: %w", err)
	}
	return id, nil
}

// GetByID obtiene una dirección por ID. Devuelve (nil, nil) si no existe.
func (r *AddressRepo) GetByID(ctx context.Context, id int64) (*entity.Address, error) {
	query := `
		SELECT id, client_id, supplier_id, name, address_line, country, city, notes,
		       created_at, updated_at, created_by, updated_by
		FROM addresses WHERE id = $1`
	var a entity.Address
	var clientID, supplierID *int64
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &clientID, &supplierID, &a.Name, &a.AddressLine, &a.Country, &a.City, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt, &a.CreatedBy, &a.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address: %w", err)
	}
	if a.Owner, err = accountRefFrom(clientID, supplierID); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByOwner lista las direcciones de un cliente o proveedor.
func (r *AddressRepo) ListByOwner(ctx context.Context, owner domain.AccountRef) ([]entity.Address, error) {
	cond, ownerID := accountOwnerCond(owner)
	query := `
		SELECT id, client_id, supplier_id, name, address_line, country, city, notes,
		       created_at, updated_at, created_by, updated_by
		FROM addresses WHERE ` + cond + ` ORDER BY id`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()
	var list []entity.Address
	for rows.Next() {
		var a entity.Address
		var clientID, supplierID *int64
		if err := rows.Scan(
			&a.ID, &clientID, &supplierID, &a.Name, &a.AddressLine, &a.Country, &a.City, &a.Notes,
			&a.CreatedAt, &a.UpdatedAt, &a.CreatedBy, &a.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		if a.Owner, err = accountRefFrom(clientID, supplierID); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de una dirección (el dueño no cambia).
func (r *AddressRepo) Update(ctx context.Context, address *entity.Address) error {
	query := `
		UPDATE addresses
		SET name = $2, address_line = $3, country = $4, city = $5, notes = $6,
		    updated_at = $7, updated_by = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		address.ID, address.Name, address.AddressLine, address.Country, address.City,
		address.Notes, address.UpdatedAt, address.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una dirección por ID.
func (r *AddressRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByOwner elimina todas las direcciones del dueño (cascada manual del
// borrado compuesto del padre).
func (r *AddressRepo) DeleteByOwner(ctx context.Context, owner domain.AccountRef) error {
	cond, ownerID := accountOwnerCond(owner)
	if _, err := r.q.Exec(ctx, `DELETE FROM addresses WHERE `+cond, ownerID); err != nil {
		return fmt.Errorf("delete addresses by owner: %w", err)
	}
	return nil
}

// ── Contactos ────────────────────────────────────────────────────────────

// ContactRepo implementación de ContactRepository (usable con pool o tx).
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

// Create persiste un contacto y devuelve su id.
func (r *ContactRepo) Create(ctx context.Context, contact *entity.Contact) (int64, error) {
	clientID, supplierID := accountRefColumns(contact.Owner)
	query := `
		INSERT INTO contacts (client_id, supplier_id, name, email, phone, notes,
		                      created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		clientID, supplierID, contact.Name, contact.Email, contact.Phone, contact.Notes,
		contact.CreatedAt, contact.UpdatedAt, contact.CreatedBy,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("insert contact: %w", err)
	}
	return id, nil
}

// GetByID obtiene un contacto por ID. Devuelve (nil, nil) si no existe.
func (r *ContactRepo) GetByID(ctx context.Context, id int64) (*entity.Contact, error) {
	query := `
		SELECT id, client_id, supplier_id, name, email, phone, notes,
		       created_at, updated_at, created_by, updated_by
		FROM contacts WHERE id = $1`
	var c entity.Contact
	var clientID, supplierID *int64
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &clientID, &supplierID, &c.Name, &c.Email, &c.Phone, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	if c.Owner, err = accountRefFrom(clientID, supplierID); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByOwner lista los contactos de un cliente o proveedor.
func (r *ContactRepo) ListByOwner(ctx context.Context, owner domain.AccountRef) ([]entity.Contact, error) {
	cond, ownerID := accountOwnerCond(owner)
	query := `
		SELECT id, client_id, supplier_id, name, email, phone, notes,
		       created_at, updated_at, created_by, updated_by
		FROM contacts WHERE ` + cond + ` ORDER BY id`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	var list []entity.Contact
	for rows.Next() {
		var c entity.Contact
		var clientID, supplierID *int64
		if err := rows.Scan(
			&c.ID, &clientID, &supplierID, &c.Name, &c.Email, &c.Phone, &c.Notes,
			&c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		if c.Owner, err = accountRefFrom(clientID, supplierID); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de un contacto (el dueño no cambia).
func (r *ContactRepo) Update(ctx context.Context, contact *entity.Contact) error {
	query := `
		UPDATE contacts
		SET name = $2, email = $3, phone = $4, notes = $5, updated_at = $6, updated_by = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		contact.ID, contact.Name, contact.Email, contact.Phone, contact.Notes,
		contact.UpdatedAt, contact.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un contacto por ID.
func (r *ContactRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByOwner elimina todos los contactos del dueño.
func (r *ContactRepo) DeleteByOwner(ctx context.Context, owner domain.AccountRef) error {
	cond, ownerID := accountOwnerCond(owner)
	if _, err := r.q.Exec(ctx, `DELETE FROM contacts WHERE `+cond, ownerID); err != nil {
		return fmt.Errorf("delete contacts by owner: %w", err)
	}
	return nil
}
