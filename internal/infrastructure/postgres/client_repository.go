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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// Vector ponderado de búsqueda: el nombre pesa más que el registro fiscal.
const clientSearchVector = `(setweight(to_tsvector('english', coalesce(name, '')), 'A') ||
	setweight(to_tsvector('english', coalesce(registration_number, '')), 'B'))`

var clientFilterCols = filterColumns{created: "created_at", updated: "updated_at"}

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente y devuelve su id.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) (int64, error) {
	query := `
		INSERT INTO clients (name, registration_number, website, notes, created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		client.Name, client.RegistrationNumber, client.Website, client.Notes,
		client.CreatedAt, client.UpdatedAt, client.CreatedBy,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert client: %w", err)
	}
	return id, nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	query := `
		SELECT id, name, registration_number, website, notes,
		       primary_address_id, primary_contact_id,
		       created_at, updated_at, created_by, updated_by
		FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.RegistrationNumber, &c.Website, &c.Notes,
		&c.PrimaryAddressID, &c.PrimaryContactID,
		&c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isTimeout(err) {
			return nil, domain.ErrStoreTimeout
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List lista clientes con filtro, búsqueda ponderada y paginación.
func (r *ClientRepo) List(ctx context.Context, params repository.ListParams) ([]entity.ClientBrief, error) {
	var args []any
	where := ""
	cond, condArgs, err := filterSQL(params.Filter, clientFilterCols, 1)
	if err != nil {
		return nil, err
	}
	if cond != "" {
		where = " WHERE " + cond
		args = append(args, condArgs...)
	}
	orderBy := " ORDER BY id DESC"
	if params.Search != "" {
		n := len(args) + 1
		match := fmt.Sprintf("%s @@ plainto_tsquery('english', $%d)", clientSearchVector, n)
		if where == "" {
			where = " WHERE " + match
		} else {
			where += " AND " + match
		}
		orderBy = fmt.Sprintf(" ORDER BY ts_rank(%s, plainto_tsquery('english', $%d)) DESC, id DESC",
			clientSearchVector, n)
		args = append(args, params.Search)
	}
	n := len(args) + 1
	query := `SELECT id, name, registration_number, created_at FROM clients` +
		where + orderBy + fmt.Sprintf(" LIMIT $%d OFFSET $%d", n, n+1)
	args = append(args, repository.DefaultPageLimit, params.Offset(repository.DefaultPageLimit))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		if isTimeout(err) {
			return nil, domain.ErrStoreTimeout
		}
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []entity.ClientBrief
	for rows.Next() {
		var b entity.ClientBrief
		if err := rows.Scan(&b.ID, &b.Name, &b.RegistrationNumber, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		if err := b.Validate(); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Count total de clientes bajo el mismo filtro del listado (sin búsqueda:
// el total pagina el listado filtrado completo).
func (r *ClientRepo) Count(ctx context.Context, filter repository.Filter) (int, error) {
	cond, args, err := filterSQL(filter, clientFilterCols, 1)
	if err != nil {
		return 0, err
	}
	query := `SELECT COUNT(*) FROM clients`
	if cond != "" {
		query += " WHERE " + cond
	}
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return total, nil
}

// Update actualiza los campos editables de un cliente.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clients
		SET name = $2, registration_number = $3, website = $4, notes = $5,
		    updated_at = $6, updated_by = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		client.ID, client.Name, client.RegistrationNumber, client.Website, client.Notes,
		client.UpdatedAt, client.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePrimaryRefs fija las referencias débiles a dirección y contacto
// primarios (paso final del alta compuesta, misma transacción).
func (r *ClientRepo) UpdatePrimaryRefs(ctx context.Context, id int64, addressID, contactID *int64) error {
	query := `UPDATE clients SET primary_address_id = $2, primary_contact_id = $3 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, addressID, contactID)
	if err != nil {
		return fmt.Errorf("update client refs: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
