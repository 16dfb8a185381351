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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierSearchVector = `(setweight(to_tsvector('english', coalesce(name, '')), 'A') ||
	setweight(to_tsvector('english', coalesce(field_of_business, '')), 'B'))`

var supplierFilterCols = filterColumns{created: "created_at", updated: "updated_at"}

// SupplierRepo implementación de SupplierRepository (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor y devuelve su id.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) (int64, error) {
	query := `
		INSERT INTO suppliers (name, field_of_business, registration_number, notes, created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		supplier.Name, supplier.FieldOfBusiness, supplier.RegistrationNumber, supplier.Notes,
		supplier.CreatedAt, supplier.UpdatedAt, supplier.CreatedBy,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert supplier: %w", err)
	}
	return id, nil
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	query := `
		SELECT id, name, field_of_business, registration_number, notes,
		       primary_address_id, primary_contact_id,
		       created_at, updated_at, created_by, updated_by
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.FieldOfBusiness, &s.RegistrationNumber, &s.Notes,
		&s.PrimaryAddressID, &s.PrimaryContactID,
		&s.CreatedAt, &s.UpdatedAt, &s.CreatedBy, &s.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List lista proveedores con filtro, búsqueda ponderada y paginación.
func (r *SupplierRepo) List(ctx context.Context, params repository.ListParams) ([]entity.SupplierBrief, error) {
	var args []any
	where := ""
	cond, condArgs, err := filterSQL(params.Filter, supplierFilterCols, 1)
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
		match := fmt.Sprintf("%s @@ plainto_tsquery('english', $%d)", supplierSearchVector, n)
		if where == "" {
			where = " WHERE " + match
		} else {
			where += " AND " + match
		}
		orderBy = fmt.Sprintf(" ORDER BY ts_rank(%s, plainto_tsquery('english', $%d)) DESC, id DESC",
			supplierSearchVector, n)
		args = append(args, params.Search)
	}
	n := len(args) + 1
	query := `SELECT id, name, field_of_business, created_at FROM suppliers` +
		where + orderBy + fmt.Sprintf(" LIMIT $%d OFFSET $%d", n, n+1)
	args = append(args, repository.DefaultPageLimit, params.Offset(repository.DefaultPageLimit))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []entity.SupplierBrief
	for rows.Next() {
		var b entity.SupplierBrief
		if err := rows.Scan(&b.ID, &b.Name, &b.FieldOfBusiness, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		if err := b.Validate(); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Count total de proveedores bajo el mismo filtro del listado.
func (r *SupplierRepo) Count(ctx context.Context, filter repository.Filter) (int, error) {
	cond, args, err := filterSQL(filter, supplierFilterCols, 1)
	if err != nil {
		return 0, err
	}
	query := `SELECT COUNT(*) FROM suppliers`
	if cond != "" {
		query += " WHERE " + cond
	}
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count suppliers: %w", err)
	}
	return total, nil
}

// Update actualiza los campos editables de un proveedor.
func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, field_of_business = $3, registration_number = $4, notes = $5,
		    updated_at = $6, updated_by = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.Name, supplier.FieldOfBusiness, supplier.RegistrationNumber,
		supplier.Notes, supplier.UpdatedAt, supplier.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePrimaryRefs fija las referencias débiles a dirección y contacto primarios.
func (r *SupplierRepo) UpdatePrimaryRefs(ctx context.Context, id int64, addressID, contactID *int64) error {
	query := `UPDATE suppliers SET primary_address_id = $2, primary_contact_id = $3 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, addressID, contactID)
	if err != nil {
		return fmt.Errorf("update supplier refs: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
