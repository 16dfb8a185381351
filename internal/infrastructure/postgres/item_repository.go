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

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemSearchVector = `(setweight(to_tsvector('english', coalesce(name, '')), 'A') ||
	setweight(to_tsvector('english', coalesce(make, '') || ' ' || coalesce(mpn, '')), 'B') ||
	setweight(to_tsvector('english', coalesce(description, '')), 'C'))`

var itemFilterCols = filterColumns{created: "created_at", updated: "updated_at"}

// ItemRepo implementación de ItemRepository (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un ítem y devuelve su id.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) (int64, error) {
	query := `
		INSERT INTO items (name, type, description, make, mpn, notes, created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		item.Name, item.Type, item.Description, item.Make, item.MPN, item.Notes,
		item.CreatedAt, item.UpdatedAt, item.CreatedBy,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert item: %w", err)
	}
	return id, nil
}

// GetByID obtiene un ítem por ID. Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	query := `
		SELECT id, name, type, description, make, mpn, notes,
		       created_at, updated_at, created_by, updated_by
		FROM items WHERE id = $1`
	var i entity.Item
	err := r.q.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.Name, &i.Type, &i.Description, &i.Make, &i.MPN, &i.Notes,
		&i.CreatedAt, &i.UpdatedAt, &i.CreatedBy, &i.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// List lista ítems con filtro, búsqueda ponderada y paginación.
func (r *ItemRepo) List(ctx context.Context, params repository.ListParams) ([]entity.ItemBrief, error) {
	var args []any
	where := ""
	cond, condArgs, err := filterSQL(params.Filter, itemFilterCols, 1)
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
		match := fmt.Sprintf("%s @@ plainto_tsquery('english', $%d)", itemSearchVector, n)
		if where == "" {
			where = " WHERE " + match
		} else {
			where += " AND " + match
		}
		orderBy = fmt.Sprintf(" ORDER BY ts_rank(%s, plainto_tsquery('english', $%d)) DESC, id DESC",
			itemSearchVector, n)
		args = append(args, params.Search)
	}
	n := len(args) + 1
	query := `SELECT id, name, type, make FROM items` +
		where + orderBy + fmt.Sprintf(" LIMIT $%d OFFSET $%d", n, n+1)
	args = append(args, repository.DefaultPageLimit, params.Offset(repository.DefaultPageLimit))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []entity.ItemBrief
	for rows.Next() {
		var b entity.ItemBrief
		if err := rows.Scan(&b.ID, &b.Name, &b.Type, &b.Make); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if err := b.Validate(); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Count total de ítems bajo el mismo filtro del listado.
func (r *ItemRepo) Count(ctx context.Context, filter repository.Filter) (int, error) {
	cond, args, err := filterSQL(filter, itemFilterCols, 1)
	if err != nil {
		return 0, err
	}
	query := `SELECT COUNT(*) FROM items`
	if cond != "" {
		query += " WHERE " + cond
	}
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return total, nil
}

// Update actualiza los campos editables de un ítem.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $2, type = $3, description = $4, make = $5, mpn = $6, notes = $7,
		    updated_at = $8, updated_by = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Type, item.Description, item.Make, item.MPN, item.Notes,
		item.UpdatedAt, item.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un ítem por ID.
func (r *ItemRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
