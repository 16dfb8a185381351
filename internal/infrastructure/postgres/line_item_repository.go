package postgres

import (
	"context"
	"fmt"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
	"github.com/seifmegahed/daftar-sub000/internal/domain/repository"
)

var _ repository.LineItemRepository = (*LineItemRepo)(nil)

// LineItemRepo implementación de LineItemRepository sobre las tres tablas
// de líneas (usable con pool o tx).
type LineItemRepo struct {
	q Querier
}

// NewLineItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLineItemRepository(q Querier) *LineItemRepo {
	return &LineItemRepo{q: q}
}

// CreatePurchase persiste una línea de compra y devuelve su id.
func (r *LineItemRepo) CreatePurchase(ctx context.Context, line *entity.PurchaseItem) (int64, error) {
	query := `
		INSERT INTO purchase_items (project_id, item_id, supplier_id, price, currency, quantity, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		line.ProjectID, line.ItemID, line.SupplierID, line.Price, line.Currency,
		line.Quantity, line.CreatedAt, line.CreatedBy,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("insert purchase line: %w", err)
	}
	return id, nil
}

// CreateSale persiste una línea de venta y devuelve su id.
func (r *LineItemRepo) CreateSale(ctx context.Context, line *entity.SaleItem) (int64, error) {
	query := `
		INSERT INTO sale_items (project_id, item_id, price, currency, quantity, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		line.ProjectID, line.ItemID, line.Price, line.Currency,
		line.Quantity, line.CreatedAt, line.CreatedBy,
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("insert sale line: %w", err)
	}
	return id, nil
}

// CreateLink persiste un vínculo proyecto-ítem y devuelve su id. Un par
// repetido es ErrDuplicate (UNIQUE en el esquema).
func (r *LineItemRepo) CreateLink(ctx context.Context, link *entity.ProjectItem) (int64, error) {
	query := `
		INSERT INTO project_items (project_id, item_id, created_at, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		link.ProjectID, link.ItemID, link.CreatedAt, link.CreatedBy,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("insert project item link: %w", err)
	}
	return id, nil
}

// PurchasesByProject lista las líneas de compra de un proyecto.
func (r *LineItemRepo) PurchasesByProject(ctx context.Context, projectID int64) ([]entity.PurchaseItem, error) {
	query := `
		SELECT id, project_id, item_id, supplier_id, price, currency, quantity, created_at, created_by
		FROM purchase_items WHERE project_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list purchase lines: %w", err)
	}
	defer rows.Close()
	var list []entity.PurchaseItem
	for rows.Next() {
		var l entity.PurchaseItem
		if err := rows.Scan(
			&l.ID, &l.ProjectID, &l.ItemID, &l.SupplierID, &l.Price, &l.Currency,
			&l.Quantity, &l.CreatedAt, &l.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan purchase line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// SalesByProject lista las líneas de venta de un proyecto.
func (r *LineItemRepo) SalesByProject(ctx context.Context, projectID int64) ([]entity.SaleItem, error) {
	query := `
		SELECT id, project_id, item_id, price, currency, quantity, created_at, created_by
		FROM sale_items WHERE project_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	var list []entity.SaleItem
	for rows.Next() {
		var l entity.SaleItem
		if err := rows.Scan(
			&l.ID, &l.ProjectID, &l.ItemID, &l.Price, &l.Currency,
			&l.Quantity, &l.CreatedAt, &l.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// LinksByProject lista los vínculos proyecto-ítem de un proyecto.
func (r *LineItemRepo) LinksByProject(ctx context.Context, projectID int64) ([]entity.ProjectItem, error) {
	query := `
		SELECT id, project_id, item_id, created_at, created_by
		FROM project_items WHERE project_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project item links: %w", err)
	}
	defer rows.Close()
	var list []entity.ProjectItem
	for rows.Next() {
		var l entity.ProjectItem
		if err := rows.Scan(&l.ID, &l.ProjectID, &l.ItemID, &l.CreatedAt, &l.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan project item link: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// CountByItem referencias totales de un ítem en las tres tablas.
func (r *LineItemRepo) CountByItem(ctx context.Context, itemID int64) (int, error) {
	query := `
		SELECT (SELECT COUNT(*) FROM purchase_items WHERE item_id = $1)
		     + (SELECT COUNT(*) FROM sale_items WHERE item_id = $1)
		     + (SELECT COUNT(*) FROM project_items WHERE item_id = $1)`
	var total int
	if err := r.q.QueryRow(ctx, query, itemID).Scan(&total); err != nil {
		return 0, fmt.Errorf("count lines by item: %w", err)
	}
	return total, nil
}

// CountBySupplier líneas de compra que referencian al proveedor.
func (r *LineItemRepo) CountBySupplier(ctx context.Context, supplierID int64) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM purchase_items WHERE supplier_id = $1`, supplierID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count lines by supplier: %w", err)
	}
	return total, nil
}

// DeleteByProject elimina todas las líneas del proyecto (cascada manual
// del borrado compuesto, las tres tablas en orden fijo).
func (r *LineItemRepo) DeleteByProject(ctx context.Context, projectID int64) error {
	for _, query := range []string{
		`DELETE FROM purchase_items WHERE project_id = $1`,
		`DELETE FROM sale_items WHERE project_id = $1`,
		`DELETE FROM project_items WHERE project_id = $1`,
	} {
		if _, err := r.q.Exec(ctx, query, projectID); err != nil {
			return fmt.Errorf("delete lines by project: %w", err)
		}
	}
	return nil
}
