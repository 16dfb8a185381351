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

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

const documentSearchVector = `setweight(to_tsvector('english', coalesce(name, '')), 'A')`

var documentFilterCols = filterColumns{created: "created_at", updated: "updated_at"}

// documentOwnerCond condición de dueño sobre las cuatro FKs nullable de
// document_relations.
func documentOwnerCond(owner domain.DocumentRef) (string, int64) {
	switch owner.Kind {
	case domain.RefProject:
		return "r.project_id = $1", owner.ID
	case domain.RefItem:
		return "r.item_id = $1", owner.ID
	case domain.RefSupplier:
		return "r.supplier_id = $1", owner.ID
	default:
		return "r.client_id = $1", owner.ID
	}
}

// DocumentRepo implementación de DocumentRepository (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste la fila del documento y devuelve su id.
func (r *DocumentRepo) Create(ctx context.Context, doc *entity.Document) (int64, error) {
	query := `
		INSERT INTO documents (name, path, extension, private, created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		doc.Name, doc.Path, doc.Extension, doc.Private,
		doc.CreatedAt, doc.UpdatedAt, doc.CreatedBy,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert document: %w", err)
	}
	return id, nil
}

// GetByID obtiene un documento por ID. Devuelve (nil, nil) si no existe.
func (r *DocumentRepo) GetByID(ctx context.Context, id int64) (*entity.Document, error) {
	query := `
		SELECT id, name, path, extension, private, created_at, updated_at, created_by, updated_by
		FROM documents WHERE id = $1`
	var d entity.Document
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.Path, &d.Extension, &d.Private,
		&d.CreatedAt, &d.UpdatedAt, &d.CreatedBy, &d.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// List lista documentos con filtro, búsqueda y paginación.
func (r *DocumentRepo) List(ctx context.Context, params repository.ListParams) ([]entity.DocumentBrief, error) {
	var args []any
	where := ""
	cond, condArgs, err := filterSQL(params.Filter, documentFilterCols, 1)
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
		match := fmt.Sprintf("%s @@ plainto_tsquery('english', $%d)", documentSearchVector, n)
		if where == "" {
			where = " WHERE " + match
		} else {
			where += " AND " + match
		}
		orderBy = fmt.Sprintf(" ORDER BY ts_rank(%s, plainto_tsquery('english', $%d)) DESC, id DESC",
			documentSearchVector, n)
		args = append(args, params.Search)
	}
	n := len(args) + 1
	query := `SELECT id, name, extension, private, created_at FROM documents` +
		where + orderBy + fmt.Sprintf(" LIMIT $%d OFFSET $%d", n, n+1)
	args = append(args, repository.DefaultPageLimit, params.Offset(repository.DefaultPageLimit))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	return scanDocumentBriefs(rows)
}

// Count total de documentos bajo el mismo filtro del listado.
func (r *DocumentRepo) Count(ctx context.Context, filter repository.Filter) (int, error) {
	cond, args, err := filterSQL(filter, documentFilterCols, 1)
	if err != nil {
		return 0, err
	}
	query := `SELECT COUNT(*) FROM documents`
	if cond != "" {
		query += " WHERE " + cond
	}
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return total, nil
}

// Delete elimina la fila del documento (las relaciones se borran antes, en
// la misma transacción).
func (r *DocumentRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateRelation persiste una fila de unión documento-dueño y devuelve su id.
func (r *DocumentRepo) CreateRelation(ctx context.Context, rel *entity.DocumentRelation) (int64, error) {
	projectID, itemID, supplierID, clientID := documentRefColumns(rel.Owner)
	query := `
		INSERT INTO document_relations (document_id, project_id, item_id, supplier_id, client_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		rel.DocumentID, projectID, itemID, supplierID, clientID, rel.CreatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("insert document relation: %w", err)
	}
	return id, nil
}

// RelationsByDocument lista las relaciones vivas de un documento.
func (r *DocumentRepo) RelationsByDocument(ctx context.Context, documentID int64) ([]entity.DocumentRelation, error) {
	query := `
		SELECT id, document_id, project_id, item_id, supplier_id, client_id, created_at
		FROM document_relations WHERE document_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list document relations: %w", err)
	}
	defer rows.Close()
	var list []entity.DocumentRelation
	for rows.Next() {
		var rel entity.DocumentRelation
		var projectID, itemID, supplierID, clientID *int64
		if err := rows.Scan(
			&rel.ID, &rel.DocumentID, &projectID, &itemID, &supplierID, &clientID, &rel.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document relation: %w", err)
		}
		if rel.Owner, err = documentRefFrom(projectID, itemID, supplierID, clientID); err != nil {
			return nil, err
		}
		list = append(list, rel)
	}
	return list, rows.Err()
}

// ListByOwner lista los documentos relacionados con un dueño concreto.
func (r *DocumentRepo) ListByOwner(ctx context.Context, owner domain.DocumentRef) ([]entity.DocumentBrief, error) {
	cond, ownerID := documentOwnerCond(owner)
	query := `
		SELECT d.id, d.name, d.extension, d.private, d.created_at
		FROM documents d JOIN document_relations r ON r.document_id = d.id
		WHERE ` + cond + ` ORDER BY d.id DESC`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list documents by owner: %w", err)
	}
	defer rows.Close()
	return scanDocumentBriefs(rows)
}

// DeleteRelation elimina una fila de unión por su id.
func (r *DocumentRepo) DeleteRelation(ctx context.Context, relationID int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM document_relations WHERE id = $1`, relationID)
	if err != nil {
		return fmt.Errorf("delete document relation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteRelationsByDocument elimina todas las relaciones de un documento.
func (r *DocumentRepo) DeleteRelationsByDocument(ctx context.Context, documentID int64) error {
	if _, err := r.q.Exec(ctx,
		`DELETE FROM document_relations WHERE document_id = $1`, documentID); err != nil {
		return fmt.Errorf("delete relations by document: %w", err)
	}
	return nil
}

// DeleteRelationsByOwner elimina todas las relaciones de un dueño (cascada
// manual al borrar la entidad dueña).
func (r *DocumentRepo) DeleteRelationsByOwner(ctx context.Context, owner domain.DocumentRef) error {
	cond, ownerID := documentOwnerCond(owner)
	if _, err := r.q.Exec(ctx, `DELETE FROM document_relations r WHERE `+cond, ownerID); err != nil {
		return fmt.Errorf("delete relations by owner: %w", err)
	}
	return nil
}

// CountRelations relaciones vivas de un documento.
func (r *DocumentRepo) CountRelations(ctx context.Context, documentID int64) (int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM document_relations WHERE document_id = $1`, documentID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count document relations: %w", err)
	}
	return total, nil
}

func scanDocumentBriefs(rows pgx.Rows) ([]entity.DocumentBrief, error) {
	var list []entity.DocumentBrief
	for rows.Next() {
		var b entity.DocumentBrief
		if err := rows.Scan(&b.ID, &b.Name, &b.Extension, &b.Private, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if err := b.Validate(); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
