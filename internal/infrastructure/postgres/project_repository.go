package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
	"github.com/seifmegahed/daftar-sub000/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

const projectSearchVector = `(setweight(to_tsvector('english', coalesce(p.name, '')), 'A') ||
	setweight(to_tsvector('english', coalesce(p.description, '')), 'B'))`

var projectFilterCols = filterColumns{
	status:  "p.status",
	created: "p.created_at",
	updated: "p.updated_at",
	start:   "p.start_date",
}

// ProjectRepo implementación de ProjectRepository (usable con pool o tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// Create persiste un proyecto y devuelve su id.
func (r *ProjectRepo) Create(ctx context.Context, project *entity.Project) (int64, error) {
	query := `
		INSERT INTO projects (name, client_id, owner_id, status, description, notes,
		                      start_date, end_date, created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		project.Name, project.ClientID, project.OwnerID, project.Status,
		project.Description, project.Notes, project.StartDate, project.EndDate,
		project.CreatedAt, project.UpdatedAt, project.CreatedBy,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("insert project: %w", err)
	}
	return id, nil
}

// GetByID obtiene un proyecto por ID. Devuelve (nil, nil) si no existe.
func (r *ProjectRepo) GetByID(ctx context.Context, id int64) (*entity.Project, error) {
	query := `
		SELECT id, name, client_id, owner_id, status, description, notes,
		       start_date, end_date, created_at, updated_at, created_by, updated_by
		FROM projects WHERE id = $1`
	var p entity.Project
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.ClientID, &p.OwnerID, &p.Status, &p.Description, &p.Notes,
		&p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt, &p.CreatedBy, &p.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// List lista proyectos con el nombre del cliente resuelto, filtro,
// búsqueda ponderada y paginación.
func (r *ProjectRepo) List(ctx context.Context, params repository.ListParams) ([]entity.ProjectBrief, error) {
	var args []any
	where := ""
	cond, condArgs, err := filterSQL(params.Filter, projectFilterCols, 1)
	if err != nil {
		return nil, err
	}
	if cond != "" {
		where = " WHERE " + cond
		args = append(args, condArgs...)
	}
	orderBy := " ORDER BY p.id DESC"
	if params.Search != "" {
		n := len(args) + 1
		match := fmt.Sprintf("%s @@ plainto_tsquery('english', $%d)", projectSearchVector, n)
		if where == "" {
			where = " WHERE " + match
		} else {
			where += " AND " + match
		}
		orderBy = fmt.Sprintf(" ORDER BY ts_rank(%s, plainto_tsquery('english', $%d)) DESC, p.id DESC",
			projectSearchVector, n)
		args = append(args, params.Search)
	}
	n := len(args) + 1
	query := `
		SELECT p.id, p.name, p.status, c.name, p.created_at
		FROM projects p JOIN clients c ON c.id = p.client_id` +
		where + orderBy + fmt.Sprintf(" LIMIT $%d OFFSET $%d", n, n+1)
	args = append(args, repository.DefaultPageLimit, params.Offset(repository.DefaultPageLimit))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []entity.ProjectBrief
	for rows.Next() {
		var b entity.ProjectBrief
		if err := rows.Scan(&b.ID, &b.Name, &b.Status, &b.ClientName, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		if err := b.Validate(); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Count total de proyectos bajo el mismo filtro del listado.
func (r *ProjectRepo) Count(ctx context.Context, filter repository.Filter) (int, error) {
	cond, args, err := filterSQL(filter, projectFilterCols, 1)
	if err != nil {
		return 0, err
	}
	query := `SELECT COUNT(*) FROM projects p`
	if cond != "" {
		query += " WHERE " + cond
	}
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return total, nil
}

// Update actualiza los campos editables de un proyecto (dueño y estado
// tienen operaciones propias).
func (r *ProjectRepo) Update(ctx context.Context, project *entity.Project) error {
	query := `
		UPDATE projects
		SET name = $2, description = $3, notes = $4, start_date = $5, end_date = $6,
		    updated_at = $7, updated_by = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		project.ID, project.Name, project.Description, project.Notes,
		project.StartDate, project.EndDate, project.UpdatedAt, project.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateOwner transfiere el proyecto a otro usuario.
func (r *ProjectRepo) UpdateOwner(ctx context.Context, id, ownerID int64, updatedBy int64) error {
	query := `UPDATE projects SET owner_id = $2, updated_at = $3, updated_by = $4 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, ownerID, time.Now().UTC(), updatedBy)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("update project owner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia el código de estado del proyecto.
func (r *ProjectRepo) UpdateStatus(ctx context.Context, id int64, status entity.ProjectStatus, updatedBy int64) error {
	query := `UPDATE projects SET status = $2, updated_at = $3, updated_by = $4 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, status, time.Now().UTC(), updatedBy)
	if err != nil {
		return fmt.Errorf("update project status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proyecto por ID.
func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInUse
		}
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByClient proyectos que referencian al cliente.
func (r *ProjectRepo) CountByClient(ctx context.Context, clientID int64) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM projects WHERE client_id = $1`, clientID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count projects by client: %w", err)
	}
	return total, nil
}
