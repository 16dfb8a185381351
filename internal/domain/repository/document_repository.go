package repository

import (
	"context"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
)

// DocumentRepository define el puerto de persistencia para Document y su
// tabla de relaciones polimórficas (DIP).
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Document, error)
	List(ctx context.Context, params ListParams) ([]entity.DocumentBrief, error)
	Count(ctx context.Context, filter Filter) (int, error)
	Delete(ctx context.Context, id int64) error

	CreateRelation(ctx context.Context, rel *entity.DocumentRelation) (int64, error)
	RelationsByDocument(ctx context.Context, documentID int64) ([]entity.DocumentRelation, error)
	ListByOwner(ctx context.Context, owner domain.DocumentRef) ([]entity.DocumentBrief, error)
	DeleteRelation(ctx context.Context, relationID int64) error
	DeleteRelationsByDocument(ctx context.Context, documentID int64) error
	DeleteRelationsByOwner(ctx context.Context, owner domain.DocumentRef) error
	// CountRelations relaciones vivas de un documento (un documento aún
	// referenciado solo lo elimina un admin).
	CountRelations(ctx context.Context, documentID int64) (int, error)
}
