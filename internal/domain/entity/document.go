package entity

import (
	"time"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

// Document archivo almacenado. Los documentos privados solo los leen
// administradores.
type Document struct {
	ID        int64
	Name      string
	Path      string // ruta devuelta por el colaborador de almacenamiento
	Extension string
	Private   bool
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy int64
	UpdatedBy *int64
}

// DocumentRelation fila de unión polimórfica: un documento pertenece a
// exactamente una de cuatro clases de entidad (regla XOR en Owner). Una
// sola tabla con cuatro FKs nullable en lugar de una tabla por par.
type DocumentRelation struct {
	ID         int64
	DocumentID int64
	Owner      domain.DocumentRef
	CreatedAt  time.Time
}

// DocumentBrief proyección reducida para listados.
type DocumentBrief struct {
	ID        int64
	Name      string
	Extension string
	Private   bool
	CreatedAt time.Time
}

// Validate re-valida la forma de la proyección leída del almacén.
func (b DocumentBrief) Validate() error {
	if b.ID <= 0 || b.Name == "" {
		return domain.ErrDataCorrupted
	}
	return nil
}
