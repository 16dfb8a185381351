package entity

import (
	"time"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

// Item registro de catálogo referenciado por líneas de compra y venta.
// No se puede eliminar mientras alguna línea lo referencie.
type Item struct {
	ID          int64
	Name        string // único
	Type        string
	Description string
	Make        string
	MPN         string // manufacturer part number
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   int64
	UpdatedBy   *int64
}

// ItemBrief proyección reducida para listados.
type ItemBrief struct {
	ID   int64
	Name string
	Type string
	Make string
}

// Validate re-valida la forma de la proyección leída del almacén.
func (b ItemBrief) Validate() error {
	if b.ID <= 0 || b.Name == "" {
		return domain.ErrDataCorrupted
	}
	return nil
}
