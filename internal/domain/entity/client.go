package entity

import (
	"time"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

// Client organización cliente. PrimaryAddressID y PrimaryContactID son
// referencias débiles: se completan después de insertar las filas hijas,
// dentro de la misma transacción del alta compuesta.
type Client struct {
	ID                 int64
	Name               string // único
	RegistrationNumber string
	Website            string
	Notes              string
	PrimaryAddressID   *int64
	PrimaryContactID   *int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CreatedBy          int64
	UpdatedBy          *int64
}

// ClientBrief proyección reducida para listados.
type ClientBrief struct {
	ID                 int64
	Name               string
	RegistrationNumber string
	CreatedAt          time.Time
}

// Validate re-valida la forma de la proyección leída del almacén.
func (b ClientBrief) Validate() error {
	if b.ID <= 0 || b.Name == "" {
		return domain.ErrDataCorrupted
	}
	return nil
}
