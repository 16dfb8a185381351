package entity

import (
	"time"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

// Supplier organización proveedora. Mismas referencias débiles a dirección
// y contacto primarios que Client.
type Supplier struct {
	ID               int64
	Name             string // único
	FieldOfBusiness  string
	RegistrationNumber string
	Notes            string
	PrimaryAddressID *int64
	PrimaryContactID *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CreatedBy        int64
	UpdatedBy        *int64
}

// SupplierBrief proyección reducida para listados.
type SupplierBrief struct {
	ID              int64
	Name            string
	FieldOfBusiness string
	CreatedAt       time.Time
}

// Validate re-valida la forma de la proyección leída del almacén.
func (b SupplierBrief) Validate() error {
	if b.ID <= 0 || b.Name == "" {
		return domain.ErrDataCorrupted
	}
	return nil
}
