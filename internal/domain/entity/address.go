package entity

import (
	"time"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

// Address dirección de un cliente o proveedor. Owner lleva la regla XOR:
// exactamente un dueño; las dos columnas FK nullable solo existen en la
// frontera del almacén.
type Address struct {
	ID          int64
	Owner       domain.AccountRef
	Name        string // etiqueta: "HQ", "Bodega", etc.
	AddressLine string
	Country     string
	City        string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   int64
	UpdatedBy   *int64
}

// Contact persona de contacto de un cliente o proveedor. Misma regla XOR.
type Contact struct {
	ID        int64
	Owner     domain.AccountRef
	Name      string
	Email     string
	Phone     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy int64
	UpdatedBy *int64
}
