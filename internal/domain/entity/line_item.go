package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItem línea de compra: proyecto + ítem + proveedor.
type PurchaseItem struct {
	ID         int64
	ProjectID  int64
	ItemID     int64
	SupplierID int64
	Price      decimal.Decimal
	Currency   string // código ISO 4217
	Quantity   int
	CreatedAt  time.Time
	CreatedBy  int64
}

// SaleItem línea de venta: proyecto + ítem.
type SaleItem struct {
	ID        int64
	ProjectID int64
	ItemID    int64
	Price     decimal.Decimal
	Currency  string
	Quantity  int
	CreatedAt time.Time
	CreatedBy int64
}

// ProjectItem vínculo simple proyecto-ítem sin datos comerciales.
type ProjectItem struct {
	ID        int64
	ProjectID int64
	ItemID    int64
	CreatedAt time.Time
	CreatedBy int64
}
