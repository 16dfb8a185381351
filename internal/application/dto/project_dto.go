package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest alta de proyecto. OwnerID en cero asigna al actor.
type CreateProjectRequest struct {
	Name        string     `json:"name" validate:"required,max=64"`
	ClientID    int64      `json:"clientId" validate:"required,gt=0"`
	OwnerID     int64      `json:"ownerId" validate:"omitempty,gt=0"`
	Status      int        `json:"status" validate:"min=0,max=3"`
	Description string     `json:"description" validate:"omitempty,max=512"`
	Notes       string     `json:"notes" validate:"omitempty,max=256"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// UpdateProjectRequest edición parcial (dueño o admin).
type UpdateProjectRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=64"`
	Description *string    `json:"description" validate:"omitempty,max=512"`
	Notes       *string    `json:"notes" validate:"omitempty,max=256"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// TransferOwnerRequest transferencia de propiedad (dueño o admin).
type TransferOwnerRequest struct {
	OwnerID int64 `json:"ownerId" validate:"required,gt=0"`
}

// SetStatusRequest cambio de estado (dueño o admin).
type SetStatusRequest struct {
	Status int `json:"status" validate:"min=0,max=3"`
}

// AddPurchaseItemRequest línea de compra: ítem + proveedor + precio.
type AddPurchaseItemRequest struct {
	ItemID     int64           `json:"itemId" validate:"required,gt=0"`
	SupplierID int64           `json:"supplierId" validate:"required,gt=0"`
	Price      decimal.Decimal `json:"price"`
	Currency   string          `json:"currency" validate:"required,len=3"`
	Quantity   int             `json:"quantity" validate:"required,gt=0"`
}

// AddSaleItemRequest línea de venta: ítem + precio.
type AddSaleItemRequest struct {
	ItemID   int64           `json:"itemId" validate:"required,gt=0"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency" validate:"required,len=3"`
	Quantity int             `json:"quantity" validate:"required,gt=0"`
}

// ProjectResponse detalle de un proyecto.
type ProjectResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	ClientID    int64      `json:"clientId"`
	OwnerID     int64      `json:"ownerId"`
	Status      int        `json:"status"`
	Description string     `json:"description,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ProjectBriefResponse proyección para listados.
type ProjectBriefResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Status     int       `json:"status"`
	ClientName string    `json:"clientName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ProjectListResponse página de proyectos.
type ProjectListResponse struct {
	Items []ProjectBriefResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// PurchaseItemResponse línea de compra persistida.
type PurchaseItemResponse struct {
	ID         int64           `json:"id"`
	ItemID     int64           `json:"itemId"`
	SupplierID int64           `json:"supplierId"`
	Price      decimal.Decimal `json:"price"`
	Currency   string          `json:"currency"`
	Quantity   int             `json:"quantity"`
}

// SaleItemResponse línea de venta persistida.
type SaleItemResponse struct {
	ID       int64           `json:"id"`
	ItemID   int64           `json:"itemId"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Quantity int             `json:"quantity"`
}

// ProjectItemsResponse las tres colecciones de líneas de un proyecto.
type ProjectItemsResponse struct {
	Purchases []PurchaseItemResponse `json:"purchases"`
	Sales     []SaleItemResponse     `json:"sales"`
	LinkedIDs []int64                `json:"linkedItemIds"`
}
