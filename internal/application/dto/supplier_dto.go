package dto

import "time"

// CreateSupplierRequest alta compuesta: proveedor + dirección primaria +
// contacto primario en una sola transacción.
type CreateSupplierRequest struct {
	Name               string      `json:"name" validate:"required,max=64"`
	FieldOfBusiness    string      `json:"fieldOfBusiness" validate:"omitempty,max=64"`
	RegistrationNumber string      `json:"registrationNumber" validate:"omitempty,max=64"`
	Notes              string      `json:"notes" validate:"omitempty,max=256"`
	Address            AddressData `json:"address" validate:"required"`
	Contact            ContactData `json:"contact" validate:"required"`
}

// UpdateSupplierRequest edición parcial de campos del proveedor.
type UpdateSupplierRequest struct {
	Name               *string `json:"name" validate:"omitempty,min=1,max=64"`
	FieldOfBusiness    *string `json:"fieldOfBusiness" validate:"omitempty,max=64"`
	RegistrationNumber *string `json:"registrationNumber" validate:"omitempty,max=64"`
	Notes              *string `json:"notes" validate:"omitempty,max=256"`
}

// SupplierResponse detalle de un proveedor.
type SupplierResponse struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	FieldOfBusiness    string    `json:"fieldOfBusiness,omitempty"`
	RegistrationNumber string    `json:"registrationNumber,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	PrimaryAddressID   *int64    `json:"primaryAddressId,omitempty"`
	PrimaryContactID   *int64    `json:"primaryContactId,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// SupplierBriefResponse proyección para listados.
type SupplierBriefResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FieldOfBusiness string    `json:"fieldOfBusiness,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SupplierListResponse página de proveedores.
type SupplierListResponse struct {
	Items []SupplierBriefResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// AddressResponse dirección persistida.
type AddressResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	AddressLine string `json:"addressLine"`
	Country     string `json:"country"`
	City        string `json:"city,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// ContactResponse contacto persistido.
type ContactResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}
