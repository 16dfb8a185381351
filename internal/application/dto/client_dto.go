package dto

import "time"

// AddressData datos de una dirección en altas y ediciones.
type AddressData struct {
	Name        string `json:"name" validate:"required,max=64"`
	AddressLine string `json:"addressLine" validate:"required,max=256"`
	Country     string `json:"country" validate:"required,max=64"`
	City        string `json:"city" validate:"omitempty,max=64"`
	Notes       string `json:"notes" validate:"omitempty,max=256"`
}

// ContactData datos de un contacto en altas y ediciones.
type ContactData struct {
	Name  string `json:"name" validate:"required,max=64"`
	Email string `json:"email" validate:"omitempty,email,max=64"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
	Notes string `json:"notes" validate:"omitempty,max=256"`
}

// CreateClientRequest alta compuesta: cliente + dirección primaria +
// contacto primario en una sola transacción.
type CreateClientRequest struct {
	Name               string      `json:"name" validate:"required,max=64"`
	RegistrationNumber string      `json:"registrationNumber" validate:"omitempty,max=64"`
	Website            string      `json:"website" validate:"omitempty,max=256"`
	Notes              string      `json:"notes" validate:"omitempty,max=256"`
	Address            AddressData `json:"address" validate:"required"`
	Contact            ContactData `json:"contact" validate:"required"`
}

// UpdateClientRequest edición parcial de campos del cliente.
type UpdateClientRequest struct {
	Name               *string `json:"name" validate:"omitempty,min=1,max=64"`
	RegistrationNumber *string `json:"registrationNumber" validate:"omitempty,max=64"`
	Website            *string `json:"website" validate:"omitempty,max=256"`
	Notes              *string `json:"notes" validate:"omitempty,max=256"`
}

// ClientResponse detalle de un cliente.
type ClientResponse struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	RegistrationNumber string    `json:"registrationNumber,omitempty"`
	Website            string    `json:"website,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	PrimaryAddressID   *int64    `json:"primaryAddressId,omitempty"`
	PrimaryContactID   *int64    `json:"primaryContactId,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ClientBriefResponse proyección para listados.
type ClientBriefResponse struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	RegistrationNumber string    `json:"registrationNumber,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ClientListResponse página de clientes.
type ClientListResponse struct {
	Items []ClientBriefResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
