package dto

// CreateItemRequest alta de un ítem de catálogo.
type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,max=64"`
	Type        string `json:"type" validate:"omitempty,max=64"`
	Description string `json:"description" validate:"omitempty,max=256"`
	Make        string `json:"make" validate:"omitempty,max=64"`
	MPN         string `json:"mpn" validate:"omitempty,max=64"`
	Notes       string `json:"notes" validate:"omitempty,max=256"`
}

// UpdateItemRequest edición parcial de un ítem.
type UpdateItemRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=64"`
	Type        *string `json:"type" validate:"omitempty,max=64"`
	Description *string `json:"description" validate:"omitempty,max=256"`
	Make        *string `json:"make" validate:"omitempty,max=64"`
	MPN         *string `json:"mpn" validate:"omitempty,max=64"`
	Notes       *string `json:"notes" validate:"omitempty,max=256"`
}

// ItemResponse detalle de un ítem.
type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
	Make        string `json:"make,omitempty"`
	MPN         string `json:"mpn,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// ItemBriefResponse proyección para listados.
type ItemBriefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	Make string `json:"make,omitempty"`
}

// ItemListResponse página de ítems.
type ItemListResponse struct {
	Items []ItemBriefResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
