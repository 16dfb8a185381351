package dto

// PageRequest parámetros de listado: página base 1, filtro opcional del
// conjunto cerrado y texto de búsqueda opcional.
type PageRequest struct {
	Page        int    `query:"page" validate:"min=0"`
	FilterType  string `query:"filterType" validate:"omitempty,oneof=status creationDate updateDate startDate"`
	FilterValue string `query:"filterValue" validate:"omitempty,max=64"`
	Search      string `query:"search" validate:"omitempty,max=128"`
}

// DefaultPage normaliza la página si viene vacía o inválida.
func (p *PageRequest) DefaultPage() {
	if p.Page < 1 {
		p.Page = 1
	}
}

// PageResponse metadatos de página en respuestas de listado. Total es el
// conteo que espeja el filtro, sin el ranking de búsqueda.
type PageResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
