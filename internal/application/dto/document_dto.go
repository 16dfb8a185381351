package dto

import "time"

// UploadDocumentRequest alta de documento: los bytes van al colaborador de
// almacenamiento y la fila más su relación se insertan en una transacción.
// OwnerKind/OwnerID forman la referencia polimórfica (exactamente un dueño).
type UploadDocumentRequest struct {
	Name      string `json:"name" validate:"required,max=64"`
	Extension string `json:"extension" validate:"required,max=16"`
	Private   bool   `json:"private"`
	OwnerKind string `json:"ownerKind" validate:"required,oneof=project item supplier client"`
	OwnerID   int64  `json:"ownerId" validate:"required,gt=0"`
}

// RelateDocumentRequest vincula un documento existente a otra entidad.
type RelateDocumentRequest struct {
	OwnerKind string `json:"ownerKind" validate:"required,oneof=project item supplier client"`
	OwnerID   int64  `json:"ownerId" validate:"required,gt=0"`
}

// DocumentResponse detalle de un documento.
type DocumentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Extension string    `json:"extension"`
	Private   bool      `json:"private"`
	CreatedAt time.Time `json:"createdAt"`
}

// DocumentBriefResponse proyección para listados.
type DocumentBriefResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Extension string    `json:"extension"`
	Private   bool      `json:"private"`
	CreatedAt time.Time `json:"createdAt"`
}

// DocumentListResponse página de documentos.
type DocumentListResponse struct {
	Items []DocumentBriefResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// GeneratedFileResponse archivo binario generado (oferta comercial).
type GeneratedFileResponse struct {
	Filename string `json:"filename"`
	Data     []byte `json:"-"`
}
