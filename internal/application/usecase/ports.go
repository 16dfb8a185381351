package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/seifmegahed/daftar-sub000/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción. Las mutaciones
// compuestas (altas padre+hijos, cascadas de borrado) corren sus pasos en
// orden fijo sobre estos repos; cualquier paso fallido revierte todo.
type TxRepos struct {
	Clients   repository.ClientRepository
	Suppliers repository.SupplierRepository
	Addresses repository.AddressRepository
	Contacts  repository.ContactRepository
	Projects  repository.ProjectRepository
	Items     repository.ItemRepository
	LineItems repository.LineItemRepository
	Documents repository.DocumentRepository
}

// TxRunner ejecuta fn dentro de una transacción del almacén.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}

// Storage colaborador de almacenamiento de archivos (fuera del núcleo).
type Storage interface {
	// SaveFile persiste los bytes y devuelve la ruta registrable en la fila
	// del documento.
	SaveFile(data []byte, extension string) (path string, err error)
	// ReadFile devuelve los bytes del archivo guardado en path.
	ReadFile(path string) ([]byte, error)
	// Remove elimina el archivo; best effort tras borrar la fila.
	Remove(path string) error
}

// OfferLine línea de venta resuelta para la oferta comercial.
type OfferLine struct {
	ItemName string
	Price    decimal.Decimal
	Currency string
	Quantity int
}

// OfferData datos estructurados que recibe el generador de PDF.
type OfferData struct {
	ProjectName string
	ClientName  string
	Lines       []OfferLine
}

// OfferGenerator colaborador de generación de documentos (fuera del núcleo).
type OfferGenerator interface {
	GenerateProjectOffer(ctx context.Context, data OfferData) ([]byte, error)
}
