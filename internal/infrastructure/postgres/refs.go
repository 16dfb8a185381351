package postgres

import (
	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

// Conversión entre las variantes discriminadas del dominio y los pares de
// columnas FK nullable del esquema. Al leer, una fila con cero o más de una
// columna presente es ErrDataCorrupted: el esquema no impone la regla XOR
// con un CHECK, así que la frontera re-verifica.

func accountRefColumns(ref domain.AccountRef) (clientID, supplierID *int64) {
	switch ref.Kind {
	case domain.RefClient:
		clientID = &ref.ID
	case domain.RefSupplier:
		supplierID = &ref.ID
	}
	return clientID, supplierID
}

func accountRefFrom(clientID, supplierID *int64) (domain.AccountRef, error) {
	switch {
	case clientID != nil && supplierID == nil:
		return domain.AccountRef{Kind: domain.RefClient, ID: *clientID}, nil
	case supplierID != nil && clientID == nil:
		return domain.AccountRef{Kind: domain.RefSupplier, ID: *supplierID}, nil
	}
	return domain.AccountRef{}, domain.ErrDataCorrupted
}

func documentRefColumns(ref domain.DocumentRef) (projectID, itemID, supplierID, clientID *int64) {
	switch ref.Kind {
	case domain.RefProject:
		projectID = &ref.ID
	case domain.RefItem:
		itemID = &ref.ID
	case domain.RefSupplier:
		supplierID = &ref.ID
	case domain.RefClient:
		clientID = &ref.ID
	}
	return projectID, itemID, supplierID, clientID
}

func documentRefFrom(projectID, itemID, supplierID, clientID *int64) (domain.DocumentRef, error) {
	var ref domain.DocumentRef
	count := 0
	if projectID != nil {
		ref = domain.DocumentRef{Kind: domain.RefProject, ID: *projectID}
		count++
	}
	if itemID != nil {
		ref = domain.DocumentRef{Kind: domain.RefItem, ID: *itemID}
		count++
	}
	if supplierID != nil {
		ref = domain.DocumentRef{Kind: domain.RefSupplier, ID: *supplierID}
		count++
	}
	if clientID != nil {
		ref = domain.DocumentRef{Kind: domain.RefClient, ID: *clientID}
		count++
	}
	if count != 1 {
		return domain.DocumentRef{}, domain.ErrDataCorrupted
	}
	return ref, nil
}
