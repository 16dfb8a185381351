package domain

import "fmt"

// RefKind identifica el tipo de entidad dueña en una relación polimórfica.
type RefKind string

const (
	RefClient   RefKind = "client"
	RefSupplier RefKind = "supplier"
	RefProject  RefKind = "project"
	RefItem     RefKind = "item"
)

// AccountRef referencia al dueño de una dirección o contacto: exactamente
// un cliente o un proveedor. La fila en el almacén tiene dos FKs nullable;
// en memoria solo existe esta variante discriminada, de modo que los estados
// inválidos (ambas nulas o ambas presentes) no son representables fuera de
// la frontera de persistencia.
type AccountRef struct {
	Kind RefKind
	ID   int64
}

// Validate verifica que la referencia apunte a exactamente un dueño válido.
func (r AccountRef) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("%w: la referencia requiere un id positivo", ErrInvalidInput)
	}
	switch r.Kind {
	case RefClient, RefSupplier:
		return nil
	}
	return fmt.Errorf("%w: tipo de dueño %q no permitido para direcciones o contactos", ErrInvalidInput, r.Kind)
}

// DocumentRef referencia al dueño de un documento: exactamente uno entre
// proyecto, ítem, proveedor o cliente (misma regla XOR que AccountRef pero
// con cuatro alternativas).
type DocumentRef struct {
	Kind RefKind
	ID   int64
}

// Validate verifica que la referencia apunte a exactamente un dueño válido.
func (r DocumentRef) Validate() error {
	if r.ID <= 0 {
		return fmt.Errorf("%w: la referencia requiere un id positivo", ErrInvalidInput)
	}
	switch r.Kind {
	case RefProject, RefItem, RefSupplier, RefClient:
		return nil
	}
	return fmt.Errorf("%w: tipo de dueño %q no permitido para documentos", ErrInvalidInput, r.Kind)
}
