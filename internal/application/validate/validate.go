// Package validate valida los DTOs de entrada con go-playground/validator
// antes de cualquier acceso al almacén. El primer error corta la operación
// con un mensaje descriptivo del campo.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO contra sus tags. Devuelve domain.ErrInvalidInput
// envuelto con el mensaje del primer campo inválido.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, describe(fieldErrs[0]))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

// describe traduce un error de campo a un mensaje para el usuario.
func describe(fe validator.FieldError) string {
	field := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("el campo %s es requerido", field)
	case "max":
		return fmt.Sprintf("el campo %s supera el largo máximo de %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("el campo %s no alcanza el largo mínimo de %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("el campo %s debe tener largo %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("el campo %s no es un email válido", field)
	case "oneof":
		return fmt.Sprintf("el campo %s debe ser uno de: %s", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("el campo %s no coincide con %s", field, strings.ToLower(fe.Param()))
	case "nefield":
		return fmt.Sprintf("el campo %s debe ser distinto de %s", field, strings.ToLower(fe.Param()))
	case "gt":
		return fmt.Sprintf("el campo %s debe ser mayor que %s", field, fe.Param())
	}
	return fmt.Sprintf("el campo %s es inválido (%s)", field, fe.Tag())
}

func fieldName(fe validator.FieldError) string {
	// StructNamespace: "CreateClientRequest.Address.Name" -> "address.name"
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToLower(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, ".")
}
