package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests AccountRef (dueño de direcciones y contactos: cliente XOR proveedor)
// ──────────────────────────────────────────────────────────────────────────────

func TestAccountRefValidate(t *testing.T) {
	cases := []struct {
		name    string
		ref     domain.AccountRef
		wantErr bool
	}{
		{"cliente válido", domain.AccountRef{Kind: domain.RefClient, ID: 1}, false},
		{"proveedor válido", domain.AccountRef{Kind: domain.RefSupplier, ID: 42}, false},
		{"proyecto no es dueño de contacto", domain.AccountRef{Kind: domain.RefProject, ID: 1}, true},
		{"ítem no es dueño de contacto", domain.AccountRef{Kind: domain.RefItem, ID: 1}, true},
		{"tipo vacío", domain.AccountRef{ID: 1}, true},
		{"tipo desconocido", domain.AccountRef{Kind: "warehouse", ID: 1}, true},
		{"id cero", domain.AccountRef{Kind: domain.RefClient, ID: 0}, true},
		{"id negativo", domain.AccountRef{Kind: domain.RefSupplier, ID: -3}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.ref.Validate()
			if tc.wantErr {
				assert.Error(t, err, "la referencia debe ser rechazada")
				assert.True(t, errors.Is(err, domain.ErrInvalidInput),
					"el rechazo debe envolver ErrInvalidInput")
				return
			}
			assert.NoError(t, err, "la referencia debe ser aceptada")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DocumentRef (dueño de documentos: una de cuatro clases, nunca más)
// ──────────────────────────────────────────────────────────────────────────────

func TestDocumentRefValidate(t *testing.T) {
	// Los cuatro tipos de dueño son válidos para documentos.
	for _, kind := range []domain.RefKind{domain.RefProject, domain.RefItem, domain.RefSupplier, domain.RefClient} {
		t.Run(string(kind), func(t *testing.T) {
			ref := domain.DocumentRef{Kind: kind, ID: 7}
			assert.NoError(t, ref.Validate(), "el tipo %s debe poder ser dueño de un documento", kind)
		})
	}

	t.Run("tipo desconocido", func(t *testing.T) {
		ref := domain.DocumentRef{Kind: "invoice", ID: 7}
		assert.ErrorIs(t, ref.Validate(), domain.ErrInvalidInput)
	})

	t.Run("id no positivo", func(t *testing.T) {
		ref := domain.DocumentRef{Kind: domain.RefProject, ID: 0}
		assert.ErrorIs(t, ref.Validate(), domain.ErrInvalidInput)
	})
}
