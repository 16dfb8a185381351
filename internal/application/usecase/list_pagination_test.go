package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
	"github.com/seifmegahed/daftar-sub000/internal/domain/entity"
	"github.com/seifmegahed/daftar-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Paginación de listados: el total no depende de la página, la suma de los
// tamaños de página iguala al total y una página pasada el final devuelve
// una lista vacía sin error.
// ──────────────────────────────────────────────────────────────────────────────

// checkPagination recorre páginas hasta la primera vacía y verifica la
// aritmética del listado. fetch devuelve (filas de la página, total).
func checkPagination(t *testing.T, total int, fetch func(page int) (int, int, error)) {
	t.Helper()

	sum := 0
	for page := 1; ; page++ {
		n, reported, err := fetch(page)
		require.NoError(t, err)
		assert.Equal(t, total, reported, "el total no debe depender de la página pedida")
		if n == 0 {
			break
		}
		assert.LessOrEqual(t, n, repository.DefaultPageLimit)
		sum += n
	}
	assert.Equal(t, total, sum, "la suma de los tamaños de página debe igualar al total")

	n, _, err := fetch(99)
	require.NoError(t, err, "una página pasada el final no es un error")
	assert.Zero(t, n, "una página pasada el final devuelve lista vacía")
}

const seededRows = 13 // una página completa más un resto

func TestClientList_Paginacion(t *testing.T) {
	f := newClientFixture()
	for i := 1; i <= seededRows; i++ {
		_, err := f.clients.Create(context.Background(), &entity.Client{Name: fmt.Sprintf("Cliente %02d", i)})
		require.NoError(t, err)
	}

	checkPagination(t, seededRows, func(page int) (int, int, error) {
		out, err := f.uc.List(context.Background(), dto.PageRequest{Page: page})
		if err != nil {
			return 0, 0, err
		}
		return len(out.Items), out.Page.Total, nil
	})
}

func TestSupplierList_Paginacion(t *testing.T) {
	f := newSupplierFixture()
	for i := 1; i <= seededRows; i++ {
		_, err := f.suppliers.Create(context.Background(), &entity.Supplier{Name: fmt.Sprintf("Proveedor %02d", i)})
		require.NoError(t, err)
	}

	checkPagination(t, seededRows, func(page int) (int, int, error) {
		out, err := f.uc.List(context.Background(), dto.PageRequest{Page: page})
		if err != nil {
			return 0, 0, err
		}
		return len(out.Items), out.Page.Total, nil
	})
}

func TestProjectList_Paginacion(t *testing.T) {
	f := newProjectFixture(t)
	for i := 1; i <= seededRows; i++ {
		_, err := f.projects.Create(context.Background(), &entity.Project{
			Name: fmt.Sprintf("Proyecto %02d", i), ClientID: f.clientID, OwnerID: 1,
		})
		require.NoError(t, err)
	}

	checkPagination(t, seededRows, func(page int) (int, int, error) {
		out, err := f.uc.List(context.Background(), dto.PageRequest{Page: page})
		if err != nil {
			return 0, 0, err
		}
		return len(out.Items), out.Page.Total, nil
	})
}

func TestItemList_Paginacion(t *testing.T) {
	items, _, uc := newItemFixture()
	for i := 1; i <= seededRows; i++ {
		_, err := items.Create(context.Background(), &entity.Item{Name: fmt.Sprintf("Ítem %02d", i), Type: "equipo"})
		require.NoError(t, err)
	}

	checkPagination(t, seededRows, func(page int) (int, int, error) {
		out, err := uc.List(context.Background(), dto.PageRequest{Page: page})
		if err != nil {
			return 0, 0, err
		}
		return len(out.Items), out.Page.Total, nil
	})
}

func TestDocumentList_Paginacion(t *testing.T) {
	f := newDocumentFixture()
	for i := 1; i <= seededRows; i++ {
		_, err := f.documents.Create(context.Background(), &entity.Document{
			Name: fmt.Sprintf("documento-%02d", i), Extension: "pdf", Path: fmt.Sprintf("doc-%02d.pdf", i),
		})
		require.NoError(t, err)
	}

	checkPagination(t, seededRows, func(page int) (int, int, error) {
		out, err := f.uc.List(context.Background(), testActor, dto.PageRequest{Page: page})
		if err != nil {
			return 0, 0, err
		}
		return len(out.Items), out.Page.Total, nil
	})
}
