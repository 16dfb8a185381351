package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
	"github.com/seifmegahed/daftar-sub000/internal/domain/repository"
)

// Columnas de una tabla con los cuatro filtros (proyectos).
var allCols = filterColumns{
	status:  "p.status",
	created: "p.created_at",
	updated: "p.updated_at",
	start:   "p.start_date",
}

func TestFilterSQL_Status(t *testing.T) {
	f := repository.Filter{Type: repository.FilterStatus, Value: "2"}

	cond, args, err := filterSQL(f, allCols, 1)
	require.NoError(t, err)
	assert.Equal(t, "p.status = $1", cond)
	assert.Equal(t, []any{2}, args)
}

func TestFilterSQL_RangoDeFechas(t *testing.T) {
	f := repository.Filter{Type: repository.FilterCreationDate, Value: "1700000000,1700086400"}

	cond, args, err := filterSQL(f, allCols, 3)
	require.NoError(t, err)
	assert.Equal(t, "p.created_at BETWEEN $3 AND $4", cond,
		"los placeholders deben arrancar en el índice pedido")
	require.Len(t, args, 2)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), args[0])
	assert.Equal(t, time.Unix(1700086400, 0).UTC(), args[1])
}

// Un filtro que no aplica a la tabla es un predicado nulo, no un error: el
// listado sigue sin esa condición.
func TestFilterSQL_FiltroNoAplicable(t *testing.T) {
	clientCols := filterColumns{created: "c.created_at", updated: "c.updated_at"}

	for _, ft := range []repository.FilterType{repository.FilterStatus, repository.FilterStartDate} {
		cond, args, err := filterSQL(repository.Filter{Type: ft, Value: "1"}, clientCols, 1)
		require.NoError(t, err, "filtro %s", ft)
		assert.Empty(t, cond)
		assert.Nil(t, args)
	}
}

func TestFilterSQL_TipoDesconocidoOVacio(t *testing.T) {
	for _, ft := range []repository.FilterType{repository.FilterNone, "color"} {
		cond, args, err := filterSQL(repository.Filter{Type: ft, Value: "x"}, allCols, 1)
		require.NoError(t, err)
		assert.Empty(t, cond)
		assert.Nil(t, args)
	}
}

func TestFilterSQL_ValorInvalido(t *testing.T) {
	_, _, err := filterSQL(repository.Filter{Type: repository.FilterStatus, Value: "activo"}, allCols, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = filterSQL(repository.Filter{Type: repository.FilterUpdateDate, Value: "no-es-rango"}, allCols, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
