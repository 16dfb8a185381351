package postgres

import (
	"fmt"

	"github.com/seifmegahed/daftar-sub000/internal/domain/repository"
)

// filterColumns columnas sobre las que cada tabla acepta filtros. Una
// cadena vacía significa que ese filtro no aplica a la tabla y se ignora
// (predicado nulo), igual que un tipo de filtro desconocido.
type filterColumns struct {
	status  string
	created string
	updated string
	start   string
}

// filterSQL traduce el filtro a una condición SQL con placeholders a partir
// de $next. Devuelve condición vacía cuando el filtro no aplica.
func filterSQL(f repository.Filter, cols filterColumns, next int) (string, []any, error) {
	switch f.Type {
	case repository.FilterStatus:
		if cols.status == "" {
			return "", nil, nil
		}
		code, err := f.StatusCode()
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("%s = $%d", cols.status, next), []any{code}, nil
	case repository.FilterCreationDate:
		if cols.created == "" {
			return "", nil, nil
		}
		from, to, err := f.DateRange()
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("%s BETWEEN $%d AND $%d", cols.created, next, next+1), []any{from, to}, nil
	case repository.FilterUpdateDate:
		if cols.updated == "" {
			return "", nil, nil
		}
		from, to, err := f.DateRange()
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("%s BETWEEN $%d AND $%d", cols.updated, next, next+1), []any{from, to}, nil
	case repository.FilterStartDate:
		if cols.start == "" {
			return "", nil, nil
		}
		from, to, err := f.DateRange()
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("%s BETWEEN $%d AND $%d", cols.start, next, next+1), []any{from, to}, nil
	}
	return "", nil, nil
}
