package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

// DefaultPageLimit tamaño de página global para listados.
const DefaultPageLimit = 10

// FilterType conjunto cerrado de filtros de listado. Un tipo desconocido o
// vacío es un predicado nulo (siempre verdadero), no un error.
type FilterType string

const (
	FilterNone         FilterType = ""
	FilterStatus       FilterType = "status"       // proyectos: código de estado exacto
	FilterCreationDate FilterType = "creationDate" // rango sobre created_at
	FilterUpdateDate   FilterType = "updateDate"   // rango sobre updated_at
	FilterStartDate    FilterType = "startDate"    // proyectos: rango sobre start_date
)

// Filter filtro opcional de un listado. Value codifica el argumento: el
// código de estado para FilterStatus, o un rango "unixDesde,unixHasta"
// para los filtros de fecha.
type Filter struct {
	Type  FilterType
	Value string
}

// StatusCode decodifica Value como código de estado.
func (f Filter) StatusCode() (int, error) {
	code, err := strconv.Atoi(strings.TrimSpace(f.Value))
	if err != nil {
		return 0, fmt.Errorf("%w: código de estado %q", domain.ErrInvalidInput, f.Value)
	}
	return code, nil
}

// DateRange decodifica Value como rango "unixDesde,unixHasta".
func (f Filter) DateRange() (from, to time.Time, err error) {
	parts := strings.Split(f.Value, ",")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: rango de fechas %q", domain.ErrInvalidInput, f.Value)
	}
	fromUnix, err1 := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	toUnix, err2 := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: rango de fechas %q", domain.ErrInvalidInput, f.Value)
	}
	from = time.Unix(fromUnix, 0).UTC()
	to = time.Unix(toUnix, 0).UTC()
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: el rango termina antes de empezar", domain.ErrInvalidInput)
	}
	return from, to, nil
}

// ListParams parámetros comunes de los listados: página (base 1), filtro
// opcional y texto de búsqueda opcional. Con búsqueda presente el orden es
// por relevancia ponderada; sin ella, por id descendente.
type ListParams struct {
	Page   int
	Filter Filter
	Search string
}

// Offset desplazamiento SQL para la página solicitada.
func (p ListParams) Offset(limit int) int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}
