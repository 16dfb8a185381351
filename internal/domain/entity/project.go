package entity

import (
	"time"

	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

// ProjectStatus código numérico de estado de un proyecto (conjunto cerrado).
type ProjectStatus int

const (
	StatusActive    ProjectStatus = 0
	StatusOnHold    ProjectStatus = 1
	StatusCompleted ProjectStatus = 2
	StatusCancelled ProjectStatus = 3
)

// Valid true si el código pertenece al conjunto cerrado.
func (s ProjectStatus) Valid() bool {
	return s >= StatusActive && s <= StatusCancelled
}

// Project proyecto de un cliente con un usuario dueño.
type Project struct {
	ID          int64
	Name        string // único
	ClientID    int64
	OwnerID     int64
	Status      ProjectStatus
	Description string
	Notes       string
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   int64
	UpdatedBy   *int64
}

// ProjectBrief proyección reducida para listados (incluye el nombre del
// cliente resuelto por el join del listado).
type ProjectBrief struct {
	ID         int64
	Name       string
	Status     ProjectStatus
	ClientName string
	CreatedAt  time.Time
}

// Validate re-valida la forma de la proyección leída del almacén.
func (b ProjectBrief) Validate() error {
	if b.ID <= 0 || b.Name == "" || !b.Status.Valid() {
		return domain.ErrDataCorrupted
	}
	return nil
}
