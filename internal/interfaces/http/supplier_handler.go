package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
	"github.com/seifmegahed/daftar-sub000/internal/application/usecase"
	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

// SupplierHandler maneja las peticiones HTTP de proveedores.
type SupplierHandler struct {
	uc   *usecase.SupplierUseCase
	docs *usecase.DocumentUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, docs *usecase.DocumentUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc, docs: docs}
}

// Create POST /api/suppliers — alta compuesta proveedor + dirección + contacto.
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.CreateFull(c.Context(), GetActor(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return conflict(c, "DUPLICATE", fmt.Sprintf("ya existe un proveedor con el nombre %q", in.Name))
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/suppliers
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	in, err := pageRequest(c)
	if err != nil {
		return badRequest(c, "parámetros de listado inválidos")
	}
	out, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/suppliers/:id
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/suppliers/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) && in.Name != nil {
			return conflict(c, "DUPLICATE", fmt.Sprintf("ya existe un proveedor con el nombre %q", *in.Name))
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/suppliers/:id — bloqueado mientras tenga líneas de compra.
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(c.Context(), GetActor(c), id); err != nil {
		if errors.Is(err, domain.ErrInUse) {
			return conflict(c, "IN_USE", "el proveedor tiene líneas de compra asociadas")
		}
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Documents GET /api/suppliers/:id/documents
func (h *SupplierHandler) Documents(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	owner := domain.DocumentRef{Kind: domain.RefSupplier, ID: id}
	out, err := h.docs.ListByOwner(c.Context(), GetActor(c), owner)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
