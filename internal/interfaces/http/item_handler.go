package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
	"github.com/seifmegahed/daftar-sub000/internal/application/usecase"
	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

// ItemHandler maneja el catálogo de ítems.
type ItemHandler struct {
	uc   *usecase.ItemUseCase
	docs *usecase.DocumentUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase, docs *usecase.DocumentUseCase) *ItemHandler {
	return &ItemHandler{uc: uc, docs: docs}
}

// Create POST /api/items
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return conflict(c, "DUPLICATE", fmt.Sprintf("ya existe un ítem con el nombre %q", in.Name))
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/items
func (h *ItemHandler) List(c *fiber.Ctx) error {
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

// GetByID GET /api/items/:id
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
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

// Update PUT /api/items/:id
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) && in.Name != nil {
			return conflict(c, "DUPLICATE", fmt.Sprintf("ya existe un ítem con el nombre %q", *in.Name))
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/items/:id — bloqueado mientras alguna línea lo use.
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(c.Context(), GetActor(c), id); err != nil {
		if errors.Is(err, domain.ErrInUse) {
			return conflict(c, "IN_USE", "el ítem está referenciado por líneas de proyecto")
		}
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Documents GET /api/items/:id/documents
func (h *ItemHandler) Documents(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	owner := domain.DocumentRef{Kind: domain.RefItem, ID: id}
	out, err := h.docs.ListByOwner(c.Context(), GetActor(c), owner)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
