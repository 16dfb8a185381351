package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
	"github.com/seifmegahed/daftar-sub000/internal/application/usecase"
	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

// ClientHandler maneja las peticiones HTTP de clientes.
type ClientHandler struct {
	uc   *usecase.ClientUseCase
	docs *usecase.DocumentUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, docs *usecase.DocumentUseCase) *ClientHandler {
	return &ClientHandler{uc: uc, docs: docs}
}

// Create POST /api/clients — alta compuesta cliente + dirección + contacto.
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.CreateFull(c.Context(), GetActor(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return conflict(c, "DUPLICATE", fmt.Sprintf("ya existe un cliente con el nombre %q", in.Name))
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/clients?page=&filterType=&filterValue=&search=
func (h *ClientHandler) List(c *fiber.Ctx) error {
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

// GetByID GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
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

// Update PUT /api/clients/:id — edición parcial.
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) && in.Name != nil {
			return conflict(c, "DUPLICATE", fmt.Sprintf("ya existe un cliente con el nombre %q", *in.Name))
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/clients/:id — bloqueado mientras tenga proyectos.
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(c.Context(), GetActor(c), id); err != nil {
		if errors.Is(err, domain.ErrInUse) {
			return conflict(c, "IN_USE", "el cliente tiene proyectos asociados")
		}
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Documents GET /api/clients/:id/documents
func (h *ClientHandler) Documents(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	owner := domain.DocumentRef{Kind: domain.RefClient, ID: id}
	out, err := h.docs.ListByOwner(c.Context(), GetActor(c), owner)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
