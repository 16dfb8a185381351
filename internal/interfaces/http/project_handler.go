package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
	"github.com/seifmegahed/daftar-sub000/internal/application/usecase"
	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

// ProjectHandler maneja proyectos, sus líneas y la oferta comercial.
type ProjectHandler struct {
	uc    *usecase.ProjectUseCase
	offer *usecase.OfferUseCase
	docs  *usecase.DocumentUseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectUseCase, offer *usecase.OfferUseCase, docs *usecase.DocumentUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc, offer: offer, docs: docs}
}

// Create POST /api/projects
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return conflict(c, "DUPLICATE", fmt.Sprintf("ya existe un proyecto con el nombre %q", in.Name))
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/projects
func (h *ProjectHandler) List(c *fiber.Ctx) error {
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

// GetByID GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
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

// Update PUT /api/projects/:id (dueño o admin)
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) && in.Name != nil {
			return conflict(c, "DUPLICATE", fmt.Sprintf("ya existe un proyecto con el nombre %q", *in.Name))
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TransferOwner PUT /api/projects/:id/owner (dueño o admin)
func (h *ProjectHandler) TransferOwner(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	var in dto.TransferOwnerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.uc.TransferOwner(c.Context(), GetActor(c), id, in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetStatus PUT /api/projects/:id/status (dueño o admin)
func (h *ProjectHandler) SetStatus(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	var in dto.SetStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.uc.SetStatus(c.Context(), GetActor(c), id, in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/projects/:id (dueño o admin; cascada de líneas y
// relaciones de documentos en una transacción)
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(c.Context(), GetActor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddPurchaseItem POST /api/projects/:id/purchase-items
func (h *ProjectHandler) AddPurchaseItem(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	var in dto.AddPurchaseItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.AddPurchaseItem(c.Context(), GetActor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddSaleItem POST /api/projects/:id/sale-items
func (h *ProjectHandler) AddSaleItem(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	var in dto.AddSaleItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.AddSaleItem(c.Context(), GetActor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// LinkItem POST /api/projects/:id/items/:itemId
func (h *ProjectHandler) LinkItem(c *fiber.Ctx) error {
	id := paramID(c, "id")
	itemID := paramID(c, "itemId")
	if id == 0 || itemID == 0 {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.LinkItem(c.Context(), GetActor(c), id, itemID); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return conflict(c, "DUPLICATE", "el ítem ya está vinculado al proyecto")
		}
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Items GET /api/projects/:id/items — las tres colecciones de líneas.
func (h *ProjectHandler) Items(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetItems(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Offer GET /api/projects/:id/offer — PDF de la oferta comercial.
func (h *ProjectHandler) Offer(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	out, err := h.offer.GenerateProjectOffer(c.Context(), GetActor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", out.Filename))
	return c.Send(out.Data)
}

// Documents GET /api/projects/:id/documents
func (h *ProjectHandler) Documents(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	owner := domain.DocumentRef{Kind: domain.RefProject, ID: id}
	out, err := h.docs.ListByOwner(c.Context(), GetActor(c), owner)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
