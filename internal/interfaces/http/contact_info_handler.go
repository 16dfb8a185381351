package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
	"github.com/seifmegahed/daftar-sub000/internal/application/usecase"
	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

// ContactInfoHandler maneja direcciones y contactos de clientes y
// proveedores. Las rutas anidadas bajo /clients/:id y /suppliers/:id
// comparten estos handlers variando solo el tipo de dueño.
type ContactInfoHandler struct {
	uc *usecase.ContactInfoUseCase
}

// NewContactInfoHandler construye el handler.
func NewContactInfoHandler(uc *usecase.ContactInfoUseCase) *ContactInfoHandler {
	return &ContactInfoHandler{uc: uc}
}

// AddAddress POST /api/{clients|suppliers}/:id/addresses
func (h *ContactInfoHandler) AddAddress(kind domain.RefKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := paramID(c, "id")
		if id == 0 {
			return badRequest(c, "id inválido")
		}
		var in dto.AddressData
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "cuerpo inválido")
		}
		out, err := h.uc.AddAddress(c.Context(), GetActor(c), domain.AccountRef{Kind: kind, ID: id}, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// ListAddresses GET /api/{clients|suppliers}/:id/addresses
func (h *ContactInfoHandler) ListAddresses(kind domain.RefKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := paramID(c, "id")
		if id == 0 {
			return badRequest(c, "id inválido")
		}
		out, err := h.uc.ListAddresses(c.Context(), domain.AccountRef{Kind: kind, ID: id})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
}

// UpdateAddress PUT /api/addresses/:id
func (h *ContactInfoHandler) UpdateAddress(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	var in dto.AddressData
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateAddress(c.Context(), GetActor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteAddress DELETE /api/addresses/:id
func (h *ContactInfoHandler) DeleteAddress(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.DeleteAddress(c.Context(), GetActor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddContact POST /api/{clients|suppliers}/:id/contacts
func (h *ContactInfoHandler) AddContact(kind domain.RefKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := paramID(c, "id")
		if id == 0 {
			return badRequest(c, "id inválido")
		}
		var in dto.ContactData
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "cuerpo inválido")
		}
		out, err := h.uc.AddContact(c.Context(), GetActor(c), domain.AccountRef{Kind: kind, ID: id}, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// ListContacts GET /api/{clients|suppliers}/:id/contacts
func (h *ContactInfoHandler) ListContacts(kind domain.RefKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := paramID(c, "id")
		if id == 0 {
			return badRequest(c, "id inválido")
		}
		out, err := h.uc.ListContacts(c.Context(), domain.AccountRef{Kind: kind, ID: id})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
}

// UpdateContact PUT /api/contacts/:id
func (h *ContactInfoHandler) UpdateContact(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	var in dto.ContactData
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateContact(c.Context(), GetActor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteContact DELETE /api/contacts/:id
func (h *ContactInfoHandler) DeleteContact(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.DeleteContact(c.Context(), GetActor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
