package http

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
	"github.com/seifmegahed/daftar-sub000/internal/application/usecase"
)

// DocumentHandler maneja documentos y sus relaciones polimórficas.
type DocumentHandler struct {
	uc *usecase.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Upload POST /api/documents — multipart: campo "file" más name, private,
// ownerKind y ownerId. La extensión se toma del nombre del archivo.
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "campo file requerido")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "no se pudo leer el archivo")
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return badRequest(c, "no se pudo leer el archivo")
	}

	ownerID, _ := strconv.ParseInt(c.FormValue("ownerId"), 10, 64)
	name := c.FormValue("name")
	if name == "" {
		name = strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	}
	in := dto.UploadDocumentRequest{
		Name:      name,
		Extension: strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."),
		Private:   c.FormValue("private") == "true",
		OwnerKind: c.FormValue("ownerKind"),
		OwnerID:   ownerID,
	}
	out, err := h.uc.Upload(c.Context(), GetActor(c), in, data)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/documents
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	in, err := pageRequest(c)
	if err != nil {
		return badRequest(c, "parámetros de listado inválidos")
	}
	out, err := h.uc.List(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/documents/:id
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetByID(c.Context(), GetActor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Download GET /api/documents/:id/download
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.Download(c.Context(), GetActor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", out.Filename))
	return c.Send(out.Data)
}

// Relate POST /api/documents/:id/relations
func (h *DocumentHandler) Relate(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	var in dto.RelateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if err := h.uc.Relate(c.Context(), GetActor(c), id, in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Delete DELETE /api/documents/:id
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c, "id")
	if id == 0 {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(c.Context(), GetActor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
