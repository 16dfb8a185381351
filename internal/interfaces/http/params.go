package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/seifmegahed/daftar-sub000/internal/application/dto"
)

// paramID lee un parámetro de ruta numérico. Devuelve 0 si no es un id
// válido; el handler responde 400 en ese caso.
func paramID(c *fiber.Ctx, name string) int64 {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// pageRequest decodifica los query params comunes de listado.
func pageRequest(c *fiber.Ctx) (dto.PageRequest, error) {
	var in dto.PageRequest
	if err := c.QueryParser(&in); err != nil {
		return dto.PageRequest{}, err
	}
	return in, nil
}
