package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mensajeria-api/internal/application/dto"
)

// respondData respuesta exitosa con payload bajo data.
func respondData(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.APIResponse{Status: true, Message: message, Data: data})
}

// respondErr respuesta de error con mensaje plano.
func respondErr(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.APIResponse{Status: false, Message: message})
}

// respondValidation respuesta 400 con el detalle campo → mensaje.
func respondValidation(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.APIResponse{
		Status:  false,
		Message: "validación fallida",
		Errors:  dto.FieldErrorsFrom(fields),
	})
}
