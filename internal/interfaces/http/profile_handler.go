package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mensajeria-api/internal/application/dto"
	"github.com/jhoicas/Mensajeria-api/internal/application/usecase"
	"github.com/jhoicas/Mensajeria-api/internal/domain"
)

// ProfileHandler maneja el perfil de la cuenta autenticada y el logout.
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler construye el handler de perfil.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get godoc
// @Summary      Perfil de la cuenta autenticada
// @Tags         profile
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  dto.APIResponse
// @Failure      401  {object}  dto.APIResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	user := AuthUser(c)
	if user == nil {
		return respondErr(c, fiber.StatusUnauthorized, msgInvalidCredentials)
	}
	return respondData(c, fiber.StatusOK, "perfil", fiber.Map{"user": dto.FromUser(user)})
}

// Update godoc
// @Summary      Actualizar perfil (parcial)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        body  body  dto.UpdateProfileRequest  true  "subconjunto de campos mutables"
// @Success      200   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/profile [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	user := AuthUser(c)
	if user == nil {
		return respondErr(c, fiber.StatusUnauthorized, msgInvalidCredentials)
	}
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return respondErr(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if errs := in.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	updated, err := h.uc.UpdateProfile(user.ID, in)
	if err != nil {
		var vErr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrNoFieldsToUpdate):
			return respondErr(c, fiber.StatusBadRequest, "no hay campos para actualizar")
		case errors.As(err, &vErr):
			return respondValidation(c, vErr.Fields)
		default:
			return respondErr(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return respondData(c, fiber.StatusOK, "perfil actualizado", fiber.Map{"user": updated})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         profile
// @Produce      json
// @Security     BasicAuth
// @Success      200  {object}  dto.APIResponse
// @Router       /api/logout [post]
func (h *ProfileHandler) Logout(c *fiber.Ctx) error {
	// Sin sesión ni token no hay estado que invalidar: el cliente simplemente
	// deja de enviar el header.
	return c.Status(fiber.StatusOK).JSON(dto.APIResponse{Status: true, Message: "sesión finalizada"})
}
