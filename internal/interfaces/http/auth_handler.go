package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mensajeria-api/internal/application/auth"
	"github.com/jhoicas/Mensajeria-api/internal/application/dto"
	"github.com/jhoicas/Mensajeria-api/internal/domain"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar cuenta
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "first_name, last_name, email, password, type"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return respondErr(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if errs := in.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	user, err := h.uc.RegisterUser(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return respondErr(c, fiber.StatusBadRequest, "el email ya está registrado")
		}
		return respondErr(c, fiber.StatusInternalServerError, err.Error())
	}
	return respondData(c, fiber.StatusCreated, "cuenta registrada", fiber.Map{"user": user})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.APIResponse
// @Failure      401   {object}  dto.APIResponse
// @Failure      403   {object}  dto.APIResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondErr(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if errs := in.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}
	user, err := h.uc.Login(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			// Mismo mensaje para usuario inexistente y password incorrecto:
			// no permitir enumeración de cuentas.
			return respondErr(c, fiber.StatusUnauthorized, msgInvalidCredentials)
		case errors.Is(err, domain.ErrAccountInactive):
			return respondErr(c, fiber.StatusForbidden, "cuenta inactiva")
		case errors.Is(err, domain.ErrLoginDisabled):
			return respondErr(c, fiber.StatusForbidden, "inicio de sesión deshabilitado")
		default:
			return respondErr(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return respondData(c, fiber.StatusOK, "sesión iniciada", fiber.Map{"user": user})
}
