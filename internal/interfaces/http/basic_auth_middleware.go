package http

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Mensajeria-api/internal/application/auth"
	"github.com/jhoicas/Mensajeria-api/internal/domain"
	"github.com/jhoicas/Mensajeria-api/internal/domain/entity"
)

// LocalAuthUser clave de c.Locals donde el gate deja la entidad autenticada
// (hash incluido; los handlers la despojan antes de responder).
const LocalAuthUser = "auth_user"

// msgInvalidCredentials mensaje genérico del gate: nunca revela si falló el
// email, el password o el formato del header.
const msgInvalidCredentials = "credenciales inválidas"

// BasicAuthMiddleware re-autentica cada request protegido contra el header
// "Authorization: Basic": decodifica base64, parte una sola vez en el primer
// ':' y verifica email/password contra el store. No hay sesión ni cache: cada
// request paga una comparación bcrypt.
func BasicAuthMiddleware(authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return respondErr(c, fiber.StatusUnauthorized, msgInvalidCredentials)
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
			return respondErr(c, fiber.StatusUnauthorized, msgInvalidCredentials)
		}
		raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(parts[1]))
		if err != nil {
			return respondErr(c, fiber.StatusUnauthorized, msgInvalidCredentials)
		}
		email, plain, found := strings.Cut(string(raw), ":")
		if !found {
			return respondErr(c, fiber.StatusUnauthorized, msgInvalidCredentials)
		}

		user, err := authUC.Authenticate(email, plain)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrLoginDisabled):
				return respondErr(c, fiber.StatusForbidden, "inicio de sesión deshabilitado")
			case errors.Is(err, domain.ErrInvalidCredentials):
				return respondErr(c, fiber.StatusUnauthorized, msgInvalidCredentials)
			default:
				return respondErr(c, fiber.StatusInternalServerError, "error interno")
			}
		}

		c.Locals(LocalAuthUser, user)
		return c.Next()
	}
}

// AuthUser devuelve la entidad autenticada del contexto (después del gate).
func AuthUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalAuthUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
