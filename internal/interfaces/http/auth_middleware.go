package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/firstfortune/tracking-api/internal/application/dto"
	"github.com/firstfortune/tracking-api/pkg/jwt"
)

// localClaims key bajo la que el middleware deja los claims en Fiber Locals.
// Los handlers los reciben vía ClaimsFrom como valor resuelto, no tocan el
// header ni re-parsean el token.
const localClaims = "claims"

// AuthMiddleware valida el Bearer Token JWT y deja los claims en c.Locals.
// Sin header → 401; token presente pero inválido o expirado → 403.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Access token required"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Invalid or expired token"})
		}
		c.Locals(localClaims, claims)
		return c.Next()
	}
}

// OptionalAuthMiddleware deja los claims en el contexto solo si llega un
// Bearer Token válido; en cualquier otro caso (ausente, malformado, expirado)
// sigue sin claims y nunca bloquea la petición. Permite que el tracking
// público personalice la respuesta cuando hay sesión del dueño.
func OptionalAuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenString := bearerToken(c); tokenString != "" {
			if claims, err := jwt.Parse(jwtSecret, tokenString); err == nil {
				c.Locals(localClaims, claims)
			}
		}
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe usarse DESPUÉS de
// AuthMiddleware (necesita los claims en el contexto).
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFrom(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Access token required"})
		}
		for _, role := range allowedRoles {
			if claims.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Admin access required"})
	}
}

// ClaimsFrom devuelve los claims del contexto, nil si no hubo token válido.
func ClaimsFrom(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(localClaims).(*jwt.Claims)
	return claims
}

// bearerToken extrae el token del header Authorization ("Bearer <token>").
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
