package stub

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/pkg/token"
)

const localSubject = "subject"

// AuthMiddleware exige un bearer token HS256 válido y deja el subject en
// c.Locals para los handlers protegidos.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Las credenciales de autenticación no se proveyeron.",
			})
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := jwt.RegisteredClaims{}
		tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid || claims.Subject == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"detail": "Token inválido o expirado.",
			})
		}
		c.Locals(localSubject, claims.Subject)
		return c.Next()
	}
}

// subject devuelve el subject dejado por AuthMiddleware.
func subject(c *fiber.Ctx) string {
	s, _ := c.Locals(localSubject).(string)
	return s
}

// AuthHandler emite tokens de desarrollo.
type AuthHandler struct {
	secret string
	issuer string
}

// NewAuthHandler construye el handler.
func NewAuthHandler(secret, issuer string) *AuthHandler {
	return &AuthHandler{secret: secret, issuer: issuer}
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Token emite un JWT para cualquier usuario no vacío: el stub no tiene tabla
// de usuarios, simula el endpoint de login del backend real.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in tokenRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Username == "" || in.Password == "" {
		fields := make(map[string][]string)
		if in.Username == "" {
			fields["username"] = []string{requerido}
		}
		if in.Password == "" {
			fields["password"] = []string{requerido}
		}
		return fieldErrors(c, fields)
	}

	tok, err := token.Generate(h.secret, in.Username, h.issuer, time.Hour)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "No se pudo emitir el token."})
	}
	return c.JSON(fiber.Map{"access": tok})
}
