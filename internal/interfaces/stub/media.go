package stub

import (
	"path"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MediaHandler simula el flujo de subida de imágenes: el backend firma la
// credencial y el host de medios recibe el multipart. Aquí ambos roles los
// cumple el propio stub.
type MediaHandler struct {
	// publicURL base pública del stub, usada para que la credencial apunte
	// de vuelta al endpoint de subida local.
	publicURL string
}

// NewMediaHandler construye el handler.
func NewMediaHandler(publicURL string) *MediaHandler {
	return &MediaHandler{publicURL: publicURL}
}

// Sign emite una credencial de subida apuntando al endpoint local.
func (h *MediaHandler) Sign(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"upload_url": h.publicURL + "/media/upload/",
		"api_key":    "stub-api-key",
		"timestamp":  time.Now().Unix(),
		"firma":      uuid.NewString(),
		"carpeta":    "productos",
	})
}

// Upload recibe el multipart y devuelve una URL alojada simulada.
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fieldErrors(c, map[string][]string{"file": {requerido}})
	}
	hosted := h.publicURL + "/media/" + uuid.NewString() + path.Ext(file.Filename)
	return c.JSON(fiber.Map{"secure_url": hosted})
}
