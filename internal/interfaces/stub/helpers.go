package stub

import "github.com/gofiber/fiber/v2"

// envelope respuesta de listado paginada al estilo del backend real.
func envelope(c *fiber.Ctx, items any, count int) error {
	return c.JSON(fiber.Map{
		"results":  items,
		"count":    count,
		"next":     nil,
		"previous": nil,
	})
}

// notFound respuesta 404 con la forma {"detail": ...}.
func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "No encontrado."})
}

// invalidBody respuesta 400 para cuerpos que no parsean.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Cuerpo de petición inválido."})
}

// fieldErrors respuesta 400 con errores de validación por campo, misma forma
// que el backend real ({"campo": ["mensaje", ...]}).
func fieldErrors(c *fiber.Ctx, fields map[string][]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fields)
}

const requerido = "Este campo es requerido."
