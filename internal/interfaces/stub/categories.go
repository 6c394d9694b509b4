package stub

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/api"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain/entity"
)

// CategoryHandler CRUD de categorías sobre el estado en memoria.
type CategoryHandler struct {
	store *Store
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(store *Store) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// List responde el sobre paginado {results, count, next, previous}.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	items := make([]entity.Category, len(h.store.categories))
	copy(items, h.store.categories)
	return envelope(c, items, len(items))
}

// Create acepta nombres duplicados: el backend real no exige unicidad.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in api.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Nombre == "" {
		return fieldErrors(c, map[string][]string{"nombre": {requerido}})
	}

	h.store.mu.Lock()
	cat := entity.Category{ID: h.store.id(), Nombre: in.Nombre, Descripcion: in.Descripcion}
	h.store.categories = append(h.store.categories, cat)
	h.store.mu.Unlock()

	return c.Status(fiber.StatusCreated).JSON(cat)
}

// GetByID obtiene una categoría.
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c)
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	for _, cat := range h.store.categories {
		if cat.ID == id {
			return c.JSON(cat)
		}
	}
	return notFound(c)
}

// Update reemplaza una categoría.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c)
	}
	var in api.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Nombre == "" {
		return fieldErrors(c, map[string][]string{"nombre": {requerido}})
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	for i := range h.store.categories {
		if h.store.categories[i].ID == id {
			h.store.categories[i].Nombre = in.Nombre
			h.store.categories[i].Descripcion = in.Descripcion
			return c.JSON(h.store.categories[i])
		}
	}
	return notFound(c)
}

// Delete elimina una categoría.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c)
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	for i := range h.store.categories {
		if h.store.categories[i].ID == id {
			h.store.categories = append(h.store.categories[:i], h.store.categories[i+1:]...)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}
	return notFound(c)
}
