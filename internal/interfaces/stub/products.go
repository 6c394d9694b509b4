package stub

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/api"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain/entity"
)

// ProductHandler CRUD de productos sobre el estado en memoria.
type ProductHandler struct {
	store *Store
}

// NewProductHandler construye el handler.
func NewProductHandler(store *Store) *ProductHandler {
	return &ProductHandler{store: store}
}

func validateProductInput(in api.ProductInput) map[string][]string {
	fields := make(map[string][]string)
	if in.Nombre == "" {
		fields["nombre"] = []string{requerido}
	}
	if in.Precio.IsZero() {
		fields["precio"] = []string{requerido}
	}
	if in.Categoria == 0 {
		fields["categoria"] = []string{requerido}
	}
	if in.Precio.LessThan(decimal.Zero) {
		fields["precio"] = append(fields["precio"], "Debe ser mayor o igual a cero.")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// List responde el sobre paginado.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	items := make([]entity.Product, len(h.store.products))
	copy(items, h.store.products)
	return envelope(c, items, len(items))
}

// Create crea un producto. La categoría debe existir.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in api.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if fields := validateProductInput(in); fields != nil {
		return fieldErrors(c, fields)
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	if !h.categoryExists(in.Categoria) {
		return fieldErrors(c, map[string][]string{"categoria": {"La categoría no existe."}})
	}
	p := entity.Product{
		ID:          h.store.id(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      in.Precio,
		Garantia:    in.Garantia,
		Activo:      in.Activo,
		Categoria:   in.Categoria,
		StockTotal:  decimal.Zero,
		Imagenes:    in.Imagenes,
	}
	h.store.products = append(h.store.products, p)
	return c.Status(fiber.StatusCreated).JSON(p)
}

// GetByID obtiene un producto.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c)
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	for _, p := range h.store.products {
		if p.ID == id {
			return c.JSON(p)
		}
	}
	return notFound(c)
}

// Update reemplaza un producto; conserva su stock total.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c)
	}
	var in api.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if fields := validateProductInput(in); fields != nil {
		return fieldErrors(c, fields)
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	if !h.categoryExists(in.Categoria) {
		return fieldErrors(c, map[string][]string{"categoria": {"La categoría no existe."}})
	}
	for i := range h.store.products {
		if h.store.products[i].ID == id {
			p := &h.store.products[i]
			p.Nombre = in.Nombre
			p.Descripcion = in.Descripcion
			p.Precio = in.Precio
			p.Garantia = in.Garantia
			p.Activo = in.Activo
			p.Categoria = in.Categoria
			p.Imagenes = in.Imagenes
			return c.JSON(*p)
		}
	}
	return notFound(c)
}

// Delete elimina un producto.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c)
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	for i := range h.store.products {
		if h.store.products[i].ID == id {
			h.store.products = append(h.store.products[:i], h.store.products[i+1:]...)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}
	return notFound(c)
}

// categoryExists requiere store.mu tomado.
func (h *ProductHandler) categoryExists(id int) bool {
	for _, cat := range h.store.categories {
		if cat.ID == id {
			return true
		}
	}
	return false
}
