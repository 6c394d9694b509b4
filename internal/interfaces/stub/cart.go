package stub

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/api"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain/entity"
)

// CartHandler carrito por usuario autenticado. Todas las rutas van detrás de
// AuthMiddleware.
type CartHandler struct {
	store *Store
}

// NewCartHandler construye el handler.
func NewCartHandler(store *Store) *CartHandler {
	return &CartHandler{store: store}
}

// cartFor requiere store.mu tomado; crea el carrito vacío si no existe.
func (h *CartHandler) cartFor(sub string) *entity.Cart {
	cart, ok := h.store.carts[sub]
	if !ok {
		cart = &entity.Cart{ID: h.store.id(), Items: []entity.CartItem{}}
		h.store.carts[sub] = cart
	}
	return cart
}

// Get devuelve el carrito del usuario.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	return c.JSON(*h.cartFor(subject(c)))
}

// AddItem añade una línea con los datos del producto desnormalizados.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in api.CartItemInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Cantidad <= 0 {
		return fieldErrors(c, map[string][]string{"cantidad": {"Debe ser mayor a cero."}})
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	var producto *entity.Product
	for i := range h.store.products {
		if h.store.products[i].ID == in.Producto {
			producto = &h.store.products[i]
			break
		}
	}
	if producto == nil {
		return fieldErrors(c, map[string][]string{"producto": {"El producto no existe."}})
	}

	cart := h.cartFor(subject(c))
	imagen := ""
	if img := producto.ImagenPrincipal(); img != nil {
		imagen = img.URL
	}
	cart.Items = append(cart.Items, entity.CartItem{
		ID:             h.store.id(),
		Producto:       producto.ID,
		Nombre:         producto.Nombre,
		Descripcion:    producto.Descripcion,
		Imagen:         imagen,
		Cantidad:       in.Cantidad,
		PrecioUnitario: producto.Precio,
	})
	return c.Status(fiber.StatusCreated).JSON(*cart)
}

// UpdateItem cambia la cantidad de una línea.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("itemID")
	if err != nil {
		return notFound(c)
	}
	var in api.CartItemInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Cantidad <= 0 {
		return fieldErrors(c, map[string][]string{"cantidad": {"Debe ser mayor a cero."}})
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	cart := h.cartFor(subject(c))
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Cantidad = in.Cantidad
			return c.JSON(*cart)
		}
	}
	return notFound(c)
}

// RemoveItem elimina una línea.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("itemID")
	if err != nil {
		return notFound(c)
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	cart := h.cartFor(subject(c))
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}
	return notFound(c)
}
