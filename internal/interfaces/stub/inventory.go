package stub

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain/entity"
)

// InventoryHandler almacenes, artículos de stock y movimientos.
type InventoryHandler struct {
	store *Store
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(store *Store) *InventoryHandler {
	return &InventoryHandler{store: store}
}

// ListWarehouses responde el sobre paginado.
func (h *InventoryHandler) ListWarehouses(c *fiber.Ctx) error {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	items := make([]entity.Warehouse, len(h.store.warehouses))
	copy(items, h.store.warehouses)
	return envelope(c, items, len(items))
}

// GetWarehouse obtiene un almacén.
func (h *InventoryHandler) GetWarehouse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c)
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	for _, w := range h.store.warehouses {
		if w.ID == id {
			return c.JSON(w)
		}
	}
	return notFound(c)
}

// ListArticles responde arreglo plano, sin sobre: el servicio de almacenes
// del backend real no pagina este endpoint y el SDK debe normalizar ambas
// formas.
func (h *InventoryHandler) ListArticles(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(c)
	}
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	arts, ok := h.store.articles[id]
	if !ok {
		if !h.warehouseExists(id) {
			return notFound(c)
		}
		arts = []entity.StockArticle{}
	}
	out := make([]entity.StockArticle, len(arts))
	copy(out, arts)
	return c.JSON(out)
}

// CreateMovement aplica un movimiento de stock: entrada suma, salida resta y
// ajuste fija la cantidad absoluta. Rechaza con 400 cualquier resultado
// negativo, el invariante que el cliente asume pero no comprueba.
func (h *InventoryHandler) CreateMovement(c *fiber.Ctx) error {
	var in entity.StockMovement
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}

	fields := make(map[string][]string)
	if in.Producto == 0 {
		fields["producto"] = []string{requerido}
	}
	if in.Almacen == 0 {
		fields["almacen"] = []string{requerido}
	}
	if !entity.TipoValido(in.Tipo) {
		fields["tipo"] = []string{"Tipo de movimiento inválido."}
	}
	if in.Tipo != entity.MovimientoAjuste && !in.Cantidad.GreaterThan(decimal.Zero) {
		fields["cantidad"] = []string{"Debe ser mayor a cero."}
	}
	if len(fields) > 0 {
		return fieldErrors(c, fields)
	}

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	if !h.warehouseExists(in.Almacen) {
		return fieldErrors(c, map[string][]string{"almacen": {"El almacén no existe."}})
	}
	producto := h.findProduct(in.Producto)
	if producto == nil {
		return fieldErrors(c, map[string][]string{"producto": {"El producto no existe."}})
	}

	art := h.findArticle(in.Almacen, in.Producto)
	if art == nil {
		if in.Tipo == entity.MovimientoSalida {
			return fieldErrors(c, map[string][]string{"cantidad": {"El stock resultante no puede ser negativo."}})
		}
		nuevo := h.store.newArticle(*producto, decimal.Zero, decimal.Zero)
		h.store.articles[in.Almacen] = append(h.store.articles[in.Almacen], nuevo)
		art = &h.store.articles[in.Almacen][len(h.store.articles[in.Almacen])-1]
	}

	var resultado decimal.Decimal
	switch in.Tipo {
	case entity.MovimientoEntrada:
		resultado = art.Cantidad.Add(in.Cantidad)
	case entity.MovimientoSalida:
		resultado = art.Cantidad.Sub(in.Cantidad)
	case entity.MovimientoAjuste:
		resultado = in.Cantidad
	}
	if resultado.LessThan(decimal.Zero) {
		return fieldErrors(c, map[string][]string{"cantidad": {"El stock resultante no puede ser negativo."}})
	}

	art.Cantidad = resultado
	art.CantidadDisponible = resultado.Sub(art.CantidadReservada)
	h.recalcStockTotal(in.Producto)

	return c.Status(fiber.StatusCreated).JSON(in)
}

// warehouseExists requiere store.mu tomado.
func (h *InventoryHandler) warehouseExists(id int) bool {
	for _, w := range h.store.warehouses {
		if w.ID == id {
			return true
		}
	}
	return false
}

// findProduct requiere store.mu tomado.
func (h *InventoryHandler) findProduct(id int) *entity.Product {
	for i := range h.store.products {
		if h.store.products[i].ID == id {
			return &h.store.products[i]
		}
	}
	return nil
}

// findArticle requiere store.mu tomado.
func (h *InventoryHandler) findArticle(warehouseID, productID int) *entity.StockArticle {
	arts := h.store.articles[warehouseID]
	for i := range arts {
		if arts[i].Producto == productID {
			return &arts[i]
		}
	}
	return nil
}

// recalcStockTotal suma el stock del producto en todos los almacenes.
// Requiere store.mu tomado.
func (h *InventoryHandler) recalcStockTotal(productID int) {
	total := decimal.Zero
	for _, arts := range h.store.articles {
		for _, a := range arts {
			if a.Producto == productID {
				total = total.Add(a.Cantidad)
			}
		}
	}
	if p := h.findProduct(productID); p != nil {
		p.StockTotal = total
	}
}
