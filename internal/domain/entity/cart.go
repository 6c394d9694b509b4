package entity

import "github.com/shopspring/decimal"

// CartItem línea de carrito con datos de producto desnormalizados por el backend.
type CartItem struct {
	ID             int             `json:"id"`
	Producto       int             `json:"producto"`
	Nombre         string          `json:"producto_nombre"`
	Descripcion    string          `json:"producto_descripcion"`
	Imagen         string          `json:"producto_imagen"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// Subtotal de la línea (precio unitario por cantidad).
func (i CartItem) Subtotal() decimal.Decimal {
	return i.PrecioUnitario.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}

// Cart carrito de compras del usuario autenticado.
type Cart struct {
	ID    int        `json:"id"`
	Items []CartItem `json:"items"`
}

// Total suma de subtotales, recalculada en cada uso. No se contrasta contra
// ningún total confirmado por el servidor.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}
