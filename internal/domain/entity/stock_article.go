package entity

import "github.com/shopspring/decimal"

// StockArticle es la línea de stock de un producto dentro de un almacén.
// CantidadDisponible (cantidad menos reservado) la calcula el backend;
// el cliente no hace aritmética local sobre cantidades.
type StockArticle struct {
	ID                 int             `json:"id"`
	Producto           int             `json:"producto"`
	ProductoNombre     string          `json:"producto_nombre"`
	Cantidad           decimal.Decimal `json:"cantidad"`
	CantidadReservada  decimal.Decimal `json:"cantidad_reservada"`
	CantidadDisponible decimal.Decimal `json:"cantidad_disponible"`
}
