package entity

import "github.com/shopspring/decimal"

// Tipos de movimiento de stock (valores de wire del backend).
const (
	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
	MovimientoAjuste  = "ajuste"
)

// StockMovement registra un cambio de stock de un producto en un almacén.
// Es de solo escritura desde el cliente: tras enviarlo no se conserva
// representación local, solo se relee el estado del artículo resultante.
type StockMovement struct {
	Producto   int             `json:"producto"`
	Almacen    int             `json:"almacen"`
	Tipo       string          `json:"tipo"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	Referencia string          `json:"referencia"`
}

// TipoValido indica si el tipo corresponde a un valor aceptado por el backend.
func TipoValido(tipo string) bool {
	switch tipo {
	case MovimientoEntrada, MovimientoSalida, MovimientoAjuste:
		return true
	}
	return false
}
