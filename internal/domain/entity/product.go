package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo tal como lo entrega el backend.
// El backend es la fuente de verdad: el cliente nunca recalcula StockTotal,
// solo lo refleja tras cada lectura.
type Product struct {
	ID          int             `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Garantia    string          `json:"garantia"`
	Activo      bool            `json:"activo"`
	Categoria   int             `json:"categoria"`
	StockTotal  decimal.Decimal `json:"stock_total"`
	Imagenes    []ProductImage  `json:"imagenes"`
}

// ProductImage imagen de producto con orden relativo.
// Por convención la imagen principal es la de orden 0; el backend no
// garantiza la unicidad del flag EsPrincipal.
type ProductImage struct {
	URL         string `json:"url"`
	TextoAlt    string `json:"texto_alternativo"`
	EsPrincipal bool   `json:"es_principal"`
	Orden       int    `json:"orden"`
}

// ImagenPrincipal devuelve la imagen marcada como principal, o la de orden 0
// si ninguna lleva el flag. Devuelve nil si el producto no tiene imágenes.
func (p *Product) ImagenPrincipal() *ProductImage {
	if len(p.Imagenes) == 0 {
		return nil
	}
	for i := range p.Imagenes {
		if p.Imagenes[i].EsPrincipal {
			return &p.Imagenes[i]
		}
	}
	for i := range p.Imagenes {
		if p.Imagenes[i].Orden == 0 {
			return &p.Imagenes[i]
		}
	}
	return &p.Imagenes[0]
}
