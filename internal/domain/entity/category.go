package entity

// Category representa una categoría de productos (plana, sin jerarquía).
type Category struct {
	ID          int    `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}
