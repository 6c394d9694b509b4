package store

import (
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/api"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain/entity"
)

// Verificación en tiempo de compilación de que los servicios REST encajan en
// el contrato de la colección.
var (
	_ Service[entity.Category, api.CategoryInput] = (*api.CategoryService)(nil)
	_ Service[entity.Product, api.ProductInput]   = (*api.ProductService)(nil)
)

// Categories colección de categorías respaldada por el servicio REST.
func Categories(svc *api.CategoryService) *Collection[entity.Category, api.CategoryInput] {
	return New(svc, func(c entity.Category) int { return c.ID })
}

// Products colección de productos respaldada por el servicio REST.
func Products(svc *api.ProductService) *Collection[entity.Product, api.ProductInput] {
	return New(svc, func(p entity.Product) int { return p.ID })
}
