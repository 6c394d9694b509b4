package api

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain/entity"
)

const productsPath = "/productos/productos/"

// ProductInput payload de creación/actualización de producto. Las imágenes
// llevan URLs ya alojadas en el host de medios (ver MediaService); la
// principal va en orden 0 por convención.
type ProductInput struct {
	Nombre      string                `json:"nombre"`
	Descripcion string                `json:"descripcion"`
	Precio      decimal.Decimal       `json:"precio"`
	Garantia    string                `json:"garantia"`
	Activo      bool                  `json:"activo"`
	Categoria   int                   `json:"categoria"`
	Imagenes    []entity.ProductImage `json:"imagenes,omitempty"`
}

// ProductService servicio CRUD sobre /productos/productos/.
type ProductService struct {
	c *Client
}

// NewProductService construye el servicio.
func NewProductService(c *Client) *ProductService {
	return &ProductService{c: c}
}

// List lista productos; soporta sobre paginado y arreglo plano.
func (s *ProductService) List(ctx context.Context, params url.Values) (Page[entity.Product], error) {
	var page Page[entity.Product]
	err := s.c.get(ctx, withQuery(productsPath, params), &page)
	return page, err
}

// Get obtiene un producto por ID.
func (s *ProductService) Get(ctx context.Context, id int) (*entity.Product, error) {
	var out entity.Product
	if err := s.c.get(ctx, detailPath(productsPath, id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crea un producto.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (*entity.Product, error) {
	var out entity.Product
	if err := s.c.post(ctx, productsPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza un producto.
func (s *ProductService) Update(ctx context.Context, id int, in ProductInput) (*entity.Product, error) {
	var out entity.Product
	if err := s.c.put(ctx, detailPath(productsPath, id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un producto.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, detailPath(productsPath, id))
}
