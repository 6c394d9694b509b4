package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain/entity"
)

const categoriesPath = "/ecommerce/categorias/"

// CategoryInput payload de creación/actualización de categoría.
type CategoryInput struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// CategoryService servicio CRUD sobre /ecommerce/categorias/.
type CategoryService struct {
	c *Client
}

// NewCategoryService construye el servicio.
func NewCategoryService(c *Client) *CategoryService {
	return &CategoryService{c: c}
}

// List lista categorías; acepta parámetros de consulta (búsqueda, página).
func (s *CategoryService) List(ctx context.Context, params url.Values) (Page[entity.Category], error) {
	var page Page[entity.Category]
	err := s.c.get(ctx, withQuery(categoriesPath, params), &page)
	return page, err
}

// Get obtiene una categoría por ID.
func (s *CategoryService) Get(ctx context.Context, id int) (*entity.Category, error) {
	var out entity.Category
	if err := s.c.get(ctx, detailPath(categoriesPath, id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create crea una categoría. El backend no exige unicidad de nombre y el
// cliente tampoco la comprueba.
func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*entity.Category, error) {
	var out entity.Category
	if err := s.c.post(ctx, categoriesPath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reemplaza una categoría.
func (s *CategoryService) Update(ctx context.Context, id int, in CategoryInput) (*entity.Category, error) {
	var out entity.Category
	if err := s.c.put(ctx, detailPath(categoriesPath, id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina una categoría.
func (s *CategoryService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, detailPath(categoriesPath, id))
}

// withQuery añade parámetros de consulta a una ruta si existen.
func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

// detailPath ruta de detalle con barra final, convención del backend.
func detailPath(base string, id int) string {
	return fmt.Sprintf("%s%d/", base, id)
}
