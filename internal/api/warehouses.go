package api

import (
	"context"
	"net/url"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain/entity"
)

const warehousesPath = "/almacenes/almacenes/"

// WarehouseService servicio de lectura sobre almacenes y sus artículos de
// stock. Los almacenes se administran en otro sistema; desde aquí solo se
// listan, se consultan y se leen sus líneas de stock.
type WarehouseService struct {
	c *Client
}

// NewWarehouseService construye el servicio.
func NewWarehouseService(c *Client) *WarehouseService {
	return &WarehouseService{c: c}
}

// List lista almacenes.
func (s *WarehouseService) List(ctx context.Context, params url.Values) (Page[entity.Warehouse], error) {
	var page Page[entity.Warehouse]
	err := s.c.get(ctx, withQuery(warehousesPath, params), &page)
	return page, err
}

// Get obtiene un almacén por ID.
func (s *WarehouseService) Get(ctx context.Context, id int) (*entity.Warehouse, error) {
	var out entity.Warehouse
	if err := s.c.get(ctx, detailPath(warehousesPath, id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Articles lee las líneas de stock del almacén. Cada llamada reemplaza por
// completo cualquier lista previa en el llamador; no hay fusión de estado.
func (s *WarehouseService) Articles(ctx context.Context, warehouseID int) ([]entity.StockArticle, error) {
	var page Page[entity.StockArticle]
	if err := s.c.get(ctx, detailPath(warehousesPath, warehouseID)+"articulos/", &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}
