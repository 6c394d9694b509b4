package api

import (
	"context"
	"fmt"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain/entity"
)

const cartPath = "/carrito/mi-carrito/"

// CartService carrito del usuario autenticado. Todas las operaciones exigen
// bearer token; sin token se corta antes de tocar la red.
type CartService struct {
	c *Client
}

// NewCartService construye el servicio.
func NewCartService(c *Client) *CartService {
	return &CartService{c: c}
}

// CartItemInput payload para añadir o actualizar una línea.
type CartItemInput struct {
	Producto int `json:"producto"`
	Cantidad int `json:"cantidad"`
}

func (s *CartService) requireToken() error {
	if s.c.token() == "" {
		return fmt.Errorf("%w: el carrito requiere sesión iniciada", domain.ErrNoAutorizado)
	}
	return nil
}

// Get obtiene el carrito del usuario autenticado.
func (s *CartService) Get(ctx context.Context) (*entity.Cart, error) {
	if err := s.requireToken(); err != nil {
		return nil, err
	}
	var out entity.Cart
	if err := s.c.get(ctx, cartPath, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddItem añade una línea y devuelve el carrito actualizado del servidor.
func (s *CartService) AddItem(ctx context.Context, in CartItemInput) (*entity.Cart, error) {
	if err := s.requireToken(); err != nil {
		return nil, err
	}
	var out entity.Cart
	if err := s.c.post(ctx, cartPath+"items/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateItem cambia la cantidad de una línea existente.
func (s *CartService) UpdateItem(ctx context.Context, itemID int, in CartItemInput) (*entity.Cart, error) {
	if err := s.requireToken(); err != nil {
		return nil, err
	}
	var out entity.Cart
	if err := s.c.put(ctx, fmt.Sprintf("%sitems/%d/", cartPath, itemID), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveItem elimina una línea del carrito.
func (s *CartService) RemoveItem(ctx context.Context, itemID int) error {
	if err := s.requireToken(); err != nil {
		return err
	}
	return s.c.delete(ctx, fmt.Sprintf("%sitems/%d/", cartPath, itemID))
}
