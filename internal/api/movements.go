package api

import (
	"context"
	"fmt"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain/entity"
)

const movementsPath = "/productos/movimientos-stock/"

// MovementService registra movimientos de stock. Es de solo escritura: el
// backend aplica la aritmética (incluido el rechazo de cantidades resultantes
// negativas) y el cliente relee los artículos del almacén tras cada envío.
type MovementService struct {
	c *Client
}

// NewMovementService construye el servicio.
func NewMovementService(c *Client) *MovementService {
	return &MovementService{c: c}
}

// Create envía un movimiento. Valida solo el tipo antes de salir a red;
// cualquier otra regla (stock suficiente, producto activo) es del backend.
func (s *MovementService) Create(ctx context.Context, mv entity.StockMovement) error {
	if !entity.TipoValido(mv.Tipo) {
		return fmt.Errorf("%w: tipo de movimiento %q", domain.ErrValidacion, mv.Tipo)
	}
	return s.c.post(ctx, movementsPath, mv, nil)
}
