// Package inventory orquesta el flujo de inventario por almacén: listar
// almacenes, entrar al detalle de uno, leer sus artículos de stock y
// registrar movimientos con relectura posterior.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain/entity"
)

// ErrRefrescoFallido el movimiento quedó registrado en el backend pero la
// relectura de artículos falló: la vista está desactualizada, no perdida.
// Se distingue del fallo total para que la UI no sugiera reintentar el envío.
var ErrRefrescoFallido = errors.New("movimiento registrado, refresco de artículos fallido")

// Estado del panel de detalle de almacén.
type Estado int

const (
	// EstadoIdle sin almacén seleccionado.
	EstadoIdle Estado = iota
	// EstadoCargando artículos del almacén seleccionado en vuelo.
	EstadoCargando
	// EstadoListo artículos cargados; se aceptan envíos de movimiento.
	EstadoListo
	// EstadoEnviando movimiento de stock en vuelo.
	EstadoEnviando
	// EstadoRefrescoFallido movimiento registrado, relectura fallida.
	EstadoRefrescoFallido
	// EstadoError la carga de artículos falló.
	EstadoError
)

func (e Estado) String() string {
	switch e {
	case EstadoIdle:
		return "idle"
	case EstadoCargando:
		return "cargando"
	case EstadoListo:
		return "listo"
	case EstadoEnviando:
		return "enviando"
	case EstadoRefrescoFallido:
		return "refresco_fallido"
	case EstadoError:
		return "error"
	}
	return "desconocido"
}

// ArticleLister puerto de lectura de artículos de un almacén.
type ArticleLister interface {
	Articles(ctx context.Context, warehouseID int) ([]entity.StockArticle, error)
}

// MovementCreator puerto de registro de movimientos de stock.
type MovementCreator interface {
	Create(ctx context.Context, mv entity.StockMovement) error
}

// MovementInput entrada para registrar un movimiento sobre el almacén
// seleccionado. El almacén no se pasa aquí: siempre es el de la selección
// vigente del workflow.
type MovementInput struct {
	Producto   int
	Tipo       string // entrada, salida, ajuste
	Cantidad   decimal.Decimal
	Referencia string
}

// Workflow máquina de estados del detalle de almacén. Sin estados booleanos
// sueltos: cada transición queda nombrada y es observable en tests.
//
//	Idle -> Cargando -> Listo | Error            (Select)
//	Listo -> Enviando -> Listo | RefrescoFallido (Submit)
//
// Cambiar de almacén desde cualquier estado descarta de inmediato la lista
// anterior y vuelve a entrar en Cargando; no hay fusión con estado previo.
type Workflow struct {
	articles  ArticleLister
	movements MovementCreator
	log       zerolog.Logger

	mu        sync.Mutex
	estado    Estado
	almacen   int // 0 = sin selección
	articulos []entity.StockArticle
	ultimoErr error
}

// New construye el workflow en EstadoIdle.
func New(articles ArticleLister, movements MovementCreator, log zerolog.Logger) *Workflow {
	return &Workflow{articles: articles, movements: movements, log: log}
}

// Estado actual.
func (w *Workflow) Estado() Estado {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.estado
}

// Almacen ID del almacén seleccionado, 0 si ninguno.
func (w *Workflow) Almacen() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.almacen
}

// Articulos copia de la última lista de artículos cargada.
func (w *Workflow) Articulos() []entity.StockArticle {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]entity.StockArticle, len(w.articulos))
	copy(out, w.articulos)
	return out
}

// UltimoError último error de carga o envío; nil si la última transición fue
// exitosa.
func (w *Workflow) UltimoError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ultimoErr
}

// Select selecciona un almacén: descarta la lista previa antes de pedir la
// nueva y carga sus artículos. Si durante la carga se seleccionó otro
// almacén, el resultado tardío se descarta en lugar de pisar la selección
// vigente.
func (w *Workflow) Select(ctx context.Context, warehouseID int) error {
	w.mu.Lock()
	w.almacen = warehouseID
	w.articulos = nil
	w.estado = EstadoCargando
	w.ultimoErr = nil
	w.mu.Unlock()

	articulos, err := w.articles.Articles(ctx, warehouseID)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.almacen != warehouseID {
		// Selección superada por otra más reciente; respuesta tardía ignorada.
		return nil
	}
	if err != nil {
		w.estado = EstadoError
		w.ultimoErr = err
		w.log.Warn().Err(err).Int("almacen", warehouseID).Msg("carga de artículos fallida")
		return err
	}
	w.articulos = articulos
	w.estado = EstadoListo
	return nil
}

// Refresh relee los artículos del almacén seleccionado.
func (w *Workflow) Refresh(ctx context.Context) error {
	w.mu.Lock()
	id := w.almacen
	w.mu.Unlock()
	if id == 0 {
		return fmt.Errorf("%w: sin almacén seleccionado", domain.ErrEstadoWorkflow)
	}
	return w.Select(ctx, id)
}

// Submit registra un movimiento de stock sobre el almacén seleccionado y, si
// el registro fue aceptado, relee los artículos para reflejar las cantidades
// que calculó el backend (el cliente no hace aritmética local).
//
// Fallo del POST: vuelve a Listo con los artículos intactos y devuelve el
// error. Fallo solo de la relectura: pasa a RefrescoFallido y devuelve
// ErrRefrescoFallido envuelto; el movimiento NO debe reenviarse.
func (w *Workflow) Submit(ctx context.Context, in MovementInput) error {
	w.mu.Lock()
	if w.estado != EstadoListo {
		estado := w.estado
		w.mu.Unlock()
		return fmt.Errorf("%w: estado %s", domain.ErrEstadoWorkflow, estado)
	}
	almacen := w.almacen
	w.estado = EstadoEnviando
	w.ultimoErr = nil
	w.mu.Unlock()

	mv := entity.StockMovement{
		Producto:   in.Producto,
		Almacen:    almacen,
		Tipo:       in.Tipo,
		Cantidad:   in.Cantidad,
		Referencia: in.Referencia,
	}
	if err := w.movements.Create(ctx, mv); err != nil {
		w.mu.Lock()
		if w.almacen == almacen {
			w.estado = EstadoListo
			w.ultimoErr = err
		}
		w.mu.Unlock()
		w.log.Warn().Err(err).Int("almacen", almacen).Int("producto", in.Producto).
			Msg("registro de movimiento rechazado")
		return err
	}

	articulos, err := w.articles.Articles(ctx, almacen)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.almacen != almacen {
		// El usuario cambió de almacén durante el envío; no pisar su selección.
		return nil
	}
	if err != nil {
		w.estado = EstadoRefrescoFallido
		w.ultimoErr = err
		return fmt.Errorf("%w: %v", ErrRefrescoFallido, err)
	}
	w.articulos = articulos
	w.estado = EstadoListo
	return nil
}

// Reset vuelve a Idle descartando selección y artículos.
func (w *Workflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.almacen = 0
	w.articulos = nil
	w.estado = EstadoIdle
	w.ultimoErr = nil
}
