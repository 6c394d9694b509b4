package inventory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain/entity"
)

// fakeBackend simula el backend de inventario: guarda artículos por almacén y
// aplica la aritmética de los movimientos del lado del "servidor", que es
// donde vive en el sistema real.
type fakeBackend struct {
	mu        sync.Mutex
	articulos map[int][]entity.StockArticle
	// errores forzables por operación
	falloArticles error
	falloCreate   error
	// contadores de llamadas
	llamadasArticles []int
	movimientos      []entity.StockMovement
}

func nuevoFakeBackend() *fakeBackend {
	return &fakeBackend{articulos: make(map[int][]entity.StockArticle)}
}

func (f *fakeBackend) Articles(ctx context.Context, warehouseID int) ([]entity.StockArticle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.llamadasArticles = append(f.llamadasArticles, warehouseID)
	if f.falloArticles != nil {
		return nil, f.falloArticles
	}
	arts := f.articulos[warehouseID]
	out := make([]entity.StockArticle, len(arts))
	copy(out, arts)
	return out, nil
}

func (f *fakeBackend) Create(ctx context.Context, mv entity.StockMovement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.falloCreate != nil {
		return f.falloCreate
	}
	f.movimientos = append(f.movimientos, mv)
	arts := f.articulos[mv.Almacen]
	for i := range arts {
		if arts[i].Producto == mv.Producto {
			switch mv.Tipo {
			case entity.MovimientoEntrada:
				arts[i].Cantidad = arts[i].Cantidad.Add(mv.Cantidad)
			case entity.MovimientoSalida:
				arts[i].Cantidad = arts[i].Cantidad.Sub(mv.Cantidad)
			case entity.MovimientoAjuste:
				arts[i].Cantidad = mv.Cantidad
			}
			arts[i].CantidadDisponible = arts[i].Cantidad.Sub(arts[i].CantidadReservada)
		}
	}
	return nil
}

func articulo(producto int, cantidad int64) entity.StockArticle {
	q := decimal.NewFromInt(cantidad)
	return entity.StockArticle{ID: producto * 10, Producto: producto, Cantidad: q, CantidadDisponible: q}
}

// Select carga los artículos del almacén y pasa a Listo.
func TestWorkflow_SelectCargaArticulos(t *testing.T) {
	backend := nuevoFakeBackend()
	backend.articulos[4] = []entity.StockArticle{articulo(2, 10)}
	wf := New(backend, backend, zerolog.Nop())

	assert.Equal(t, EstadoIdle, wf.Estado())
	require.NoError(t, wf.Select(context.Background(), 4))

	assert.Equal(t, EstadoListo, wf.Estado())
	assert.Equal(t, 4, wf.Almacen())
	require.Len(t, wf.Articulos(), 1)
}

// Seleccionar A y luego B descarta la lista de A antes de pedir la de B:
// nunca se mezclan artículos de dos almacenes.
func TestWorkflow_CambioDeAlmacenDescartaListaPrevia(t *testing.T) {
	backend := nuevoFakeBackend()
	backend.articulos[1] = []entity.StockArticle{articulo(2, 10)}
	backend.articulos[5] = []entity.StockArticle{articulo(3, 7)}
	wf := New(backend, backend, zerolog.Nop())

	require.NoError(t, wf.Select(context.Background(), 1))
	require.NoError(t, wf.Select(context.Background(), 5))

	arts := wf.Articulos()
	require.Len(t, arts, 1)
	assert.Equal(t, 3, arts[0].Producto)
	assert.Equal(t, []int{1, 5}, backend.llamadasArticles)
}

// Escenario de la propiedad central: entrada de 5 sobre cantidad 10 → tras la
// relectura el artículo refleja 15, el valor que calculó el backend; el
// cliente no hace aritmética local.
func TestWorkflow_SubmitEntradaRefrescaDesdeElBackend(t *testing.T) {
	backend := nuevoFakeBackend()
	backend.articulos[4] = []entity.StockArticle{articulo(2, 10)}
	wf := New(backend, backend, zerolog.Nop())
	require.NoError(t, wf.Select(context.Background(), 4))

	err := wf.Submit(context.Background(), MovementInput{
		Producto: 2, Tipo: entity.MovimientoEntrada,
		Cantidad: decimal.NewFromInt(5), Referencia: "compra-77",
	})
	require.NoError(t, err)

	assert.Equal(t, EstadoListo, wf.Estado())
	arts := wf.Articulos()
	require.Len(t, arts, 1)
	assert.True(t, arts[0].Cantidad.Equal(decimal.NewFromInt(15)), "cantidad tras refresco: %s", arts[0].Cantidad)

	// El movimiento llevó el almacén de la selección vigente.
	require.Len(t, backend.movimientos, 1)
	assert.Equal(t, 4, backend.movimientos[0].Almacen)
}

// Si el POST del movimiento falla se vuelve a Listo con los artículos
// intactos; el error queda disponible para la UI.
func TestWorkflow_FalloDelEnvioVuelveAListo(t *testing.T) {
	backend := nuevoFakeBackend()
	backend.articulos[4] = []entity.StockArticle{articulo(2, 10)}
	wf := New(backend, backend, zerolog.Nop())
	require.NoError(t, wf.Select(context.Background(), 4))

	backend.falloCreate = errors.New("stock insuficiente")
	err := wf.Submit(context.Background(), MovementInput{
		Producto: 2, Tipo: entity.MovimientoSalida, Cantidad: decimal.NewFromInt(99),
	})
	require.Error(t, err)

	assert.Equal(t, EstadoListo, wf.Estado())
	arts := wf.Articulos()
	require.Len(t, arts, 1)
	assert.True(t, arts[0].Cantidad.Equal(decimal.NewFromInt(10)))
	assert.Error(t, wf.UltimoError())
}

// Si el movimiento se registró pero la relectura falla, el estado es
// RefrescoFallido y el error distingue "registrado pero desactualizado" de un
// fallo total: la UI no debe sugerir reenviar.
func TestWorkflow_RefrescoFallidoEsEstadoDistinto(t *testing.T) {
	backend := nuevoFakeBackend()
	backend.articulos[4] = []entity.StockArticle{articulo(2, 10)}
	wf := New(backend, backend, zerolog.Nop())
	require.NoError(t, wf.Select(context.Background(), 4))

	backend.falloArticles = errors.New("timeout")
	err := wf.Submit(context.Background(), MovementInput{
		Producto: 2, Tipo: entity.MovimientoEntrada, Cantidad: decimal.NewFromInt(5),
	})

	require.ErrorIs(t, err, ErrRefrescoFallido)
	assert.Equal(t, EstadoRefrescoFallido, wf.Estado())
	// El movimiento sí quedó registrado en el backend.
	require.Len(t, backend.movimientos, 1)
}

// Submit fuera de Listo se rechaza sin tocar la red.
func TestWorkflow_SubmitSinSeleccionRechazado(t *testing.T) {
	backend := nuevoFakeBackend()
	wf := New(backend, backend, zerolog.Nop())

	err := wf.Submit(context.Background(), MovementInput{
		Producto: 2, Tipo: entity.MovimientoEntrada, Cantidad: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrEstadoWorkflow)
	assert.Empty(t, backend.movimientos)
}

// Tras un fallo de carga, el estado es Error y reintentar con Refresh
// funciona cuando el backend se recupera.
func TestWorkflow_ErrorDeCargaYRefresh(t *testing.T) {
	backend := nuevoFakeBackend()
	backend.articulos[4] = []entity.StockArticle{articulo(2, 10)}
	backend.falloArticles = errors.New("backend caído")
	wf := New(backend, backend, zerolog.Nop())

	require.Error(t, wf.Select(context.Background(), 4))
	assert.Equal(t, EstadoError, wf.Estado())
	assert.Empty(t, wf.Articulos())

	backend.falloArticles = nil
	require.NoError(t, wf.Refresh(context.Background()))
	assert.Equal(t, EstadoListo, wf.Estado())
	require.Len(t, wf.Articulos(), 1)
}

// Reset vuelve a Idle y Refresh sin selección se rechaza.
func TestWorkflow_Reset(t *testing.T) {
	backend := nuevoFakeBackend()
	backend.articulos[4] = []entity.StockArticle{articulo(2, 10)}
	wf := New(backend, backend, zerolog.Nop())
	require.NoError(t, wf.Select(context.Background(), 4))

	wf.Reset()
	assert.Equal(t, EstadoIdle, wf.Estado())
	assert.Zero(t, wf.Almacen())
	assert.Empty(t, wf.Articulos())
	assert.ErrorIs(t, wf.Refresh(context.Background()), domain.ErrEstadoWorkflow)
}
