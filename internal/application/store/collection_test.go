package store

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/api"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain/entity"
)

// fakeService servicio en memoria que simula al backend: asigna IDs y puede
// forzarse a fallar o a bloquearse para observar el estado de carga.
type fakeService struct {
	mu        sync.Mutex
	siguiente int
	listado   api.Page[entity.Category]
	fallo     error
	bloqueo   chan struct{} // si no es nil, List espera aquí
}

func (f *fakeService) List(ctx context.Context, params url.Values) (api.Page[entity.Category], error) {
	if f.bloqueo != nil {
		<-f.bloqueo
	}
	if f.fallo != nil {
		return api.Page[entity.Category]{}, f.fallo
	}
	return f.listado, nil
}

func (f *fakeService) Create(ctx context.Context, in api.CategoryInput) (*entity.Category, error) {
	if f.fallo != nil {
		return nil, f.fallo
	}
	f.mu.Lock()
	f.siguiente++
	id := f.siguiente + 100
	f.mu.Unlock()
	return &entity.Category{ID: id, Nombre: in.Nombre, Descripcion: in.Descripcion}, nil
}

func (f *fakeService) Update(ctx context.Context, id int, in api.CategoryInput) (*entity.Category, error) {
	if f.fallo != nil {
		return nil, f.fallo
	}
	return &entity.Category{ID: id, Nombre: in.Nombre, Descripcion: in.Descripcion}, nil
}

func (f *fakeService) Delete(ctx context.Context, id int) error {
	return f.fallo
}

func coleccionConDatos(t *testing.T, items ...entity.Category) (*Collection[entity.Category, api.CategoryInput], *fakeService) {
	t.Helper()
	svc := &fakeService{listado: api.Page[entity.Category]{Results: items, Count: len(items)}}
	col := New[entity.Category, api.CategoryInput](svc, func(c entity.Category) int { return c.ID })
	require.NoError(t, col.Refresh(context.Background(), nil))
	return col, svc
}

// Tras Create exitoso la entidad devuelta queda exactamente una vez, a la
// cabeza de la colección.
func TestCollection_CreateAnteponeALaCabeza(t *testing.T) {
	col, _ := coleccionConDatos(t,
		entity.Category{ID: 1, Nombre: "Electrónica"},
		entity.Category{ID: 2, Nombre: "Hogar"},
	)

	creada, err := col.Create(context.Background(), api.CategoryInput{Nombre: "Ofertas"})
	require.NoError(t, err)

	items := col.Items()
	require.Len(t, items, 3)
	assert.Equal(t, creada.ID, items[0].ID)

	veces := 0
	for _, it := range items {
		if it.ID == creada.ID {
			veces++
		}
	}
	assert.Equal(t, 1, veces)
	assert.Equal(t, 3, col.Count())
}

// Update reemplaza todos los campos de la entidad con ese ID por la
// representación del servidor; las demás no se tocan.
func TestCollection_UpdateReemplazaSoloLaCoincidente(t *testing.T) {
	col, _ := coleccionConDatos(t,
		entity.Category{ID: 1, Nombre: "Electrónica", Descripcion: "vieja"},
		entity.Category{ID: 2, Nombre: "Hogar"},
	)

	_, err := col.Update(context.Background(), 1, api.CategoryInput{Nombre: "Electrónica y Cómputo", Descripcion: "nueva"})
	require.NoError(t, err)

	items := col.Items()
	assert.Equal(t, "Electrónica y Cómputo", items[0].Nombre)
	assert.Equal(t, "nueva", items[0].Descripcion)
	assert.Equal(t, "Hogar", items[1].Nombre)
}

// Delete quita la entidad; ninguna con ese ID queda en caché.
func TestCollection_DeleteQuitaLaEntidad(t *testing.T) {
	col, _ := coleccionConDatos(t,
		entity.Category{ID: 1, Nombre: "Electrónica"},
		entity.Category{ID: 2, Nombre: "Hogar"},
	)

	require.NoError(t, col.Delete(context.Background(), 1))
	for _, it := range col.Items() {
		assert.NotEqual(t, 1, it.ID)
	}
	assert.Equal(t, 1, col.Count())
}

// Si el servicio rechaza la mutación la caché queda idéntica a su estado
// previo: ninguna escritura parcial antes de la confirmación del servidor.
func TestCollection_FalloDejaLaCacheIntacta(t *testing.T) {
	col, svc := coleccionConDatos(t,
		entity.Category{ID: 1, Nombre: "Electrónica"},
	)
	antes := col.Items()

	svc.fallo = errors.New("backend caído")

	_, err := col.Create(context.Background(), api.CategoryInput{Nombre: "X"})
	assert.Error(t, err)
	_, err = col.Update(context.Background(), 1, api.CategoryInput{Nombre: "X"})
	assert.Error(t, err)
	assert.Error(t, col.Delete(context.Background(), 1))
	assert.Error(t, col.Refresh(context.Background(), nil))

	assert.Equal(t, antes, col.Items())
	assert.Equal(t, 1, col.Count())
}

// Refresh reemplaza por completo la colección con el nuevo listado.
func TestCollection_RefreshReemplaza(t *testing.T) {
	col, svc := coleccionConDatos(t, entity.Category{ID: 1, Nombre: "Electrónica"})

	svc.listado = api.Page[entity.Category]{
		Results:  []entity.Category{{ID: 7, Nombre: "Ofertas"}},
		Count:    30, // total del backend, mayor que la página
		Paginado: true,
	}
	require.NoError(t, col.Refresh(context.Background(), nil))

	items := col.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].ID)
	assert.Equal(t, 30, col.Count())
}

// El flag de carga es uno solo, compartido por las operaciones en vuelo.
func TestCollection_FlagDeCargaCompartido(t *testing.T) {
	svc := &fakeService{bloqueo: make(chan struct{})}
	col := New[entity.Category, api.CategoryInput](svc, func(c entity.Category) int { return c.ID })

	done := make(chan error, 1)
	go func() { done <- col.Refresh(context.Background(), nil) }()

	// Esperar a que la operación entre en vuelo.
	require.Eventually(t, col.Loading, 2*time.Second, 10*time.Millisecond)

	close(svc.bloqueo)
	require.NoError(t, <-done)
	assert.False(t, col.Loading())
}
