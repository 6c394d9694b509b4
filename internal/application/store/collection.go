// Package store mantiene colecciones de entidades en memoria, consistentes
// con la última respuesta exitosa del backend. Un provider único es dueño de
// cada colección; los consumidores leen copias y mutan solo a través de él.
package store

import (
	"context"
	"net/url"
	"sync"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/api"
)

// Service operaciones CRUD que una colección necesita de su servicio REST.
type Service[T any, I any] interface {
	List(ctx context.Context, params url.Values) (api.Page[T], error)
	Create(ctx context.Context, in I) (*T, error)
	Update(ctx context.Context, id int, in I) (*T, error)
	Delete(ctx context.Context, id int) error
}

// Collection caché en memoria de un listado más ayudantes de mutación.
// Toda escritura a la caché ocurre únicamente después de que la llamada al
// servicio resuelve con éxito; en fallo la caché queda intacta. No hay
// almacenamiento durable: el estado vive lo que viva el proceso.
type Collection[T any, I any] struct {
	svc Service[T, I]
	id  func(T) int

	mu    sync.RWMutex
	items []T
	count int

	// inFlight contador compartido por todas las operaciones en curso;
	// dos mutaciones simultáneas muestran un único estado de carga
	// combinado (limitación conocida, no garantía).
	flagMu   sync.Mutex
	inFlight int
}

// New construye una colección vacía; id extrae el identificador de una entidad.
func New[T any, I any](svc Service[T, I], id func(T) int) *Collection[T, I] {
	return &Collection[T, I]{svc: svc, id: id}
}

func (c *Collection[T, I]) begin() {
	c.flagMu.Lock()
	c.inFlight++
	c.flagMu.Unlock()
}

func (c *Collection[T, I]) end() {
	c.flagMu.Lock()
	c.inFlight--
	c.flagMu.Unlock()
}

// Loading true mientras haya al menos una operación en curso.
func (c *Collection[T, I]) Loading() bool {
	c.flagMu.Lock()
	defer c.flagMu.Unlock()
	return c.inFlight > 0
}

// Items devuelve una copia del listado cacheado.
func (c *Collection[T, I]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Count total reportado por el backend en el último Refresh (o el largo del
// listado si la respuesta no venía paginada).
func (c *Collection[T, I]) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.count
}

// Refresh reemplaza la colección con el resultado del listado. Soporta sobre
// paginado y arreglo plano, normalizados por api.Page.
func (c *Collection[T, I]) Refresh(ctx context.Context, params url.Values) error {
	c.begin()
	defer c.end()

	page, err := c.svc.List(ctx, params)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.items = page.Results
	c.count = page.Count
	c.mu.Unlock()
	return nil
}

// Create llama al servicio y antepone la entidad devuelta a la caché.
// No rehace el listado completo.
func (c *Collection[T, I]) Create(ctx context.Context, in I) (*T, error) {
	c.begin()
	defer c.end()

	created, err := c.svc.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.items = append([]T{*created}, c.items...)
	c.count++
	c.mu.Unlock()
	return created, nil
}

// Update llama al servicio y reemplaza en caché la entidad con ese ID por la
// representación devuelta por el servidor. Las demás entidades no se tocan.
func (c *Collection[T, I]) Update(ctx context.Context, id int, in I) (*T, error) {
	c.begin()
	defer c.end()

	updated, err := c.svc.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = *updated
			break
		}
	}
	c.mu.Unlock()
	return updated, nil
}

// Delete llama al servicio y quita de la caché la entidad con ese ID.
func (c *Collection[T, I]) Delete(ctx context.Context, id int) error {
	c.begin()
	defer c.end()

	if err := c.svc.Delete(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.count--
			break
		}
	}
	c.mu.Unlock()
	return nil
}
