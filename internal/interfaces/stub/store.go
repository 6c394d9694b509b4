// Package stub implementa un backend en memoria con las mismas rutas y
// formas de respuesta que el backend real. Sirve para desarrollo local y
// para probar el SDK contra HTTP de verdad; no persiste nada.
package stub

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain/entity"
)

// Store estado en memoria del stub. Un mutex único alcanza: el stub es una
// herramienta de desarrollo, no un servidor de producción.
type Store struct {
	mu sync.Mutex

	categories []entity.Category
	products   []entity.Product
	warehouses []entity.Warehouse
	// articles por almacén; la clave es el ID del almacén.
	articles map[int][]entity.StockArticle
	// carts por subject del token.
	carts map[string]*entity.Cart

	nextID int
}

// NewStore construye el estado vacío.
func NewStore() *Store {
	return &Store{
		articles: make(map[int][]entity.StockArticle),
		carts:    make(map[string]*entity.Cart),
		nextID:   1,
	}
}

func (s *Store) id() int {
	id := s.nextID
	s.nextID++
	return id
}

// Seed carga datos de demostración: dos almacenes, una categoría, dos
// productos con stock en el almacén central.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat := entity.Category{ID: s.id(), Nombre: "Electrónica", Descripcion: "Equipos y accesorios"}
	s.categories = append(s.categories, cat)

	p1 := entity.Product{
		ID: s.id(), Nombre: "Teclado mecánico", Descripcion: "Switches rojos",
		Precio: decimal.NewFromInt(350), Garantia: "12 meses", Activo: true,
		Categoria: cat.ID, StockTotal: decimal.NewFromInt(10),
	}
	p2 := entity.Product{
		ID: s.id(), Nombre: "Mouse inalámbrico", Descripcion: "2.4 GHz",
		Precio: decimal.NewFromInt(120), Garantia: "6 meses", Activo: true,
		Categoria: cat.ID, StockTotal: decimal.NewFromInt(25),
	}
	s.products = append(s.products, p1, p2)

	w1 := entity.Warehouse{ID: s.id(), Nombre: "Central", Codigo: "ALM-01", Direccion: "Av. Busch 100", Telefono: "70000001", Activo: true}
	w2 := entity.Warehouse{ID: s.id(), Nombre: "Norte", Codigo: "ALM-02", Direccion: "Av. Banzer 4to anillo", Telefono: "70000002", Activo: true}
	s.warehouses = append(s.warehouses, w1, w2)

	s.articles[w1.ID] = []entity.StockArticle{
		s.newArticle(p1, decimal.NewFromInt(10), decimal.NewFromInt(2)),
		s.newArticle(p2, decimal.NewFromInt(25), decimal.Zero),
	}
	s.articles[w2.ID] = []entity.StockArticle{}
}

func (s *Store) newArticle(p entity.Product, qty, reserved decimal.Decimal) entity.StockArticle {
	return entity.StockArticle{
		ID:                 s.id(),
		Producto:           p.ID,
		ProductoNombre:     p.Nombre,
		Cantidad:           qty,
		CantidadReservada:  reserved,
		CantidadDisponible: qty.Sub(reserved),
	}
}
