package stub

import "github.com/gofiber/fiber/v2"

// RouterDeps dependencias para el router del stub.
type RouterDeps struct {
	Store     *Store
	JWTSecret string
	Issuer    string
	// PublicURL base pública del stub (para las credenciales de medios).
	PublicURL string
}

// Router registra las mismas rutas que consume el SDK contra el backend real.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.JWTSecret, deps.Issuer)
	api.Post("/auth/token/", authHandler.Token)

	// Categorías (público)
	categories := api.Group("/ecommerce/categorias")
	categoryHandler := NewCategoryHandler(deps.Store)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id/", categoryHandler.GetByID)
	categories.Put("/:id/", categoryHandler.Update)
	categories.Delete("/:id/", categoryHandler.Delete)

	// Productos (público)
	products := api.Group("/productos/productos")
	productHandler := NewProductHandler(deps.Store)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id/", productHandler.GetByID)
	products.Put("/:id/", productHandler.Update)
	products.Delete("/:id/", productHandler.Delete)

	// Almacenes, artículos y movimientos
	inventoryHandler := NewInventoryHandler(deps.Store)
	warehouses := api.Group("/almacenes/almacenes")
	warehouses.Get("/", inventoryHandler.ListWarehouses)
	warehouses.Get("/:id/", inventoryHandler.GetWarehouse)
	warehouses.Get("/:id/articulos/", inventoryHandler.ListArticles)
	api.Post("/productos/movimientos-stock/", inventoryHandler.CreateMovement)

	// Carrito (protegido con bearer token)
	cartHandler := NewCartHandler(deps.Store)
	cart := api.Group("/carrito/mi-carrito", AuthMiddleware(deps.JWTSecret))
	cart.Get("/", cartHandler.Get)
	cart.Post("/items/", cartHandler.AddItem)
	cart.Put("/items/:itemID/", cartHandler.UpdateItem)
	cart.Delete("/items/:itemID/", cartHandler.RemoveItem)

	// Medios: firma bajo /api, subida en la raíz (simula el host externo)
	mediaHandler := NewMediaHandler(deps.PublicURL)
	api.Get("/medios/firma/", mediaHandler.Sign)
	app.Post("/media/upload/", mediaHandler.Upload)
}
