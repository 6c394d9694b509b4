// crmctl consola de administración del CRM/e-commerce: categorías, productos,
// almacenes, artículos de stock, movimientos y carrito, contra el backend
// REST configurado (API_BASE_URL, API_TOKEN).
//
// Uso:
//
//	crmctl categorias
//	crmctl categorias crear -nombre "Hogar" [-descripcion "..."]
//	crmctl categorias eliminar -id 3
//	crmctl productos
//	crmctl productos crear -nombre "Silla" -precio 120.50 -categoria 1
//	crmctl almacenes
//	crmctl articulos -almacen 4
//	crmctl movimiento -almacen 4 -producto 2 -tipo entrada -cantidad 5 [-ref "nota"]
//	crmctl carrito
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/api"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/application/forms"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/application/inventory"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/application/store"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/pkg/config"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/pkg/logger"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/pkg/token"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", mensaje(err))
		os.Exit(1)
	}
}

// mensaje prioriza el error aplanado del backend sobre el texto técnico.
func mensaje(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Flatten()
	}
	return err.Error()
}

func run(args []string) error {
	if len(args) == 0 {
		return errors.New("uso: crmctl <categorias|productos|almacenes|articulos|movimiento|carrito> [opciones]")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(cfg.App.Env, "warn")

	if cfg.API.Token != "" && token.Expired(cfg.API.Token) {
		fmt.Fprintln(os.Stderr, "aviso: el token de sesión está vencido; las rutas protegidas fallarán")
	}

	client := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout(),
		Tokens:  token.NewStatic(cfg.API.Token),
		Logger:  log,
	})
	ctx := context.Background()

	switch args[0] {
	case "categorias":
		return cmdCategorias(ctx, client, args[1:])
	case "productos":
		return cmdProductos(ctx, client, args[1:])
	case "almacenes":
		return cmdAlmacenes(ctx, client)
	case "articulos":
		return cmdArticulos(ctx, client, log, args[1:])
	case "movimiento":
		return cmdMovimiento(ctx, client, log, args[1:])
	case "carrito":
		return cmdCarrito(ctx, client)
	default:
		return fmt.Errorf("subcomando desconocido: %s", args[0])
	}
}

func cmdCategorias(ctx context.Context, client *api.Client, args []string) error {
	svc := api.NewCategoryService(client)
	col := store.Categories(svc)

	if len(args) == 0 {
		if err := col.Refresh(ctx, nil); err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tDESCRIPCIÓN")
		for _, c := range col.Items() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Nombre, c.Descripcion)
		}
		return w.Flush()
	}

	switch args[0] {
	case "crear":
		fs := flag.NewFlagSet("categorias crear", flag.ExitOnError)
		nombre := fs.String("nombre", "", "nombre de la categoría (requerido)")
		descripcion := fs.String("descripcion", "", "descripción")
		_ = fs.Parse(args[1:])

		form := forms.CategoryForm{Nombre: *nombre, Descripcion: *descripcion}
		return form.Submit(func(in api.CategoryInput) error {
			creada, err := col.Create(ctx, in)
			if err != nil {
				return err
			}
			fmt.Printf("categoría creada: id=%d nombre=%s\n", creada.ID, creada.Nombre)
			return nil
		})
	case "eliminar":
		fs := flag.NewFlagSet("categorias eliminar", flag.ExitOnError)
		id := fs.Int("id", 0, "ID de la categoría (requerido)")
		_ = fs.Parse(args[1:])
		if *id == 0 {
			return errors.New("el flag -id es requerido")
		}
		if err := col.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("categoría %d eliminada\n", *id)
		return nil
	default:
		return fmt.Errorf("uso: crmctl categorias [crear|eliminar]")
	}
}

func cmdProductos(ctx context.Context, client *api.Client, args []string) error {
	svc := api.NewProductService(client)
	col := store.Products(svc)

	if len(args) == 0 {
		if err := col.Refresh(ctx, nil); err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tPRECIO\tSTOCK\tACTIVO")
		for _, p := range col.Items() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", p.ID, p.Nombre, p.Precio, p.StockTotal, p.Activo)
		}
		return w.Flush()
	}

	switch args[0] {
	case "crear":
		fs := flag.NewFlagSet("productos crear", flag.ExitOnError)
		nombre := fs.String("nombre", "", "nombre del producto (requerido)")
		descripcion := fs.String("descripcion", "", "descripción")
		precio := fs.String("precio", "", "precio de venta (requerido)")
		garantia := fs.String("garantia", "", "texto de garantía")
		categoria := fs.Int("categoria", 0, "ID de categoría (requerido)")
		_ = fs.Parse(args[1:])

		var precioDec decimal.Decimal
		if *precio != "" {
			var err error
			precioDec, err = decimal.NewFromString(*precio)
			if err != nil {
				return fmt.Errorf("precio inválido: %w", err)
			}
		}

		form := forms.ProductForm{
			Nombre:      *nombre,
			Descripcion: *descripcion,
			Precio:      precioDec,
			Garantia:    *garantia,
			Activo:      true,
			Categoria:   *categoria,
		}
		return form.Submit(func(in api.ProductInput) error {
			creado, err := col.Create(ctx, in)
			if err != nil {
				return err
			}
			fmt.Printf("producto creado: id=%d nombre=%s\n", creado.ID, creado.Nombre)
			return nil
		})
	case "eliminar":
		fs := flag.NewFlagSet("productos eliminar", flag.ExitOnError)
		id := fs.Int("id", 0, "ID del producto (requerido)")
		_ = fs.Parse(args[1:])
		if *id == 0 {
			return errors.New("el flag -id es requerido")
		}
		if err := col.Delete(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("producto %d eliminado\n", *id)
		return nil
	default:
		return fmt.Errorf("uso: crmctl productos [crear|eliminar]")
	}
}

func cmdAlmacenes(ctx context.Context, client *api.Client) error {
	svc := api.NewWarehouseService(client)
	page, err := svc.List(ctx, nil)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCÓDIGO\tNOMBRE\tDIRECCIÓN\tACTIVO")
	for _, a := range page.Results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", a.ID, a.Codigo, a.Nombre, a.Direccion, a.Activo)
	}
	return w.Flush()
}

func imprimirArticulos(w *inventory.Workflow) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCTO\tNOMBRE\tCANTIDAD\tRESERVADA\tDISPONIBLE")
	for _, a := range w.Articulos() {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n",
			a.ID, a.Producto, a.ProductoNombre, a.Cantidad, a.CantidadReservada, a.CantidadDisponible)
	}
	return tw.Flush()
}

func cmdArticulos(ctx context.Context, client *api.Client, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("articulos", flag.ExitOnError)
	almacen := fs.Int("almacen", 0, "ID del almacén (requerido)")
	_ = fs.Parse(args)
	if *almacen == 0 {
		return errors.New("el flag -almacen es requerido")
	}

	wf := inventory.New(api.NewWarehouseService(client), api.NewMovementService(client), log)
	if err := wf.Select(ctx, *almacen); err != nil {
		return err
	}
	return imprimirArticulos(wf)
}

func cmdMovimiento(ctx context.Context, client *api.Client, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("movimiento", flag.ExitOnError)
	almacen := fs.Int("almacen", 0, "ID del almacén (requerido)")
	producto := fs.Int("producto", 0, "ID del producto (requerido)")
	tipo := fs.String("tipo", "", "entrada, salida o ajuste (requerido)")
	cantidad := fs.String("cantidad", "", "cantidad del movimiento (requerido)")
	ref := fs.String("ref", "", "referencia libre (factura, nota, etc.)")
	_ = fs.Parse(args)

	if *almacen == 0 || *producto == 0 || *tipo == "" || *cantidad == "" {
		return errors.New("los flags -almacen, -producto, -tipo y -cantidad son requeridos")
	}
	cantidadDec, err := decimal.NewFromString(*cantidad)
	if err != nil {
		return fmt.Errorf("cantidad inválida: %w", err)
	}

	wf := inventory.New(api.NewWarehouseService(client), api.NewMovementService(client), log)
	if err := wf.Select(ctx, *almacen); err != nil {
		return err
	}
	err = wf.Submit(ctx, inventory.MovementInput{
		Producto:   *producto,
		Tipo:       *tipo,
		Cantidad:   cantidadDec,
		Referencia: *ref,
	})
	switch {
	case errors.Is(err, inventory.ErrRefrescoFallido):
		// El movimiento quedó registrado: avisar sin sugerir reintento.
		fmt.Fprintln(os.Stderr, "aviso: movimiento registrado, pero no se pudo releer el stock; consulte de nuevo más tarde")
		return nil
	case err != nil:
		return err
	}

	fmt.Println("movimiento registrado; stock actual:")
	return imprimirArticulos(wf)
}

func cmdCarrito(ctx context.Context, client *api.Client) error {
	cart, err := api.NewCartService(client).Get(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRODUCTO\tCANTIDAD\tPRECIO\tSUBTOTAL")
	for _, it := range cart.Items {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", it.ID, it.Nombre, it.Cantidad, it.PrecioUnitario, it.Subtotal())
	}
	fmt.Fprintf(w, "\tTOTAL\t\t\t%s\n", cart.Total())
	return w.Flush()
}
