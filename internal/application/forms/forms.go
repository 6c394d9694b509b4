// Package forms valida la entrada de los formularios de categoría y producto
// antes de delegar al callback de envío. Solo comprueba presencia de campos
// requeridos; validación de formato o rango es del backend y su rechazo se
// muestra tal cual (aplanado) al usuario.
package forms

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/api"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// nombresCampo etiquetas en español para mensajes de validación.
var nombresCampo = map[string]string{
	"Nombre":    "nombre",
	"Precio":    "precio",
	"Categoria": "categoría",
}

// CategoryForm formulario de categoría. Solo nombre es requerido.
type CategoryForm struct {
	Nombre      string `validate:"required"`
	Descripcion string
}

// Validate comprueba los campos requeridos sin tocar la red.
func (f CategoryForm) Validate() error {
	return flatten(validate.Struct(f))
}

// Submit valida y, solo si el formulario es válido, invoca el callback con el
// payload armado. Con un campo requerido vacío el callback nunca se invoca.
func (f CategoryForm) Submit(onSubmit func(api.CategoryInput) error) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return onSubmit(api.CategoryInput{
		Nombre:      f.Nombre,
		Descripcion: f.Descripcion,
	})
}

// ProductForm formulario de producto. Requiere nombre, precio y categoría.
type ProductForm struct {
	Nombre      string          `validate:"required"`
	Descripcion string
	Precio      decimal.Decimal `validate:"required"`
	Garantia    string
	Activo      bool
	Categoria   int `validate:"required"`
}

// Validate comprueba los campos requeridos sin tocar la red.
func (f ProductForm) Validate() error {
	return flatten(validate.Struct(f))
}

// Submit valida y delega al callback con el payload armado.
func (f ProductForm) Submit(onSubmit func(api.ProductInput) error) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return onSubmit(api.ProductInput{
		Nombre:      f.Nombre,
		Descripcion: f.Descripcion,
		Precio:      f.Precio,
		Garantia:    f.Garantia,
		Activo:      f.Activo,
		Categoria:   f.Categoria,
	})
}

// flatten convierte los errores del validador en un único mensaje mostrable.
func flatten(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		campo := nombresCampo[fe.Field()]
		if campo == "" {
			campo = strings.ToLower(fe.Field())
		}
		parts = append(parts, "el campo "+campo+" es requerido")
	}
	return errors.New(strings.Join(parts, "; "))
}
