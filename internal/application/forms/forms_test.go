package forms

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/api"
)

// Con nombre vacío el callback de envío nunca se invoca y el error nombra el
// campo faltante.
func TestCategoryForm_NombreVacioNoInvocaCallback(t *testing.T) {
	invocado := false
	err := CategoryForm{Descripcion: "sin nombre"}.Submit(func(api.CategoryInput) error {
		invocado = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, invocado)
	assert.Contains(t, err.Error(), "el campo nombre es requerido")
}

// Un formulario válido arma el payload tal cual y propaga el resultado del
// callback.
func TestCategoryForm_ValidoDelegaAlCallback(t *testing.T) {
	var got api.CategoryInput
	err := CategoryForm{Nombre: "Hogar", Descripcion: "Muebles"}.Submit(func(in api.CategoryInput) error {
		got = in
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, api.CategoryInput{Nombre: "Hogar", Descripcion: "Muebles"}, got)

	errBackend := errors.New("rechazado")
	err = CategoryForm{Nombre: "Hogar"}.Submit(func(api.CategoryInput) error { return errBackend })
	assert.ErrorIs(t, err, errBackend)
}

// El producto exige nombre, precio y categoría; los tres faltantes aparecen en
// un solo mensaje.
func TestProductForm_CamposRequeridos(t *testing.T) {
	err := ProductForm{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "el campo nombre es requerido")
	assert.Contains(t, err.Error(), "el campo precio es requerido")
	assert.Contains(t, err.Error(), "el campo categoría es requerido")
}

// Un producto completo pasa y entrega el payload con el precio decimal.
func TestProductForm_ValidoDelegaAlCallback(t *testing.T) {
	var got api.ProductInput
	f := ProductForm{
		Nombre:    "Silla",
		Precio:    decimal.RequireFromString("120.50"),
		Categoria: 3,
		Activo:    true,
	}
	require.NoError(t, f.Submit(func(in api.ProductInput) error {
		got = in
		return nil
	}))

	assert.Equal(t, "Silla", got.Nombre)
	assert.True(t, got.Precio.Equal(decimal.RequireFromString("120.50")))
	assert.Equal(t, 3, got.Categoria)
	assert.True(t, got.Activo)
}
