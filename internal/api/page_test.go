package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain/entity"
)

// Caso 1: sobre paginado {results, count, next, previous} → Results == results.
func TestPage_SobrePaginado(t *testing.T) {
	raw := `{
		"results": [{"id": 1, "nombre": "Electrónica"}, {"id": 2, "nombre": "Hogar"}],
		"count": 40,
		"next": "http://backend/api/ecommerce/categorias/?page=2",
		"previous": null
	}`

	var page Page[entity.Category]
	require.NoError(t, json.Unmarshal([]byte(raw), &page))

	assert.True(t, page.Paginado)
	assert.Equal(t, 40, page.Count)
	assert.Equal(t, "http://backend/api/ecommerce/categorias/?page=2", page.Next)
	assert.Empty(t, page.Previous)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "Electrónica", page.Results[0].Nombre)
}

// Caso 2: arreglo plano → Results es el arreglo sin cambios.
func TestPage_ArregloPlano(t *testing.T) {
	raw := `[{"id": 7, "nombre": "Ofertas"}]`

	var page Page[entity.Category]
	require.NoError(t, json.Unmarshal([]byte(raw), &page))

	assert.False(t, page.Paginado)
	assert.Equal(t, 1, page.Count)
	require.Len(t, page.Results, 1)
	assert.Equal(t, 7, page.Results[0].ID)
}

// Caso 3: sobre con results vacío → colección vacía no nil.
func TestPage_SobreVacio(t *testing.T) {
	raw := `{"results": [], "count": 0, "next": null, "previous": null}`

	var page Page[entity.Category]
	require.NoError(t, json.Unmarshal([]byte(raw), &page))

	assert.NotNil(t, page.Results)
	assert.Empty(t, page.Results)
	assert.Zero(t, page.Count)
}

// Caso 4: JSON que no es ni arreglo ni sobre → error, no pánico.
func TestPage_FormaInvalida(t *testing.T) {
	var page Page[entity.Category]
	err := json.Unmarshal([]byte(`"texto"`), &page)
	assert.Error(t, err)
}
