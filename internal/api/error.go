package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain"
)

// mensajeGenerico se muestra cuando el payload de error no tiene una forma
// reconocible.
const mensajeGenerico = "ocurrió un error inesperado, intente de nuevo"

// Error respuesta no-2xx del backend. Conserva el payload crudo además de la
// interpretación estructurada para que el llamador decida el mensaje final.
type Error struct {
	StatusCode int
	// Detail mensaje único del backend ({"detail": "..."}).
	Detail string
	// Fields errores de validación por campo ({"nombre": ["requerido"]}).
	Fields map[string][]string
	// Raw cuerpo crudo de la respuesta.
	Raw []byte
}

func (e *Error) Error() string {
	if msg := e.Flatten(); msg != mensajeGenerico {
		return fmt.Sprintf("backend HTTP %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("backend HTTP %d", e.StatusCode)
}

// Unwrap mapea el status a un error centinela de dominio para errors.Is.
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return domain.ErrNoEncontrado
	case http.StatusUnauthorized:
		return domain.ErrNoAutorizado
	case http.StatusForbidden:
		return domain.ErrProhibido
	case http.StatusConflict:
		return domain.ErrConflicto
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrValidacion
	}
	return nil
}

// EsValidacion indica un rechazo de validación del backend con detalle por campo.
func (e *Error) EsValidacion() bool { return len(e.Fields) > 0 }

// EsAutenticacion indica rechazo por credenciales (401/403).
func (e *Error) EsAutenticacion() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// Flatten aplana el error a una sola cadena mostrable: los errores por campo
// se unen como "campo: mensaje" en orden alfabético; formas no reconocidas
// caen al mensaje genérico.
func (e *Error) Flatten() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			msg := strings.Join(e.Fields[k], " ")
			if k == "non_field_errors" {
				parts = append(parts, msg)
				continue
			}
			parts = append(parts, k+": "+msg)
		}
		return strings.Join(parts, "; ")
	}
	if e.Detail != "" {
		return e.Detail
	}
	return mensajeGenerico
}

// decodeError interpreta el cuerpo de error del backend. Formas soportadas:
//
//	{"detail": "No encontrado."}
//	{"nombre": ["Este campo es requerido."], "non_field_errors": [...]}
//
// Cualquier otra forma queda solo en Raw.
func decodeError(status int, raw []byte) *Error {
	apiErr := &Error{StatusCode: status, Raw: raw}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return apiErr
	}

	for key, val := range payload {
		var s string
		if err := json.Unmarshal(val, &s); err == nil {
			if key == "detail" || key == "error" || key == "mensaje" {
				apiErr.Detail = s
			}
			continue
		}
		var list []string
		if err := json.Unmarshal(val, &list); err == nil && len(list) > 0 {
			if apiErr.Fields == nil {
				apiErr.Fields = make(map[string][]string)
			}
			apiErr.Fields[key] = list
		}
	}
	return apiErr
}
