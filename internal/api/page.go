package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Page resultado normalizado de un listado. Los endpoints de listado del
// backend responden o un arreglo pelado o el sobre paginado
// {results, count, next, previous}; ambas formas se normalizan aquí, en la
// frontera del servicio, para que ningún consumidor distinga entre ellas.
type Page[T any] struct {
	Results  []T
	Count    int
	Next     string
	Previous string
	// Paginado true si la respuesta venía en sobre.
	Paginado bool
}

type pageEnvelope[T any] struct {
	Results  []T     `json:"results"`
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

// UnmarshalJSON acepta arreglo pelado o sobre paginado.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("api: listado plano: %w", err)
		}
		*p = Page[T]{Results: items, Count: len(items)}
		return nil
	}

	var env pageEnvelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("api: sobre paginado: %w", err)
	}
	p.Results = env.Results
	p.Count = env.Count
	p.Paginado = true
	if env.Next != nil {
		p.Next = *env.Next
	}
	if env.Previous != nil {
		p.Previous = *env.Previous
	}
	if p.Results == nil {
		p.Results = []T{}
	}
	return nil
}
