// Package api implementa el cliente HTTP del backend REST del CRM/e-commerce:
// un wrapper autenticado sobre net/http más un servicio por recurso
// (categorías, productos, almacenes, movimientos de stock, carrito, medios).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain"
)

// TokenSource entrega el bearer token vigente para peticiones autenticadas.
// Una implementación que devuelve cadena vacía indica sesión anónima.
type TokenSource interface {
	Token() string
}

// Config opciones del cliente.
type Config struct {
	BaseURL string
	Timeout time.Duration // 0 usa defaultTimeout
	Tokens  TokenSource   // opcional
	Logger  zerolog.Logger
}

const defaultTimeout = 15 * time.Second

// maxErrorBody límite de lectura de cuerpos de error del backend.
const maxErrorBody = 64 * 1024

// Client cliente REST del backend. Sin reintentos, sin deduplicación de
// peticiones en vuelo: cada llamada es una ronda de red independiente.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        zerolog.Logger
}

// NewClient construye el cliente. BaseURL no debe terminar en "/".
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     cfg.Tokens,
		log:        cfg.Logger,
	}
}

// token devuelve el bearer token actual o cadena vacía.
func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

// do ejecuta una petición JSON contra path (relativo al base URL), decodifica
// el cuerpo 2xx en out (si out no es nil) y convierte cualquier respuesta
// no-2xx en *Error con el payload de error del backend.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("api: %s %s cancelado: %w", method, path, ctx.Err())
		}
		return fmt.Errorf("%w: %s %s: %v", domain.ErrTransporte, method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("metodo", method).
		Str("ruta", path).
		Int("estado", resp.StatusCode).
		Dur("duracion", time.Since(start)).
		Msg("petición al backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return decodeError(resp.StatusCode, raw)
	}

	if out == nil {
		// Drenar para reutilizar la conexión.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: deserializar respuesta de %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
