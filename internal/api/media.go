package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/domain"
)

const mediaSignPath = "/medios/firma/"

// UploadCredential credencial de subida firmada que emite el backend para
// autorizar una subida directa al host de medios externo.
type UploadCredential struct {
	UploadURL string `json:"upload_url"`
	APIKey    string `json:"api_key"`
	Timestamp int64  `json:"timestamp"`
	Firma     string `json:"firma"`
	Carpeta   string `json:"carpeta"`
}

// MediaService sube imágenes de producto: pide la credencial firmada al
// backend y luego hace la subida multipart directamente contra el host de
// medios. La URL alojada resultante se usa después en los payloads de
// producto.
type MediaService struct {
	c *Client
	// uploader cliente HTTP hacia el host de medios; timeout más generoso
	// que el del backend porque sube binarios.
	uploader *http.Client
}

// NewMediaService construye el servicio.
func NewMediaService(c *Client) *MediaService {
	return &MediaService{
		c:        c,
		uploader: &http.Client{Timeout: 60 * time.Second},
	}
}

// Sign obtiene una credencial de subida del backend.
func (s *MediaService) Sign(ctx context.Context) (*UploadCredential, error) {
	var cred UploadCredential
	if err := s.c.get(ctx, mediaSignPath, &cred); err != nil {
		return nil, err
	}
	if cred.UploadURL == "" {
		return nil, fmt.Errorf("api: credencial de subida sin upload_url")
	}
	return &cred, nil
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sube el contenido como multipart al host de medios usando la
// credencial y devuelve la URL alojada de la imagen.
func (s *MediaService) Upload(ctx context.Context, cred *UploadCredential, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("media: armar multipart: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("media: copiar contenido: %w", err)
	}
	_ = form.WriteField("api_key", cred.APIKey)
	_ = form.WriteField("timestamp", strconv.FormatInt(cred.Timestamp, 10))
	_ = form.WriteField("signature", cred.Firma)
	if cred.Carpeta != "" {
		_ = form.WriteField("folder", cred.Carpeta)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("media: cerrar multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cred.UploadURL, &buf)
	if err != nil {
		return "", fmt.Errorf("media: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := s.uploader.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("media: subida cancelada: %w", ctx.Err())
		}
		return "", fmt.Errorf("%w: subida de imagen: %v", domain.ErrTransporte, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return "", fmt.Errorf("media: leer respuesta: %w", err)
	}

	var out uploadResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("media: deserializar respuesta del host de medios: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if out.Error != nil && out.Error.Message != "" {
			return "", fmt.Errorf("media: host de medios HTTP %d: %s", resp.StatusCode, out.Error.Message)
		}
		return "", fmt.Errorf("media: host de medios HTTP %d: %s", resp.StatusCode, string(raw))
	}
	if out.SecureURL == "" {
		return "", fmt.Errorf("media: respuesta sin secure_url")
	}
	return out.SecureURL, nil
}
