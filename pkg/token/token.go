// Package token maneja el bearer token de sesión del cliente. El
// almacenamiento del token (keyring, archivo, variable de entorno) es un
// colaborador externo; aquí solo se expone la fuente y la inspección de
// expiración.
package token

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Static fuente de token fija (p. ej. leída de configuración al arrancar).
type Static struct {
	mu  sync.RWMutex
	tok string
}

// NewStatic construye la fuente con el token inicial (puede ser vacío:
// sesión anónima).
func NewStatic(tok string) *Static {
	return &Static{tok: tok}
}

// Token devuelve el bearer token vigente.
func (s *Static) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tok
}

// Set reemplaza el token (p. ej. tras un login).
func (s *Static) Set(tok string) {
	s.mu.Lock()
	s.tok = tok
	s.mu.Unlock()
}

// ExpiresAt lee el claim exp del token SIN validar la firma: la validación
// real la hace el backend en cada petición. Sirve solo para avisar al usuario
// que su sesión está por vencer.
func ExpiresAt(tok string) (time.Time, error) {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tok, claims)
	if err != nil {
		return time.Time{}, fmt.Errorf("token: parsear JWT: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("token: sin claim exp")
	}
	return exp.Time, nil
}

// Expired true si el token tiene claim exp y ya venció. Un token ilegible o
// sin exp se reporta como no vencido; el backend dará el veredicto final.
func Expired(tok string) bool {
	exp, err := ExpiresAt(tok)
	if err != nil {
		return false
	}
	return time.Now().After(exp)
}

// Generate emite un JWT HS256 con subject y expiración. Lo usa el stub de
// desarrollo para simular el login del backend real.
func Generate(secret, subject, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
