// apistub levanta un backend en memoria con las mismas rutas y formas de
// respuesta que el backend real del CRM/e-commerce. Sirve para desarrollo
// local del SDK y de la interfaz sin depender del backend.
//
// Uso: go run ./cmd/apistub
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/internal/interfaces/stub"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/pkg/config"
	"github.com/sistemas2UAGRM/CRMECOMMERCE-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().Str("env", cfg.App.Env).Str("addr", cfg.Stub.Addr()).Msg("iniciando backend stub")

	store := stub.NewStore()
	store.Seed()

	app := fiber.New(fiber.Config{
		AppName:      "crm-ecommerce-stub",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "crm-ecommerce-stub"})
	})

	stub.Router(app, stub.RouterDeps{
		Store:     store,
		JWTSecret: cfg.Stub.JWTSecret,
		Issuer:    "crm-ecommerce-stub",
		PublicURL: fmt.Sprintf("http://localhost:%d", cfg.Stub.Port),
	})

	go func() {
		if err := app.Listen(cfg.Stub.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor stub finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando stub...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del stub")
	}
}
