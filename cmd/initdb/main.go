// initdb crea (o completa) el esquema de Terra Foods aplicando las migraciones embebidas.
//
// Uso: go run ./cmd/initdb
// Lee la conexión de las mismas variables que la API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"time"

	"github.com/jhoicas/terrafoods-ems/internal/infrastructure/postgres"
	"github.com/jhoicas/terrafoods-ems/pkg/config"
	"github.com/jhoicas/terrafoods-ems/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "terrafoods-initdb"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Msg("todas las tablas creadas")
}
