// seed_catalog carga categorías y productos desde un CSV exportado de la hoja de catálogo.
//
// Uso: go run ./cmd/seed_catalog [-latin1] [ruta/catalogo.csv]
// Por defecto lee catalogo.csv del directorio actual. Columnas:
//
//	category,product,unit_of_measure,perishability_days
//
// Las categorías existentes se reutilizan; los productos se insertan siempre.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/terrafoods-ems/internal/application/usecase"
	"github.com/jhoicas/terrafoods-ems/internal/infrastructure/postgres"
	"github.com/jhoicas/terrafoods-ems/pkg/config"
	"github.com/jhoicas/terrafoods-ems/pkg/logger"
)

func main() {
	latin1 := flag.Bool("latin1", false, "el archivo está en ISO-8859-1 (exportación de Excel antiguo)")
	flag.Parse()

	path := "catalogo.csv"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := parseCatalog(f, *latin1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "terrafoods-seed"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	l := &loader{
		categories:      usecase.NewCategoryUseCase(categoryRepo),
		categoryLookup:  categoryRepo,
		products:        usecase.NewProductUseCase(postgres.NewProductRepository(pool)),
		categoryIDCache: map[string]int64{},
	}
	stats, err := l.load(ctx, rows)
	if err != nil {
		log.Fatal().Err(err).Int("productos_cargados", stats.products).Msg("carga de catálogo")
	}
	log.Info().
		Str("archivo", path).
		Int("categorias_nuevas", stats.categories).
		Int("productos", stats.products).
		Msg("catálogo cargado")
}
