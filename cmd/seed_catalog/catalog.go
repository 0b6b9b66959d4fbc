package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/terrafoods-ems/internal/application/dto"
	"github.com/jhoicas/terrafoods-ems/internal/application/validation"
	"github.com/jhoicas/terrafoods-ems/internal/domain"
	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
)

// catalogRow una línea del CSV.
type catalogRow struct {
	line              int
	category          string
	product           string
	unitOfMeasure     *string
	perishabilityDays *int32
}

var catalogHeader = []string{"category", "product", "unit_of_measure", "perishability_days"}

// parseCatalog lee el CSV (con cabecera). latin1 decodifica ISO-8859-1 a UTF-8.
func parseCatalog(r io.Reader, latin1 bool) ([]catalogRow, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(catalogHeader)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cabecera: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff") // BOM de Excel
	for i, want := range catalogHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, fmt.Errorf("cabecera: columna %d es %q, se esperaba %q", i+1, header[i], want)
		}
	}

	var rows []catalogRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		row := catalogRow{
			line:          line,
			category:      validation.CleanName(rec[0]),
			product:       validation.CleanName(rec[1]),
			unitOfMeasure: validation.CleanOptional(&rec[2]),
		}
		if row.product == "" {
			return nil, fmt.Errorf("línea %d: product vacío", line)
		}
		if s := strings.TrimSpace(rec[3]); s != "" {
			n, err := strconv.ParseInt(s, 10, 32)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("línea %d: perishability_days inválido %q", line, s)
			}
			days := int32(n)
			row.perishabilityDays = &days
		}
		rows = append(rows, row)
	}
}

type categoryCreator interface {
	Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
}

type categoryLookup interface {
	GetByName(ctx context.Context, name string) (*entity.ProductCategory, error)
}

type productCreator interface {
	Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error)
}

type loadStats struct {
	categories int
	products   int
}

// loader inserta las filas usando los mismos casos de uso que la API.
type loader struct {
	categories      categoryCreator
	categoryLookup  categoryLookup
	products        productCreator
	categoryIDCache map[string]int64
}

func (l *loader) load(ctx context.Context, rows []catalogRow) (loadStats, error) {
	var stats loadStats
	for _, row := range rows {
		var categoryID *int64
		if row.category != "" {
			id, created, err := l.categoryID(ctx, row.category)
			if err != nil {
				return stats, fmt.Errorf("línea %d: categoría %q: %w", row.line, row.category, err)
			}
			if created {
				stats.categories++
			}
			categoryID = &id
		}
		_, err := l.products.Create(ctx, dto.CreateProductRequest{
			Name:              row.product,
			CategoryID:        categoryID,
			UnitOfMeasure:     row.unitOfMeasure,
			PerishabilityDays: row.perishabilityDays,
		})
		if err != nil {
			return stats, fmt.Errorf("línea %d: producto %q: %w", row.line, row.product, err)
		}
		stats.products++
	}
	return stats, nil
}

// categoryID devuelve el id de la categoría, creándola si no existe.
func (l *loader) categoryID(ctx context.Context, name string) (int64, bool, error) {
	if id, ok := l.categoryIDCache[name]; ok {
		return id, false, nil
	}
	out, err := l.categories.Create(ctx, dto.CreateCategoryRequest{Name: name})
	if err == nil {
		l.categoryIDCache[name] = out.ID
		return out.ID, true, nil
	}
	if !errors.Is(err, domain.ErrConflict) {
		return 0, false, err
	}
	existing, err := l.categoryLookup.GetByName(ctx, name)
	if err != nil {
		return 0, false, err
	}
	if existing == nil {
		return 0, false, domain.ErrNotFound
	}
	l.categoryIDCache[name] = existing.ID
	return existing.ID, false, nil
}
