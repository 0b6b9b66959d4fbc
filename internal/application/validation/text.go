package validation

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/terrafoods-ems/internal/domain"
)

// CleanName recorta espacios y normaliza a NFC para que "Café" escrito con tilde
// combinada y precompuesta sea el mismo nombre (importa en los UNIQUE).
func CleanName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// CleanOptional aplica CleanName a un campo opcional; una cadena vacía queda en nil.
func CleanOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := CleanName(*s)
	if v == "" {
		return nil
	}
	return &v
}

// NonNegative falla si d < 0.
func NonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return domain.NewValidationError(field, "no puede ser negativo")
	}
	return nil
}

// Fits falla si d no cabe en NUMERIC(10,2): hasta 8 dígitos enteros.
func Fits(field string, d decimal.Decimal) error {
	if d.Abs().GreaterThanOrEqual(maxNumeric) {
		return domain.NewValidationError(field, "excede el máximo permitido (99999999.99)")
	}
	return nil
}

var maxNumeric = decimal.New(1, 8)

// numericScale decimales de las columnas NUMERIC(10,2).
const numericScale = 2

// Scale falla si d tiene más decimales significativos que la columna; "1.500" es válido, "1.005" no.
func Scale(field string, d decimal.Decimal) error {
	if !d.Equal(d.Round(numericScale)) {
		return domain.NewValidationError(field, "admite como máximo 2 decimales")
	}
	return nil
}

// Amount combina NonNegative, Fits y Scale para cantidades y montos.
func Amount(field string, d decimal.Decimal) error {
	if err := NonNegative(field, d); err != nil {
		return err
	}
	if err := Fits(field, d); err != nil {
		return err
	}
	return Scale(field, d)
}
