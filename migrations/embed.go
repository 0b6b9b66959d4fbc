// Package migrations contiene el esquema SQL embebido (formato goose).
package migrations

import "embed"

// FS archivos .sql del esquema, aplicados por cmd/initdb o al arrancar con DB_AUTO_MIGRATE.
//
//go:embed *.sql
var FS embed.FS
