package migrations_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
	"github.com/jhoicas/terrafoods-ems/migrations"
)

// tableBlock devuelve el cuerpo del CREATE TABLE de la tabla indicada.
func tableBlock(t *testing.T, schema, table string) string {
	t.Helper()
	re := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS ` + table + ` \((.*?)\n\);`)
	m := re.FindStringSubmatch(schema)
	require.Len(t, m, 2, "tabla %s no encontrada", table)
	return m[1]
}

// Cada FK del esquema debe declarar exactamente la política de entity.Relationships.
func TestSchema_PoliticasDeBorradoCoincidenConDominio(t *testing.T) {
	raw, err := migrations.FS.ReadFile("00001_schema.sql")
	require.NoError(t, err)
	schema := string(raw)

	for _, rel := range entity.Relationships {
		block := tableBlock(t, schema, rel.Child)
		var line string
		for _, l := range strings.Split(block, "\n") {
			if strings.HasPrefix(strings.TrimSpace(l), rel.Column+" ") {
				line = l
				break
			}
		}
		require.NotEmpty(t, line, "columna %s.%s", rel.Child, rel.Column)
		assert.Contains(t, line, "REFERENCES "+rel.Parent+" ", "%s.%s", rel.Child, rel.Column)
		assert.Contains(t, line, "ON DELETE "+string(rel.Policy), "%s.%s", rel.Child, rel.Column)
	}
}

func TestSchema_TodasLasReferenciasTienenPolitica(t *testing.T) {
	raw, err := migrations.FS.ReadFile("00001_schema.sql")
	require.NoError(t, err)

	re := regexp.MustCompile(`(?m)^\s+(\w+)\s+BIGINT.*REFERENCES`)
	blocks := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\n\);`).FindAllStringSubmatch(string(raw), -1)
	require.NotEmpty(t, blocks)
	for _, b := range blocks {
		for _, col := range re.FindAllStringSubmatch(b[2], -1) {
			_, ok := entity.PolicyFor(b[1], col[1])
			assert.True(t, ok, "FK %s.%s sin política declarada", b[1], col[1])
		}
	}
}
