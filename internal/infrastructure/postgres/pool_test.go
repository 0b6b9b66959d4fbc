package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/terrafoods-ems/pkg/config"
)

func testDBConfig() config.DBConfig {
	return config.DBConfig{
		Host: "db.internal", Port: 5432, User: "app", Password: "secret",
		DBName: "terrafoods", SSLMode: "disable", MaxConns: 12, MinConns: 3,
	}
}

func TestPoolConfigFrom_TamanoYHost(t *testing.T) {
	pc, err := poolConfigFrom(testDBConfig())
	require.NoError(t, err)

	assert.Equal(t, int32(12), pc.MaxConns)
	assert.Equal(t, int32(3), pc.MinConns)
	assert.Equal(t, "db.internal", pc.ConnConfig.Host)
	assert.NotNil(t, pc.AfterConnect)
}

func TestPoolConfigFrom_DSNInvalido(t *testing.T) {
	cfg := testDBConfig()
	cfg.DatabaseURL = "postgres://%zz"

	_, err := poolConfigFrom(cfg)
	assert.Error(t, err)
}

func TestPoolConfigFrom_ForceIPv4RechazaIPv6(t *testing.T) {
	cfg := testDBConfig()
	cfg.ForceIPv4 = true
	pc, err := poolConfigFrom(cfg)
	require.NoError(t, err)

	addrs, err := pc.ConnConfig.LookupFunc(context.Background(), "10.0.0.5")
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.5"}, addrs)

	_, err = pc.ConnConfig.LookupFunc(context.Background(), "::1")
	assert.Error(t, err)
}

func TestIPv4Lookup_FallbackOpcional(t *testing.T) {
	assert.Len(t, newIPv4Lookup("").resolvers, 1)
	assert.Len(t, newIPv4Lookup("1.1.1.1:53").resolvers, 2)
}
