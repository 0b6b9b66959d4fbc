package postgres

import (
	"context"
	"fmt"
	"net"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/terrafoods-ems/internal/domain"
	"github.com/jhoicas/terrafoods-ems/pkg/config"
)

// NewPool crea el pool de conexiones PostgreSQL y verifica que el servidor responde.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := poolConfigFrom(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return pool, nil
}

// poolConfigFrom traduce DBConfig a la configuración de pgxpool sin abrir conexiones.
func poolConfigFrom(cfg config.DBConfig) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	// El hostname se conserva en la config (TLS lo necesita); solo cambia la resolución.
	if cfg.ForceIPv4 {
		poolConfig.ConnConfig.LookupFunc = newIPv4Lookup(cfg.FallbackDNS).lookup
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// NUMERIC -> shopspring/decimal en todas las conexiones del pool.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	return poolConfig, nil
}

// ipv4Lookup resuelve hosts solo a registros A, probando los resolvers en orden.
type ipv4Lookup struct {
	resolvers []*net.Resolver
}

func newIPv4Lookup(fallbackDNS string) *ipv4Lookup {
	l := &ipv4Lookup{resolvers: []*net.Resolver{net.DefaultResolver}}
	if fallbackDNS != "" {
		l.resolvers = append(l.resolvers, &net.Resolver{
			PreferGo: true,
			Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "udp", fallbackDNS)
			},
		})
	}
	return l
}

func (l *ipv4Lookup) lookup(ctx context.Context, host string) ([]string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() == nil {
			return nil, fmt.Errorf("%s es IPv6 y DB_FORCE_IPV4 está activo", host)
		}
		return []string{host}, nil
	}

	lastErr := fmt.Errorf("%s sin registros A", host)
	for _, r := range l.resolvers {
		ips, err := r.LookupIP(ctx, "ip4", host)
		if err != nil {
			lastErr = err
			continue
		}
		addrs := make([]string, 0, len(ips))
		for _, ip := range ips {
			if ip.To4() != nil {
				addrs = append(addrs, ip.String())
			}
		}
		if len(addrs) > 0 {
			return addrs, nil
		}
	}
	return nil, lastErr
}
