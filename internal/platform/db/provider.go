package db

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Provider supplies live database connections on demand and owns the
// connection parameters. Each Acquire opens a fresh physical connection and
// the caller is responsible for closing it; there is no pooling or retry on
// this path. One Provider is constructed at startup and passed to the
// repositories.
type Provider struct {
	dsn    string
	logger zerolog.Logger

	once   sync.Once
	cfg    *pgx.ConnConfig
	cfgErr error
}

func NewProvider(dsn string, logger zerolog.Logger) *Provider {
	return &Provider{dsn: dsn, logger: logger}
}

// Acquire opens a new connection. The DSN is parsed once, lazily; the parse
// is the only state that needs guarding since every call beyond it opens its
// own connection.
func (p *Provider) Acquire(ctx context.Context) (*pgx.Conn, error) {
	p.once.Do(func() {
		p.cfg, p.cfgErr = pgx.ParseConfig(p.dsn)
	})
	if p.cfgErr != nil {
		return nil, AccessError("parse database url", p.cfgErr)
	}

	conn, err := pgx.ConnectConfig(ctx, p.cfg)
	if err != nil {
		p.logger.Error().Err(err).Msg("database connection failed")
		return nil, AccessError("connect to database", err)
	}
	p.logger.Debug().Msg("database connection established")
	return conn, nil
}

// Health opens a connection and pings the database. Used by the liveness
// endpoint.
func (p *Provider) Health(ctx context.Context) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if err := conn.Ping(ctx); err != nil {
		return AccessError("ping database", err)
	}
	return nil
}
