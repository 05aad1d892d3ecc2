package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/rkm/rkm-eod/internal/config"
	"github.com/rkm/rkm-eod/internal/version"
)

// CloseTimeout bounds how long closing a connection may take.
const CloseTimeout = 5 * time.Second

// Connect opens a single connection and verifies it with a ping.
// The caller owns the connection and must close it.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgx.Conn, error) {
	connStr := BuildConnString(cfg)

	connCfg, err := pgx.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	connCfg.RuntimeParams["application_name"] = version.ApplicationName()

	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		Close(conn)
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return conn, nil
}

// Closer is satisfied by *pgx.Conn.
type Closer interface {
	Close(ctx context.Context) error
}

// Close closes conn on a fresh context bounded by CloseTimeout, so a
// cancelled caller context cannot skip the termination message.
func Close(conn Closer) error {
	ctx, cancel := context.WithTimeout(context.Background(), CloseTimeout)
	defer cancel()
	return conn.Close(ctx)
}
