package database

import (
	"strconv"
	"strings"

	"github.com/rkm/rkm-eod/internal/config"
)

// BuildConnString builds a libpq keyword/value connection string from config.
// Password and connect_timeout are only emitted when set so that pgx can fall
// back to PGPASSWORD and .pgpass.
func BuildConnString(cfg config.DBConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = config.DefaultDBSSLMode
	}

	port := cfg.Port
	if port == 0 {
		port = config.DefaultDBPort
	}

	parts := []string{
		"host=" + quoteValue(cfg.Host),
		"port=" + strconv.Itoa(port),
		"dbname=" + quoteValue(cfg.Name),
		"user=" + quoteValue(cfg.User),
	}
	if cfg.Password != "" {
		parts = append(parts, "password="+quoteValue(cfg.Password))
	}
	parts = append(parts, "sslmode="+quoteValue(sslMode))
	if cfg.ConnectTimeout > 0 {
		parts = append(parts, "connect_timeout="+strconv.Itoa(cfg.ConnectTimeout))
	}

	return strings.Join(parts, " ")
}

// quoteValue single-quotes a value when libpq would otherwise misparse it.
func quoteValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v)
	return "'" + escaped + "'"
}
