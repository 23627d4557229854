// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/uefisettings/uefisettings/internal/config"
)

// Create builds the MySQL Data Source Name from the configuration.
func Create(dbCfg *config.Config) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Host,
		dbCfg.DB.Port,
		dbCfg.DB.Name,
	)

	if dbCfg.DB.Extras != "" {
		out += "?" + dbCfg.DB.Extras
	}

	return out
}

// CreatePostgres builds the PostgreSQL keyword/value connection string.
// Extras are appended verbatim, e.g. "sslmode=disable TimeZone=UTC".
func CreatePostgres(dbCfg *config.Config) string {
	parts := []string{
		"host=" + quote(dbCfg.DB.Host),
		fmt.Sprintf("port=%d", dbCfg.DB.Port),
		"user=" + quote(dbCfg.DB.User),
		"password=" + quote(dbCfg.DB.Password),
		"dbname=" + quote(dbCfg.DB.Name),
	}

	if dbCfg.DB.Extras != "" {
		parts = append(parts, dbCfg.DB.Extras)
	}

	return strings.Join(parts, " ")
}

// quote escapes a libpq keyword value when needed.
func quote(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}

	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)

	return "'" + r.Replace(v) + "'"
}
