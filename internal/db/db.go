// Package db opens the gorm connection for the configured engine.
package db

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/uefisettings/uefisettings/internal/config"
	"github.com/uefisettings/uefisettings/internal/db/dsn"
	gormadapter "github.com/uefisettings/uefisettings/internal/logger/adapter/gorm"
	"github.com/uefisettings/uefisettings/internal/plugin/uefisettings"
)

// ErrUnsupportedEngine is returned when DB.GormEngine names no known driver.
var ErrUnsupportedEngine = errors.New("unsupported gorm engine")

// Dialector returns the gorm dialector and sql dialect for the configuration.
func Dialector(cfg *config.Config) (gorm.Dialector, uefisettings.Dialect, error) {
	dialect, err := uefisettings.ParseDialect(cfg.DB.GormEngine)
	if err != nil {
		return nil, "", errors.Wrap(ErrUnsupportedEngine, cfg.DB.GormEngine)
	}

	switch dialect {
	case uefisettings.DialectMySQL:
		return gormmysql.Open(dsn.Create(cfg)), dialect, nil
	case uefisettings.DialectPostgres:
		return postgres.Open(dsn.CreatePostgres(cfg)), dialect, nil
	default:
		return sqlite.Open(cfg.DB.Name), dialect, nil
	}
}

// Open connects to the configured database.
func Open(cfg *config.Config) (*gorm.DB, uefisettings.Dialect, error) {
	dialector, dialect, err := Dialector(cfg)
	if err != nil {
		return nil, "", err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormadapter.New(cfg.Log.SQL),
	})
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to connect %s database", dialect)
	}

	// sqlite allows one writer, and an in-memory database lives in a single connection
	if dialect == uefisettings.DialectSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to get sql connection pool")
		}

		sqlDB.SetMaxOpenConns(1)
	}

	return db, dialect, nil
}
