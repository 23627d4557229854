// Package daemon wires the database, the extension engine and the status
// service together for the command line.
package daemon

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/uefisettings/uefisettings/internal/config"
	"github.com/uefisettings/uefisettings/internal/db"
	"github.com/uefisettings/uefisettings/internal/db/controller/uefisetting"
	"github.com/uefisettings/uefisettings/internal/extension"
	"github.com/uefisettings/uefisettings/internal/plugin/uefisettings"
	"github.com/uefisettings/uefisettings/internal/sqlexec"
	"github.com/uefisettings/uefisettings/internal/web"
)

// ErrConfigNil is returned when New is called without a configuration.
var ErrConfigNil = errors.New("config is nil")

// Daemon holds the opened database and the engine with all plugins registered.
type Daemon struct {
	cfg    *config.Config
	db     *gorm.DB
	engine *extension.Engine
}

// Status describes the installation state of the uefisettings plugin.
type Status struct {
	Plugins   []string `json:"plugins"`
	Installed bool     `json:"installed"`
	Rows      int64    `json:"rows"`
}

// New opens the database and registers the plugins. Metrics are
// registered with reg; pass nil to skip registration.
func New(cfg *config.Config, reg prometheus.Registerer) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	conn, dialect, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	return NewWithDB(cfg, conn, dialect, reg)
}

// NewWithDB builds the daemon on an already opened connection.
func NewWithDB(cfg *config.Config, conn *gorm.DB, dialect uefisettings.Dialect, reg prometheus.Registerer) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	engine := extension.NewEngine(extension.NewMetrics(reg))

	if err := engine.Register(uefisettings.New(sqlexec.New(conn), dialect)); err != nil {
		return nil, err
	}

	log.Debug().Str("engine", string(dialect)).Strs("plugins", engine.Plugins()).Msg("extension engine ready")

	return &Daemon{
		cfg:    cfg,
		db:     conn,
		engine: engine,
	}, nil
}

// Run dispatches a lifecycle event to the uefisettings plugin.
func (d *Daemon) Run(ctx context.Context, event extension.Event) error {
	return d.engine.Run(ctx, event, uefisettings.Name)
}

// Status reports whether the plugin table exists and how many rows it holds.
func (d *Daemon) Status(ctx context.Context) (Status, error) {
	status := Status{Plugins: d.engine.Plugins()}

	conn := d.db.WithContext(ctx)
	status.Installed = conn.Migrator().HasTable(uefisettings.TableName)

	if !status.Installed {
		return status, nil
	}

	rows, err := uefisetting.Count(conn)
	if err != nil {
		return status, err
	}

	status.Rows = rows

	return status, nil
}

// Serve starts the status web service and blocks until it is shut down.
func (d *Daemon) Serve(gatherer prometheus.Gatherer) error {
	service := web.New(d.cfg, func(ctx context.Context) (any, error) {
		return d.Status(ctx)
	}, gatherer)

	go service.WaitShutdown()

	return service.Start()
}

// Close releases the database connection.
func (d *Daemon) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
