// Package uefisettings implements the lifecycle hooks of the uefisettings
// plugin. Install creates the plugin table, Delete drops it and Upgrade is
// reserved for future schema changes.
//
// The hooks do not validate, retry or log. Every error comes from the
// injected executor and is returned as is, so the extension engine sees
// the driver error (for example "table already exists") unchanged.
package uefisettings

import (
	"context"

	"github.com/uefisettings/uefisettings/internal/sqlexec"
)

// Name is the plugin name the extension engine binds the hooks to.
const Name = "uefisettings"

// Plugin holds the hooks and their SQL executor.
type Plugin struct {
	exec    sqlexec.Execer
	dialect Dialect
}

// New returns the plugin hooks bound to exec.
func New(exec sqlexec.Execer, dialect Dialect) *Plugin {
	return &Plugin{exec: exec, dialect: dialect}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return Name
}

// Install creates the uefisettings table. Calling it twice fails.
func (p *Plugin) Install(ctx context.Context) error {
	statement, err := p.dialect.CreateStatement()
	if err != nil {
		return err
	}

	return p.exec.Exec(ctx, statement)
}

// Delete drops the uefisettings table and every row in it.
func (p *Plugin) Delete(ctx context.Context) error {
	return p.exec.Exec(ctx, p.dialect.DropStatement())
}

// Upgrade does nothing yet.
func (p *Plugin) Upgrade(_ context.Context) error {
	return nil
}
