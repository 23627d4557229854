// Package sqlexec provides the SQL execution helper handed to plugin hooks.
package sqlexec

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrDBNil is returned when the executor has no database connection.
var ErrDBNil = errors.New("database connection is nil")

// Execer runs a single SQL statement and reports its error unmodified.
type Execer interface {
	Exec(ctx context.Context, statement string) error
}

// Gorm executes statements through a gorm connection.
type Gorm struct {
	db *gorm.DB
}

// New returns an Execer backed by db.
func New(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// Exec implements Execer.
func (g *Gorm) Exec(ctx context.Context, statement string) error {
	if g == nil || g.db == nil {
		return ErrDBNil
	}

	return g.db.WithContext(ctx).Exec(statement).Error
}
