// Package extension implements the host side of the plugin system: plugins
// register their lifecycle hooks with an Engine, and the Engine dispatches
// install, upgrade and delete events to them by plugin name.
package extension

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Plugin is implemented by every extension with lifecycle hooks.
type Plugin interface {
	Name() string
	Install(ctx context.Context) error
	Upgrade(ctx context.Context) error
	Delete(ctx context.Context) error
}

// Engine keeps the registered plugins and runs their hooks.
type Engine struct {
	mu      sync.Mutex
	plugins map[string]Plugin
	metrics *Metrics
}

// NewEngine creates an engine; metrics may be nil.
func NewEngine(metrics *Metrics) *Engine {
	return &Engine{
		plugins: make(map[string]Plugin),
		metrics: metrics,
	}
}

// Register adds a plugin under its name.
func (e *Engine) Register(p Plugin) error {
	name := p.Name()
	if name == "" {
		return ErrPluginNameEmpty
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.plugins[name]; ok {
		return ErrPluginAlreadyRegistered
	}

	e.plugins[name] = p

	return nil
}

// Plugins returns the registered plugin names in sorted order.
func (e *Engine) Plugins() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	names := make([]string, 0, len(e.plugins))
	for name := range e.plugins {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Run dispatches event to the named plugin. Lifecycle events are
// serialized. The hook error is returned unmodified.
func (e *Engine) Run(ctx context.Context, event Event, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.plugins[name]
	if !ok {
		return ErrPluginNotFound
	}

	var hook func(context.Context) error

	switch event {
	case EventInstall:
		hook = p.Install
	case EventUpgrade:
		hook = p.Upgrade
	case EventDelete:
		hook = p.Delete
	default:
		return ErrUnknownEvent
	}

	logger := log.With().Str("plugin", name).Stringer("event", event).Logger()
	logger.Debug().Msg("running lifecycle hook")

	start := time.Now()
	err := hook(ctx)
	e.metrics.observe(name, event, err)

	if err != nil {
		logger.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("lifecycle hook failed")
		return err
	}

	logger.Info().Dur("elapsed", time.Since(start)).Msg("lifecycle hook finished")

	return nil
}
