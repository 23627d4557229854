package extension

import "errors"

var (
	// ErrPluginNameEmpty is returned when a plugin without a name is registered.
	ErrPluginNameEmpty = errors.New("plugin name cannot be empty")
	// ErrPluginAlreadyRegistered is returned when a plugin name is registered twice.
	ErrPluginAlreadyRegistered = errors.New("plugin already registered")
	// ErrPluginNotFound is returned when an event targets an unknown plugin.
	ErrPluginNotFound = errors.New("plugin not found")
	// ErrUnknownEvent is returned for lifecycle events the engine does not know.
	ErrUnknownEvent = errors.New("unknown lifecycle event")
)
