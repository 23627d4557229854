package extension

import "strings"

// Event is a plugin lifecycle event.
type Event int

// Lifecycle events dispatched by the engine.
const (
	EventInstall Event = iota + 1
	EventUpgrade
	EventDelete
)

// String returns the event name as used on the command line.
func (e Event) String() string {
	switch e {
	case EventInstall:
		return "install"
	case EventUpgrade:
		return "upgrade"
	case EventDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// ParseEvent parses install, upgrade or delete.
func ParseEvent(s string) (Event, error) {
	switch strings.ToLower(s) {
	case "install":
		return EventInstall, nil
	case "upgrade":
		return EventUpgrade, nil
	case "delete", "remove", "uninstall":
		return EventDelete, nil
	default:
		return 0, ErrUnknownEvent
	}
}
