package config

import (
	"errors"
)

// ErrInvalidField is returned when a config value fails validation.
var ErrInvalidField = errors.New("toml config field is invalid")
