package config

import (
	"github.com/uefisettings/uefisettings/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	Port         int    `validate:"omitempty,gte=1,lte=65535"` // listening port of the status service, 8080 if unset
	ShutDownTime int    // wait time for shutdown in seconds
	URL          string `validate:"omitempty,url"` // base url of the status service
}
