// Package config reads service settings.
//
// Keys are dotted paths into the config file, e.g. "app.server.http.address".
// Missing keys read as the zero value of the getter's type.
package config

import (
	"io"
	"time"
)

// Config is the read-only view of the service settings.
type Config interface {
	io.Closer

	GetBool(key string) bool
	GetInt(key string) int
	GetFloat64(key string) float64
	GetString(key string) string

	// GetSecond reads an integer number of seconds.
	GetSecond(key string) time.Duration
	// GetMinute reads an integer number of minutes.
	GetMinute(key string) time.Duration

	// GetArray reads a comma separated list, e.g. "a, b,c". Elements are
	// trimmed and empty elements dropped.
	GetArray(key string) []string
}
