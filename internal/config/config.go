// Package config provides environment configuration helpers for
// go-bracelet commands.
package config

import (
	"os"
	"strconv"
)

// Defaults for the dashboard server and camera source.
const (
	DefaultPort     = "8090"
	DefaultCameraID = 0
)

// Port returns the dashboard port from the PORT env var.
// Falls back to DefaultPort if not set.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return DefaultPort
}

// CameraID returns the capture device index from the CAMERA_ID env var.
// Falls back to DefaultCameraID if not set or unparsable.
func CameraID() int {
	if v := os.Getenv("CAMERA_ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			return id
		}
	}
	return DefaultCameraID
}

// LogLevel returns the log level from the LOG_LEVEL env var.
// Falls back to "info" if not set.
func LogLevel() string {
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return "info"
}
