package logger

import (
	"log"
	"os"
)

var std = log.New(os.Stdout, "", log.LstdFlags)

// Init initializes the plain startup logger. Structured request
// logging uses the zerolog logger from structured.go; this one exists
// for boot-time messages before config is loaded.
func Init() {
	std = log.New(os.Stdout, "", log.LstdFlags)
}

// Info logs a formatted informational message
func Info(format string, v ...interface{}) {
	std.Printf("[INFO] "+format, v...)
}

// Error logs a formatted error message
func Error(format string, v ...interface{}) {
	std.Printf("[ERROR] "+format, v...)
}
