package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// Fields carries structured context attached to a log entry.
type Fields map[string]interface{}

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	logger.Info().Fields(map[string]interface{}(fields)).Msg(msg)
}

// Warn logs a warning with optional fields.
func Warn(msg string, fields Fields) {
	logger.Warn().Fields(map[string]interface{}(fields)).Msg(msg)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	logger.Error().Err(err).Fields(map[string]interface{}(fields)).Msg(msg)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	logger.Fatal().Err(err).Fields(map[string]interface{}(fields)).Msg(msg)
}
