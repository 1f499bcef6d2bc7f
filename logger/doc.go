// Package logger provides structured logging for collate components
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration via COLLATE_LOG_* environment variables, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	COLLATE_LOG_LEVEL=debug
//	COLLATE_LOG_FORMAT=json
//
// # Usage
//
//	log := logger.NewFromEnv("collate").WithComponent("runner")
//	log.Info("run finished", logger.Fields(logger.FieldVisited, 42))
package logger
