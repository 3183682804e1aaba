// Package logger provides structured logging for chainkit packages, built on
// zerolog.
//
// It supports console and JSON output, leveled logging, component tagging,
// and a process-wide default logger with package-level convenience functions.
//
// # Usage
//
//	log := logger.NewDefault("chaindemo")
//	log.Info("chain executed", logger.Fields("steps", 3, "duration_ms", 1))
//
// Component-tagged loggers share the parent's configuration:
//
//	chainLog := log.WithComponent("chain")
package logger
