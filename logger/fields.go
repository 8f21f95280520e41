package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across astgen.
const (
	FieldComponent  = "component"
	FieldGenerator  = "generator"
	FieldFile       = "file"
	FieldDecls      = "decls"
	FieldBlocks     = "blocks"
	FieldBytes      = "bytes"
	FieldStamp      = "stamp"
	FieldSource     = "source"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
)

// ComponentLogger returns a named logger for a component.
//
// Example:
//
//	log := logger.ComponentLogger("driver")
//	log.Infow("Generated file", logger.FieldFile, path)
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	genLogger := logger.ChildLogger(base, logger.FieldGenerator, "ast_names")
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
