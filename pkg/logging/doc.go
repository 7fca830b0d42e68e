// Package logging provides structured logging utilities shared by semv components.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// for consistent logging across the library consumers and the CLI. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("semv", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("comparing versions", "left", "1.2.3", "right", "1.2.4")
//	    slog.Error("parse failed", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("semv", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug semv sort 1.0.0 1.0.0-rc.1
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "comparing versions",
//	    "module": "semv",
//	    "version": "v1.0.0",
//	    "left": "1.2.3",
//	    "right": "1.2.4"
//	}
//
// Debug logs additionally include the source location of the call site.
package logging
