package telemetry

import "fmt"

// Config configures structured logging.
type Config struct {
	// Level sets the minimum log level (trace, debug, info, warn, error).
	Level string

	// Format specifies the log format (console, json).
	Format string

	// Output specifies where logs are written (stdout, stderr).
	Output string
}

// DefaultConfig returns the default logging configuration: human-readable
// console output at info level on stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	switch c.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Level)
	}

	if c.Format != "console" && c.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'console' or 'json')", c.Format)
	}

	if c.Output != "stdout" && c.Output != "stderr" {
		return fmt.Errorf("invalid log output: %s (must be 'stdout' or 'stderr')", c.Output)
	}

	return nil
}
