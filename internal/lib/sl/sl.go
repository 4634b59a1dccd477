// Package sl provides small helpers for structured slog attributes.
package sl

import "log/slog"

// Err wraps an error into a slog attribute.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Module tags a logger with the component name that owns it.
func Module(name string) slog.Attr {
	return slog.Attr{
		Key:   "module",
		Value: slog.StringValue(name),
	}
}

// Secret logs a sensitive value in redacted form, keeping only a short prefix.
func Secret(key, value string) slog.Attr {
	const visible = 4
	redacted := value
	if len(redacted) > visible {
		redacted = redacted[:visible] + "..."
	}
	return slog.Attr{
		Key:   key,
		Value: slog.StringValue(redacted),
	}
}
