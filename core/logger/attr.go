// Package logger provides slog attribute helpers shared by the enrichment
// components. Helpers return an empty Attr for zero inputs, so call sites
// never need nil checks.
package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID creates an attribute for the user identifier claim value.
func UserID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("user_id", id)
}

// TenantKey creates an attribute for the resolved tenant key.
func TenantKey(key string) slog.Attr {
	if key == "" {
		return slog.Attr{}
	}
	return slog.String("tenant_key", key)
}

// Scheme creates an attribute for the credential authentication scheme.
func Scheme(scheme string) slog.Attr {
	if scheme == "" {
		return slog.Attr{}
	}
	return slog.String("scheme", scheme)
}

// Component creates an attribute identifying the emitting component.
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}
