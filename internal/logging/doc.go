// Package logging configures the slog loggers used by the registrar daemon
// and CLI. It exposes a small set of attr helpers so call sites stay uniform,
// plus a no-op logger for tests and optional dependencies.
package logging
