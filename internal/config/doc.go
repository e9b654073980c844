// Package config loads, normalizes, and validates the registrar TOML
// configuration shared by the daemon and CLI. Paths are expanded to absolute
// form during load so downstream packages never see "~" or relative segments.
package config
