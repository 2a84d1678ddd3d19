// Package config defines the application configuration and loads it from
// the environment. Configuration is read once at startup and treated as
// immutable afterwards; missing database parameters fail fast here rather
// than surfacing later as per-request storage errors.
package config
