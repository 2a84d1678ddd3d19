// Package store defines the persistence interfaces and error taxonomy for
// the application. Concrete implementations live under internal/platform.
package store
