// Package postgres implements the store interfaces against a PostgreSQL
// backend using the pgx driver through the standard database/sql interface.
// Every operation executes exactly one statement; connections are drawn from
// the pool per call and released on all exit paths.
package postgres
