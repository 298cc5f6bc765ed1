// Package database provides configuration loading, the single shared
// connection manager, query hooks (logging, metrics, tracing), SQL error
// classification and idempotent schema management built on top of Bun.
package database
