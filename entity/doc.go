// Package entity holds the Review and Employee domain types, their field
// rules and the bun row models they are persisted through.
package entity
