// Package repository persists reviews and employees through Bun. Reviews are
// resolved through an identity map owned by their repository, so every
// persisted review id maps to exactly one in-memory instance.
package repository
