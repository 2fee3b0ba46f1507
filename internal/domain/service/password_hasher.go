// Package service defines the ports use cases call out through: hashing,
// tokens, payments, storage, push delivery and event publishing.
package service

// PasswordHasher hashes customer passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password produced hash. Malformed hashes never match.
	Check(password, hash string) bool

	// NeedsRehash reports whether hash was made with different parameters than
	// Hash would use today, so it should be replaced after a successful Check.
	NeedsRehash(hash string) bool
}
