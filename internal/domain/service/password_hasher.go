// Package service declares the stateless capabilities the usecases depend on.
package service

// PasswordHasher turns registration passwords into stored hashes and checks
// login attempts against them. Plaintext never reaches the Record Store.
type PasswordHasher interface {
	// Hash returns a salted hash; hashing the same password twice gives different results.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
