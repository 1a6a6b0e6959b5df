// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is a registered account. It is created once by registration and never
// updated afterwards.
type User struct {
	UserID       string // Opaque identifier handed to clients; doubles as their credential.
	Username     string // Unique across all users, case-sensitive.
	Email        string // Unique across all users; the login identifier.
	PasswordHash string // bcrypt hash; the plaintext is never stored.
}
