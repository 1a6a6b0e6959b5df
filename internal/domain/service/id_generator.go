package service

// IDGenerator produces globally unique opaque identifiers for users and challenges.
type IDGenerator interface {
	NewID() string
}
