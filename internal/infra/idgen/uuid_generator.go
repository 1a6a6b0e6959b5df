// Package idgen generates opaque identifiers for stored records.
package idgen

import (
	"challengehub/internal/domain/service"

	"github.com/google/uuid"
)

type uuidGenerator struct{}

// NewUUIDGenerator returns an IDGenerator producing random (version 4) UUID strings.
func NewUUIDGenerator() service.IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}
