package idgen

import "github.com/google/uuid"

// Generator produces candidate identifiers and can be mocked for testing
type Generator interface {
	NewID() uuid.UUID
}

// UUIDGenerator implements Generator with random (version 4) UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a fresh random UUID
func (g *UUIDGenerator) NewID() uuid.UUID {
	return uuid.New()
}
