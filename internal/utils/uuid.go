package utils

import "github.com/google/uuid"

// IDGenerator produces unique string identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator returns time-ordered UUIDv7 strings, falling back to v4.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether s parses as a UUID.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
