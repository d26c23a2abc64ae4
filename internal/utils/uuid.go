package utils

import "github.com/google/uuid"

// UUIDGenerator produces invocation identifiers. Time-ordered v7 values keep
// log entries of consecutive runs sortable by id.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a v7 UUID, or a random v4 one if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// RunID is a shorthand for a fresh identifier of the current invocation.
func RunID() string {
	return NewUUIDGenerator().Generate()
}
