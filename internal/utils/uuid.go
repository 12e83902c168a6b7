package utils

import "github.com/google/uuid"

// UUIDGenerator issues the client-generated identifiers used for intents,
// sessions, artifacts, reflections, and vault entries.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 so identifiers sort by creation,
// falling back to a random v4 if the monotonic source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
