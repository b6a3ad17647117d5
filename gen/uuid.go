package gen

import (
	"github.com/gofrs/uuid"

	"github.com/qz267/junit-quickcheck/generator"
	"github.com/qz267/junit-quickcheck/random"
)

// UUID generates RFC 4122 version 4 UUIDs from the generation source, so
// that identical seeds produce identical identifiers.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate implements generator.Generator.
func (g *UUID) Generate(src *random.Source, status generator.Status) (any, error) {
	b := src.Bytes(uuid.Size)
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // RFC 4122 variant
	return uuid.FromBytes(b)
}
