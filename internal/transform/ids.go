package transform

import "github.com/google/uuid"

// DefaultIDGenerator produces a random UUID string. Collisions within one
// document are practically impossible, which is the only uniqueness contract
// the output schema asks for.
func DefaultIDGenerator() string {
	return uuid.NewString()
}
