package drafts

import "github.com/google/uuid"

// IDGenerator hands out ids for new draft entities.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is the production generator.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
