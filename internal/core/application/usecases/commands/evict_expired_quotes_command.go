package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

// EvictExpiredQuotesCommand removes expired entries from the quote cache.
// It is parameterless and normally triggered by the scheduler.
type EvictExpiredQuotesCommand struct {
	guard guard.ConstructorGuard
}

var ErrEvictExpiredQuotesCommandIsNotConstructed = errors.New(
	"EvictExpiredQuotesCommand must be created via NewEvictExpiredQuotesCommand constructor",
)

// NewEvictExpiredQuotesCommand creates an eviction command.
func NewEvictExpiredQuotesCommand() EvictExpiredQuotesCommand {
	return EvictExpiredQuotesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *EvictExpiredQuotesCommand) Validate() error {
	return c.guard.Validate(ErrEvictExpiredQuotesCommandIsNotConstructed)
}
