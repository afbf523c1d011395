package commands

import (
	"errors"
	"fmt"
	"time"

	"picking/internal/pkg/errs"
	"picking/internal/pkg/guard"
)

var ErrCancelStaleListsCommandIsNotConstructed = errors.New(
	"CancelStaleListsCommand must be created via NewCancelStaleListsCommand constructor",
)

// CancelStaleListsCommand represents a request to cancel abandoned picking
// lists: lists still in created status after the given age.
type CancelStaleListsCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleListsCommand creates a command to cancel lists that stayed in
// created status longer than olderThan.
func NewCancelStaleListsCommand(olderThan time.Duration) (CancelStaleListsCommand, error) {
	command := CancelStaleListsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOlderThan(olderThan); err != nil {
		return CancelStaleListsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleListsCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleListsCommandIsNotConstructed)
}

// OlderThan returns the age after which a created list counts as stale.
func (c CancelStaleListsCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *CancelStaleListsCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("olderThan",
			fmt.Errorf("%s is not greater than 0", olderThan))
	}

	c.olderThan = olderThan
	return nil
}
