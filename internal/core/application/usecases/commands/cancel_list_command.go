package commands

import (
	"errors"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/guard"
)

var ErrCancelListCommandIsNotConstructed = errors.New(
	"CancelListCommand must be created via NewCancelListCommand constructor",
)

// CancelListCommand represents a request to withdraw a picking list before
// picking starts.
type CancelListCommand struct { //nolint:recvcheck //using for validation
	listID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelListCommand creates a command to cancel a picking list.
func NewCancelListCommand(listID kernel.UUID) (CancelListCommand, error) {
	command := CancelListCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setListID(listID); err != nil {
		return CancelListCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelListCommand) Validate() error {
	return c.guard.Validate(ErrCancelListCommandIsNotConstructed)
}

// ListID returns the identifier of the list to cancel.
func (c CancelListCommand) ListID() kernel.UUID {
	return c.listID
}

func (c *CancelListCommand) setListID(listID kernel.UUID) error {
	if err := listID.Validate(); err != nil {
		return err
	}

	c.listID = listID
	return nil
}
