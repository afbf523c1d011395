package commands

import (
	"errors"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/errs"
	"picking/internal/pkg/guard"
)

var ErrCompletePickingCommandIsNotConstructed = errors.New(
	"CompletePickingCommand must be created via NewCompletePickingCommand constructor",
)

// CompletePickingCommand represents a worker's request to close a fully
// resolved picking list.
type CompletePickingCommand struct { //nolint:recvcheck //using for validation
	listID kernel.UUID
	worker string

	guard guard.ConstructorGuard
}

// NewCompletePickingCommand creates a command to complete a picking list.
func NewCompletePickingCommand(listID kernel.UUID, worker string) (CompletePickingCommand, error) {
	command := CompletePickingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setListID(listID),
		command.setWorker(worker),
	); err != nil {
		return CompletePickingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePickingCommand) Validate() error {
	return c.guard.Validate(ErrCompletePickingCommandIsNotConstructed)
}

// ListID returns the identifier of the list to complete.
func (c CompletePickingCommand) ListID() kernel.UUID {
	return c.listID
}

// Worker returns the completing worker.
func (c CompletePickingCommand) Worker() string {
	return c.worker
}

func (c *CompletePickingCommand) setListID(listID kernel.UUID) error {
	if err := listID.Validate(); err != nil {
		return err
	}

	c.listID = listID
	return nil
}

func (c *CompletePickingCommand) setWorker(worker string) error {
	if worker == "" {
		return errs.NewValueIsRequiredError("worker")
	}

	c.worker = worker
	return nil
}
