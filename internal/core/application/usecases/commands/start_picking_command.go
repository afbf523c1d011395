package commands

import (
	"errors"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/errs"
	"picking/internal/pkg/guard"
)

var ErrStartPickingCommandIsNotConstructed = errors.New(
	"StartPickingCommand must be created via NewStartPickingCommand constructor",
)

// StartPickingCommand represents a worker's request to start picking a list.
type StartPickingCommand struct { //nolint:recvcheck //using for validation
	listID kernel.UUID
	worker string

	guard guard.ConstructorGuard
}

// NewStartPickingCommand creates a command to start picking a list.
func NewStartPickingCommand(listID kernel.UUID, worker string) (StartPickingCommand, error) {
	command := StartPickingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setListID(listID),
		command.setWorker(worker),
	); err != nil {
		return StartPickingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPickingCommand) Validate() error {
	return c.guard.Validate(ErrStartPickingCommandIsNotConstructed)
}

// ListID returns the identifier of the list to start.
func (c StartPickingCommand) ListID() kernel.UUID {
	return c.listID
}

// Worker returns the worker starting the pick.
func (c StartPickingCommand) Worker() string {
	return c.worker
}

func (c *StartPickingCommand) setListID(listID kernel.UUID) error {
	if err := listID.Validate(); err != nil {
		return err
	}

	c.listID = listID
	return nil
}

func (c *StartPickingCommand) setWorker(worker string) error {
	if worker == "" {
		return errs.NewValueIsRequiredError("worker")
	}

	c.worker = worker
	return nil
}
