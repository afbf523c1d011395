package commands

import (
	"errors"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/errs"
	"picking/internal/pkg/guard"
)

var ErrAssignListCommandIsNotConstructed = errors.New(
	"AssignListCommand must be created via NewAssignListCommand constructor",
)

// AssignListCommand represents a request to assign a created picking list to
// a worker.
type AssignListCommand struct { //nolint:recvcheck //using for validation
	listID kernel.UUID
	worker string

	guard guard.ConstructorGuard
}

// NewAssignListCommand creates a command to assign a picking list to a worker.
func NewAssignListCommand(listID kernel.UUID, worker string) (AssignListCommand, error) {
	command := AssignListCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setListID(listID),
		command.setWorker(worker),
	); err != nil {
		return AssignListCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignListCommand) Validate() error {
	return c.guard.Validate(ErrAssignListCommandIsNotConstructed)
}

// ListID returns the identifier of the list to assign.
func (c AssignListCommand) ListID() kernel.UUID {
	return c.listID
}

// Worker returns the worker to assign the list to.
func (c AssignListCommand) Worker() string {
	return c.worker
}

func (c *AssignListCommand) setListID(listID kernel.UUID) error {
	if err := listID.Validate(); err != nil {
		return err
	}

	c.listID = listID
	return nil
}

func (c *AssignListCommand) setWorker(worker string) error {
	if worker == "" {
		return errs.NewValueIsRequiredError("worker")
	}

	c.worker = worker
	return nil
}
