package commands

import (
	"errors"
	"fmt"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/pkg/errs"
	"picking/internal/pkg/guard"
)

var ErrCreatePickingListCommandIsNotConstructed = errors.New(
	"CreatePickingListCommand must be created via NewCreatePickingListCommand constructor",
)

// OrderLineToPick is one line item of a source order: a SKU and a quantity.
type OrderLineToPick struct {
	// SKU identifies the product to pick.
	SKU string
	// ProductName is the optional product display name.
	ProductName string
	// Quantity is the amount to pick (> 0).
	Quantity int
}

// OrderToPick is a source order to consolidate into a picking list.
type OrderToPick struct {
	// OrderNumber is the order reference carried onto every resulting item.
	OrderNumber string
	// Lines are the order's line items.
	Lines []OrderLineToPick
}

// CreatePickingListCommand represents a request to consolidate a set of orders
// into one sequenced picking list. Order-count minimums per picking type
// (single = 1, batch/wave >= 2) are enforced by the router, not re-validated here.
//
// Example:
//
//	listID := kernel.NewUUID()
//	cmd, err := NewCreatePickingListCommand(listID, "WH-1", pickinglist.TypeBatch, 1, orders, nil, "")
//	if err != nil {
//	    return fmt.Errorf("invalid picking list data: %w", err)
//	}
//
//	handler := NewCreatePickingListCommandHandler(uowFactory, resolver, optimizer)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create picking list: %w", err)
//	}
type CreatePickingListCommand struct { //nolint:recvcheck //using for validation
	listID      kernel.UUID
	warehouse   string
	pickingType pickinglist.PickingType
	priority    pickinglist.Priority
	orders      []OrderToPick
	zones       []kernel.Zone
	assignTo    string

	guard guard.ConstructorGuard
}

// NewCreatePickingListCommand creates a command to consolidate orders into a
// picking list. The zones set applies to wave picking only: resolved items
// outside it are dropped from the list. assignTo is optional; when given the
// list is assigned to that worker as part of the same creation.
func NewCreatePickingListCommand(
	listID kernel.UUID,
	warehouse string,
	pickingType pickinglist.PickingType,
	priority pickinglist.Priority,
	orders []OrderToPick,
	zones []kernel.Zone,
	assignTo string,
) (CreatePickingListCommand, error) {
	command := CreatePickingListCommand{
		assignTo: assignTo,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setListID(listID),
		command.setWarehouse(warehouse),
		command.setPickingType(pickingType),
		command.setPriority(priority),
		command.setOrders(orders),
		command.setZones(zones),
	); err != nil {
		return CreatePickingListCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePickingListCommand) Validate() error {
	return c.guard.Validate(ErrCreatePickingListCommandIsNotConstructed)
}

// ListID returns the unique identifier for the list to create.
func (c CreatePickingListCommand) ListID() kernel.UUID {
	return c.listID
}

// Warehouse returns the warehouse the list will be picked in.
func (c CreatePickingListCommand) Warehouse() string {
	return c.warehouse
}

// PickingType returns the consolidation type.
func (c CreatePickingListCommand) PickingType() pickinglist.PickingType {
	return c.pickingType
}

// Priority returns the list priority.
func (c CreatePickingListCommand) Priority() pickinglist.Priority {
	return c.priority
}

// Orders returns the source orders to consolidate.
func (c CreatePickingListCommand) Orders() []OrderToPick {
	return c.orders
}

// Zones returns the wave zone restriction, empty when unrestricted.
func (c CreatePickingListCommand) Zones() []kernel.Zone {
	return c.zones
}

// AssignTo returns the worker to assign the list to, or "" for none.
func (c CreatePickingListCommand) AssignTo() string {
	return c.assignTo
}

func (c *CreatePickingListCommand) setListID(listID kernel.UUID) error {
	if err := listID.Validate(); err != nil {
		return err
	}

	c.listID = listID
	return nil
}

func (c *CreatePickingListCommand) setWarehouse(warehouse string) error {
	if warehouse == "" {
		return errs.NewValueIsRequiredError("warehouse")
	}

	c.warehouse = warehouse
	return nil
}

func (c *CreatePickingListCommand) setPickingType(pickingType pickinglist.PickingType) error {
	if err := pickingType.Validate(); err != nil {
		return err
	}

	c.pickingType = pickingType
	return nil
}

func (c *CreatePickingListCommand) setPriority(priority pickinglist.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreatePickingListCommand) setOrders(orders []OrderToPick) error {
	if len(orders) == 0 {
		return errs.NewValueIsRequiredError("orders")
	}

	for _, order := range orders {
		if order.OrderNumber == "" {
			return errs.NewValueIsRequiredError("orderNumber")
		}
		if len(order.Lines) == 0 {
			return errs.NewValueIsRequiredErrorWithCause("orderLines",
				fmt.Errorf("order %s has no line items", order.OrderNumber))
		}
		for _, line := range order.Lines {
			if line.SKU == "" {
				return errs.NewValueIsRequiredError("sku")
			}
			if line.Quantity <= 0 {
				return errs.NewValueIsInvalidErrorWithCause("quantity",
					fmt.Errorf("%d is not greater than 0", line.Quantity))
			}
		}
	}

	c.orders = orders
	return nil
}

func (c *CreatePickingListCommand) setZones(zones []kernel.Zone) error {
	for _, zone := range zones {
		if zone < kernel.ZoneMin || zone > kernel.ZoneMax {
			return errs.NewValueIsOutOfRangeError("zone",
				string(zone), string(kernel.ZoneMin), string(kernel.ZoneMax))
		}
	}

	c.zones = zones
	return nil
}
