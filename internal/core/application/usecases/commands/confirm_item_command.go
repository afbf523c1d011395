package commands

import (
	"errors"
	"fmt"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/errs"
	"picking/internal/pkg/guard"
)

var ErrConfirmItemCommandIsNotConstructed = errors.New(
	"ConfirmItemCommand must be created via NewConfirmItemCommand constructor",
)

// ConfirmItemCommand represents a worker's confirmation of a picked item:
// the quantity actually retrieved, an optional scanned barcode, and who picked.
type ConfirmItemCommand struct { //nolint:recvcheck //using for validation
	listID      kernel.UUID
	itemID      kernel.UUID
	pickedQty   int
	barcodeScan string
	confirmedBy string

	guard guard.ConstructorGuard
}

// NewConfirmItemCommand creates a command to confirm a picked item.
// barcodeScan is optional; when present it is checked against the item's SKU.
func NewConfirmItemCommand(
	listID kernel.UUID,
	itemID kernel.UUID,
	pickedQty int,
	barcodeScan string,
	confirmedBy string,
) (ConfirmItemCommand, error) {
	command := ConfirmItemCommand{
		barcodeScan: barcodeScan,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setListID(listID),
		command.setItemID(itemID),
		command.setPickedQty(pickedQty),
		command.setConfirmedBy(confirmedBy),
	); err != nil {
		return ConfirmItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmItemCommand) Validate() error {
	return c.guard.Validate(ErrConfirmItemCommandIsNotConstructed)
}

// ListID returns the identifier of the owning list.
func (c ConfirmItemCommand) ListID() kernel.UUID {
	return c.listID
}

// ItemID returns the identifier of the item to confirm.
func (c ConfirmItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// PickedQty returns the quantity the worker retrieved.
func (c ConfirmItemCommand) PickedQty() int {
	return c.pickedQty
}

// BarcodeScan returns the optionally scanned product code, or "" for none.
func (c ConfirmItemCommand) BarcodeScan() string {
	return c.barcodeScan
}

// ConfirmedBy returns the confirming worker.
func (c ConfirmItemCommand) ConfirmedBy() string {
	return c.confirmedBy
}

func (c *ConfirmItemCommand) setListID(listID kernel.UUID) error {
	if err := listID.Validate(); err != nil {
		return err
	}

	c.listID = listID
	return nil
}

func (c *ConfirmItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *ConfirmItemCommand) setPickedQty(pickedQty int) error {
	if pickedQty < 0 {
		return errs.NewValueIsInvalidErrorWithCause("pickedQty",
			fmt.Errorf("%d is not greater than or equal to 0", pickedQty))
	}

	c.pickedQty = pickedQty
	return nil
}

func (c *ConfirmItemCommand) setConfirmedBy(confirmedBy string) error {
	if confirmedBy == "" {
		return errs.NewValueIsRequiredError("confirmedBy")
	}

	c.confirmedBy = confirmedBy
	return nil
}
