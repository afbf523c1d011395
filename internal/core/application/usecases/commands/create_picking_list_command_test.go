package commands_test

import (
	"testing"

	"picking/internal/core/application/usecases/commands"
	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrders() []commands.OrderToPick {
	return []commands.OrderToPick{
		{
			OrderNumber: "ORD-1001",
			Lines: []commands.OrderLineToPick{
				{SKU: "SKU-001", ProductName: "Wireless Mouse", Quantity: 2},
				{SKU: "SKU-002", ProductName: "USB Cable", Quantity: 1},
			},
		},
	}
}

func TestNewCreatePickingListCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		listID := kernel.NewUUID()

		cmd, err := commands.NewCreatePickingListCommand(
			listID, "WH-1", pickinglist.TypeSingle, 1, validOrders(), nil, "worker-1")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.ListID().IsEqual(listID))
		assert.Equal(t, "WH-1", cmd.Warehouse())
		assert.Equal(t, pickinglist.TypeSingle, cmd.PickingType())
		assert.Equal(t, "worker-1", cmd.AssignTo())
	})

	t.Run("should reject empty warehouse", func(t *testing.T) {
		_, err := commands.NewCreatePickingListCommand(
			kernel.NewUUID(), "", pickinglist.TypeSingle, 1, validOrders(), nil, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid picking type", func(t *testing.T) {
		_, err := commands.NewCreatePickingListCommand(
			kernel.NewUUID(), "WH-1", pickinglist.TypeUnknown, 1, validOrders(), nil, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range priority", func(t *testing.T) {
		_, err := commands.NewCreatePickingListCommand(
			kernel.NewUUID(), "WH-1", pickinglist.TypeSingle, 4, validOrders(), nil, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject empty order set", func(t *testing.T) {
		_, err := commands.NewCreatePickingListCommand(
			kernel.NewUUID(), "WH-1", pickinglist.TypeSingle, 1, nil, nil, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject order without lines", func(t *testing.T) {
		orders := []commands.OrderToPick{{OrderNumber: "ORD-1001"}}

		_, err := commands.NewCreatePickingListCommand(
			kernel.NewUUID(), "WH-1", pickinglist.TypeSingle, 1, orders, nil, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "ORD-1001 has no line items")
	})

	t.Run("should reject non-positive line quantity", func(t *testing.T) {
		orders := []commands.OrderToPick{
			{
				OrderNumber: "ORD-1001",
				Lines:       []commands.OrderLineToPick{{SKU: "SKU-001", Quantity: 0}},
			},
		}

		_, err := commands.NewCreatePickingListCommand(
			kernel.NewUUID(), "WH-1", pickinglist.TypeSingle, 1, orders, nil, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zone outside A to Z", func(t *testing.T) {
		_, err := commands.NewCreatePickingListCommand(
			kernel.NewUUID(), "WH-1", pickinglist.TypeWave, 1, validOrders(),
			[]kernel.Zone{'a'}, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject not constructed command", func(t *testing.T) {
		var cmd commands.CreatePickingListCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCreatePickingListCommandIsNotConstructed)
	})
}
