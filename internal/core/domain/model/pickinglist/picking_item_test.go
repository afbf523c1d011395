package pickinglist_test

import (
	"testing"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, zone kernel.Zone, aisle, shelf int) kernel.Location {
	t.Helper()
	location, err := kernel.NewLocation(zone, aisle, shelf)
	require.NoError(t, err)
	return location
}

func newPendingItem(t *testing.T) *pickinglist.PickingItem {
	t.Helper()
	item, err := pickinglist.NewPickingItem(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"SKU-001",
		"Wireless Mouse",
		"ORD-1001",
		mustLocation(t, 'A', 1, 3),
		1,
		5,
	)
	require.NoError(t, err)
	return item
}

func TestNewPickingItem(t *testing.T) {
	t.Run("should create pending item with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		listID := kernel.NewUUID()
		location := mustLocation(t, 'B', 2, 1)

		item, err := pickinglist.NewPickingItem(
			id, listID, "SKU-042", "USB Cable", "ORD-2002", location, 3, 2)

		require.NoError(t, err)
		assert.True(t, item.ID().IsEqual(id))
		assert.True(t, item.ListID().IsEqual(listID))
		assert.Equal(t, "SKU-042", item.SKU())
		assert.Equal(t, "USB Cable", item.ProductName())
		assert.Equal(t, "ORD-2002", item.OrderNumber())
		assert.Equal(t, location, item.Location())
		assert.Equal(t, 3, item.SequenceNumber())
		assert.Equal(t, 2, item.RequiredQty())
		assert.Equal(t, 0, item.PickedQty())
		assert.Equal(t, pickinglist.ItemPending, item.Status())
		assert.True(t, item.IsPending())
		assert.Empty(t, item.ConfirmedBy())
		assert.Nil(t, item.ConfirmedAt())
	})

	t.Run("should reject empty sku", func(t *testing.T) {
		_, err := pickinglist.NewPickingItem(
			kernel.NewUUID(), kernel.NewUUID(), "", "USB Cable", "ORD-2002",
			mustLocation(t, 'A', 1, 1), 1, 2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty order number", func(t *testing.T) {
		_, err := pickinglist.NewPickingItem(
			kernel.NewUUID(), kernel.NewUUID(), "SKU-042", "USB Cable", "",
			mustLocation(t, 'A', 1, 1), 1, 2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed location", func(t *testing.T) {
		_, err := pickinglist.NewPickingItem(
			kernel.NewUUID(), kernel.NewUUID(), "SKU-042", "USB Cable", "ORD-2002",
			kernel.Location{}, 1, 2)

		require.Error(t, err)
	})

	t.Run("should reject sequence number below 1", func(t *testing.T) {
		for _, seq := range []int{0, -1} {
			_, err := pickinglist.NewPickingItem(
				kernel.NewUUID(), kernel.NewUUID(), "SKU-042", "USB Cable", "ORD-2002",
				mustLocation(t, 'A', 1, 1), seq, 2)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject non-positive required quantity", func(t *testing.T) {
		for _, qty := range []int{0, -3} {
			_, err := pickinglist.NewPickingItem(
				kernel.NewUUID(), kernel.NewUUID(), "SKU-042", "USB Cable", "ORD-2002",
				mustLocation(t, 'A', 1, 1), 1, qty)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestPickingItem_Confirm(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("should resolve to picked when full quantity retrieved", func(t *testing.T) {
		item := newPendingItem(t)

		err := item.Confirm(5, "", "worker-1", now)

		require.NoError(t, err)
		assert.Equal(t, pickinglist.ItemPicked, item.Status())
		assert.Equal(t, 5, item.PickedQty())
		assert.Equal(t, "worker-1", item.ConfirmedBy())
		require.NotNil(t, item.ConfirmedAt())
		assert.Equal(t, now, *item.ConfirmedAt())
		assert.False(t, item.IsPending())
	})

	t.Run("should resolve to picked on overpick without clamping", func(t *testing.T) {
		item := newPendingItem(t)

		err := item.Confirm(7, "", "worker-1", now)

		require.NoError(t, err)
		assert.Equal(t, pickinglist.ItemPicked, item.Status())
		assert.Equal(t, 7, item.PickedQty())
	})

	t.Run("should resolve to shortage when less than required", func(t *testing.T) {
		item := newPendingItem(t)

		err := item.Confirm(3, "", "worker-1", now)

		require.NoError(t, err)
		assert.Equal(t, pickinglist.ItemShortage, item.Status())
		assert.Equal(t, 3, item.PickedQty())
	})

	t.Run("should resolve to shortage on zero quantity", func(t *testing.T) {
		item := newPendingItem(t)

		err := item.Confirm(0, "", "worker-1", now)

		require.NoError(t, err)
		assert.Equal(t, pickinglist.ItemShortage, item.Status())
		assert.Equal(t, 0, item.PickedQty())
	})

	t.Run("should accept matching barcode scan", func(t *testing.T) {
		item := newPendingItem(t)

		err := item.Confirm(5, "SKU-001", "worker-1", now)

		require.NoError(t, err)
		assert.Equal(t, pickinglist.ItemPicked, item.Status())
	})

	t.Run("should reject mismatching barcode scan", func(t *testing.T) {
		item := newPendingItem(t)

		err := item.Confirm(5, "SKU-999", "worker-1", now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, item.IsPending(), "failed confirm must leave the item pending")
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		item := newPendingItem(t)

		err := item.Confirm(-1, "", "worker-1", now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, item.IsPending())
	})

	t.Run("should reject empty worker", func(t *testing.T) {
		item := newPendingItem(t)

		err := item.Confirm(5, "", "", now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject double confirmation", func(t *testing.T) {
		item := newPendingItem(t)
		require.NoError(t, item.Confirm(5, "", "worker-1", now))

		err := item.Confirm(5, "", "worker-1", now.Add(time.Second))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, pickinglist.ItemPicked, item.Status())
		assert.Equal(t, now, *item.ConfirmedAt(), "first confirmation must win")
	})

	t.Run("should reject confirmation after reported issue", func(t *testing.T) {
		item := newPendingItem(t)
		require.NoError(t, item.ReportIssue(pickinglist.IssueDamaged, "crushed box", "worker-1", now))

		err := item.Confirm(5, "", "worker-1", now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, pickinglist.ItemSkipped, item.Status())
	})
}

func TestPickingItem_ReportIssue(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("should resolve pending item to skipped", func(t *testing.T) {
		item := newPendingItem(t)

		err := item.ReportIssue(pickinglist.IssueNotFound, "cell is empty", "worker-2", now)

		require.NoError(t, err)
		assert.Equal(t, pickinglist.ItemSkipped, item.Status())
		assert.Equal(t, pickinglist.IssueNotFound, item.IssueType())
		assert.Equal(t, "cell is empty", item.IssueNote())
		assert.Equal(t, "worker-2", item.ConfirmedBy())
		assert.Equal(t, 0, item.PickedQty(), "skipped item must carry no stock movement")
	})

	t.Run("should reject invalid issue type", func(t *testing.T) {
		item := newPendingItem(t)

		err := item.ReportIssue(pickinglist.IssueUnknown, "", "worker-2", now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, item.IsPending())
	})

	t.Run("should reject empty reporter", func(t *testing.T) {
		item := newPendingItem(t)

		err := item.ReportIssue(pickinglist.IssueDamaged, "", "", now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject issue on already resolved item", func(t *testing.T) {
		item := newPendingItem(t)
		require.NoError(t, item.Confirm(5, "", "worker-1", now))

		err := item.ReportIssue(pickinglist.IssueDamaged, "", "worker-1", now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, pickinglist.ItemPicked, item.Status())
	})
}

func TestRestorePickingItem(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("should restore resolved item", func(t *testing.T) {
		item, err := pickinglist.RestorePickingItem(
			kernel.NewUUID(), kernel.NewUUID(), "SKU-001", "Wireless Mouse", "ORD-1001",
			mustLocation(t, 'A', 1, 3), 1, 5, 3,
			pickinglist.ItemShortage, pickinglist.IssueUnknown, "", "worker-1", &now)

		require.NoError(t, err)
		assert.Equal(t, pickinglist.ItemShortage, item.Status())
		assert.Equal(t, 3, item.PickedQty())
		assert.Equal(t, "worker-1", item.ConfirmedBy())
	})

	t.Run("should reject invalid stored status", func(t *testing.T) {
		_, err := pickinglist.RestorePickingItem(
			kernel.NewUUID(), kernel.NewUUID(), "SKU-001", "Wireless Mouse", "ORD-1001",
			mustLocation(t, 'A', 1, 3), 1, 5, 0,
			pickinglist.ItemUnknown, pickinglist.IssueUnknown, "", "", nil)

		require.Error(t, err)
	})

	t.Run("should reject negative stored picked quantity", func(t *testing.T) {
		_, err := pickinglist.RestorePickingItem(
			kernel.NewUUID(), kernel.NewUUID(), "SKU-001", "Wireless Mouse", "ORD-1001",
			mustLocation(t, 'A', 1, 3), 1, 5, -1,
			pickinglist.ItemPending, pickinglist.IssueUnknown, "", "", nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPickingItem_Validate(t *testing.T) {
	t.Run("should reject item not created via constructor", func(t *testing.T) {
		var item pickinglist.PickingItem

		err := item.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, pickinglist.ErrPickingItemIsNotConstructed)
	})
}
