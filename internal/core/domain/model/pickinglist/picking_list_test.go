package pickinglist_test

import (
	"fmt"
	"testing"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSequencedItems(t *testing.T, listID kernel.UUID, count int) []*pickinglist.PickingItem {
	t.Helper()
	items := make([]*pickinglist.PickingItem, 0, count)
	for i := 1; i <= count; i++ {
		item, err := pickinglist.NewPickingItem(
			kernel.NewUUID(),
			listID,
			fmt.Sprintf("SKU-%03d", i),
			fmt.Sprintf("Product %d", i),
			"ORD-1001",
			mustLocation(t, 'A', i, 1),
			i,
			2,
		)
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func newCreatedList(t *testing.T, itemCount int) *pickinglist.PickingList {
	t.Helper()
	listID := kernel.NewUUID()
	list, err := pickinglist.NewPickingList(
		listID,
		"PL-3F2A91BC",
		"WH-1",
		pickinglist.TypeSingle,
		pickinglist.Priority(1),
		12.5,
		time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
		newSequencedItems(t, listID, itemCount),
	)
	require.NoError(t, err)
	return list
}

func newInProgressList(t *testing.T, itemCount int, worker string) *pickinglist.PickingList {
	t.Helper()
	list := newCreatedList(t, itemCount)
	require.NoError(t, list.Assign(worker))
	require.NoError(t, list.Start(worker, time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)))
	return list
}

func TestNewPickingList(t *testing.T) {
	t.Run("should create list in created status", func(t *testing.T) {
		list := newCreatedList(t, 3)

		assert.Equal(t, pickinglist.Created, list.Status())
		assert.Equal(t, "PL-3F2A91BC", list.ListNumber())
		assert.Equal(t, "WH-1", list.Warehouse())
		assert.Equal(t, pickinglist.TypeSingle, list.PickingType())
		assert.Empty(t, list.AssignedTo())
		assert.InDelta(t, 12.5, list.EstimatedMinutes(), 0.0001)
		assert.Nil(t, list.ActualMinutes())
		assert.Nil(t, list.StartedAt())
		assert.Nil(t, list.CompletedAt())
		assert.Len(t, list.Items(), 3)
	})

	t.Run("should store items in sequence order regardless of input order", func(t *testing.T) {
		listID := kernel.NewUUID()
		items := newSequencedItems(t, listID, 3)
		shuffled := []*pickinglist.PickingItem{items[2], items[0], items[1]}

		list, err := pickinglist.NewPickingList(
			listID, "PL-0001", "WH-1", pickinglist.TypeBatch, pickinglist.Priority(0),
			5, time.Now(), shuffled)

		require.NoError(t, err)
		stored := list.Items()
		for i, item := range stored {
			assert.Equal(t, i+1, item.SequenceNumber())
		}
	})

	t.Run("should reject empty items", func(t *testing.T) {
		_, err := pickinglist.NewPickingList(
			kernel.NewUUID(), "PL-0001", "WH-1", pickinglist.TypeSingle, pickinglist.Priority(0),
			5, time.Now(), nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject gapped sequence numbers", func(t *testing.T) {
		listID := kernel.NewUUID()
		item1, err := pickinglist.NewPickingItem(
			kernel.NewUUID(), listID, "SKU-001", "Product 1", "ORD-1001",
			mustLocation(t, 'A', 1, 1), 1, 2)
		require.NoError(t, err)
		item3, err := pickinglist.NewPickingItem(
			kernel.NewUUID(), listID, "SKU-003", "Product 3", "ORD-1001",
			mustLocation(t, 'A', 3, 1), 3, 2)
		require.NoError(t, err)

		_, err = pickinglist.NewPickingList(
			kernel.NewUUID(), "PL-0001", "WH-1", pickinglist.TypeSingle, pickinglist.Priority(0),
			5, time.Now(), []*pickinglist.PickingItem{item1, item3})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject duplicated sequence numbers", func(t *testing.T) {
		listID := kernel.NewUUID()
		item1, err := pickinglist.NewPickingItem(
			kernel.NewUUID(), listID, "SKU-001", "Product 1", "ORD-1001",
			mustLocation(t, 'A', 1, 1), 1, 2)
		require.NoError(t, err)
		item2, err := pickinglist.NewPickingItem(
			kernel.NewUUID(), listID, "SKU-002", "Product 2", "ORD-1001",
			mustLocation(t, 'A', 2, 1), 1, 2)
		require.NoError(t, err)

		_, err = pickinglist.NewPickingList(
			kernel.NewUUID(), "PL-0001", "WH-1", pickinglist.TypeSingle, pickinglist.Priority(0),
			5, time.Now(), []*pickinglist.PickingItem{item1, item2})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "sequence number 1 is duplicated")
	})

	t.Run("should reject out of range priority", func(t *testing.T) {
		listID := kernel.NewUUID()

		_, err := pickinglist.NewPickingList(
			listID, "PL-0001", "WH-1", pickinglist.TypeSingle, pickinglist.Priority(4),
			5, time.Now(), newSequencedItems(t, listID, 1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestPickingList_Assign(t *testing.T) {
	t.Run("should assign created list to worker", func(t *testing.T) {
		list := newCreatedList(t, 2)

		err := list.Assign("worker-1")

		require.NoError(t, err)
		assert.Equal(t, pickinglist.Assigned, list.Status())
		assert.Equal(t, "worker-1", list.AssignedTo())
	})

	t.Run("should reject empty worker", func(t *testing.T) {
		list := newCreatedList(t, 2)

		err := list.Assign("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, pickinglist.Created, list.Status())
	})

	t.Run("should reject reassignment of assigned list", func(t *testing.T) {
		list := newCreatedList(t, 2)
		require.NoError(t, list.Assign("worker-1"))

		err := list.Assign("worker-2")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, "worker-1", list.AssignedTo())
	})
}

func TestPickingList_Start(t *testing.T) {
	startTime := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	t.Run("should start assigned list for its assignee", func(t *testing.T) {
		list := newCreatedList(t, 2)
		require.NoError(t, list.Assign("worker-1"))

		err := list.Start("worker-1", startTime)

		require.NoError(t, err)
		assert.Equal(t, pickinglist.InProgress, list.Status())
		require.NotNil(t, list.StartedAt())
		assert.Equal(t, startTime, *list.StartedAt())
	})

	t.Run("should start created list with implicit assignment", func(t *testing.T) {
		list := newCreatedList(t, 2)

		err := list.Start("worker-3", startTime)

		require.NoError(t, err)
		assert.Equal(t, pickinglist.InProgress, list.Status())
		assert.Equal(t, "worker-3", list.AssignedTo())
	})

	t.Run("should reject start by a different worker", func(t *testing.T) {
		list := newCreatedList(t, 2)
		require.NoError(t, list.Assign("worker-1"))

		err := list.Start("worker-2", startTime)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, pickinglist.Assigned, list.Status())
		assert.Contains(t, err.Error(), "list is assigned to worker-1")
	})

	t.Run("should reject start of in progress list", func(t *testing.T) {
		list := newInProgressList(t, 2, "worker-1")

		err := list.Start("worker-1", startTime)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestPickingList_Cancel(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	t.Run("should cancel created list", func(t *testing.T) {
		list := newCreatedList(t, 2)

		err := list.Cancel()

		require.NoError(t, err)
		assert.Equal(t, pickinglist.Cancelled, list.Status())
	})

	t.Run("should cancel assigned list", func(t *testing.T) {
		list := newCreatedList(t, 2)
		require.NoError(t, list.Assign("worker-1"))

		err := list.Cancel()

		require.NoError(t, err)
		assert.Equal(t, pickinglist.Cancelled, list.Status())
	})

	t.Run("should reject cancel of in progress list", func(t *testing.T) {
		list := newInProgressList(t, 2, "worker-1")

		err := list.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, pickinglist.InProgress, list.Status())
	})

	t.Run("should reject cancel of completed list", func(t *testing.T) {
		list := newInProgressList(t, 1, "worker-1")
		item := list.Items()[0]
		_, err := list.ConfirmItem(item.ID(), 2, "", "worker-1", now)
		require.NoError(t, err)
		require.NoError(t, list.Complete("worker-1", now))

		err = list.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, pickinglist.Completed, list.Status())
	})
}

func TestPickingList_ConfirmItem(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

	t.Run("should confirm pending item while in progress", func(t *testing.T) {
		list := newInProgressList(t, 2, "worker-1")
		itemID := list.Items()[0].ID()

		item, err := list.ConfirmItem(itemID, 2, "", "worker-1", now)

		require.NoError(t, err)
		assert.Equal(t, pickinglist.ItemPicked, item.Status())
		assert.Equal(t, 2, item.PickedQty())
	})

	t.Run("should reject confirmation while list is not in progress", func(t *testing.T) {
		list := newCreatedList(t, 2)
		itemID := list.Items()[0].ID()

		_, err := list.ConfirmItem(itemID, 2, "", "worker-1", now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("should reject double confirmation of the same item", func(t *testing.T) {
		list := newInProgressList(t, 2, "worker-1")
		itemID := list.Items()[0].ID()
		_, err := list.ConfirmItem(itemID, 2, "", "worker-1", now)
		require.NoError(t, err)

		_, err = list.ConfirmItem(itemID, 2, "", "worker-1", now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("should reject unknown item", func(t *testing.T) {
		list := newInProgressList(t, 2, "worker-1")

		_, err := list.ConfirmItem(kernel.NewUUID(), 2, "", "worker-1", now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestPickingList_ReportItemIssue(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

	t.Run("should skip pending item while in progress", func(t *testing.T) {
		list := newInProgressList(t, 2, "worker-1")
		itemID := list.Items()[1].ID()

		item, err := list.ReportItemIssue(itemID, pickinglist.IssueWrongLocation, "found cables instead", "worker-1", now)

		require.NoError(t, err)
		assert.Equal(t, pickinglist.ItemSkipped, item.Status())
		assert.Equal(t, pickinglist.IssueWrongLocation, item.IssueType())
	})

	t.Run("should reject issue report while list is not in progress", func(t *testing.T) {
		list := newCreatedList(t, 2)
		itemID := list.Items()[0].ID()

		_, err := list.ReportItemIssue(itemID, pickinglist.IssueDamaged, "", "worker-1", now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestPickingList_Complete(t *testing.T) {
	startTime := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	confirmTime := startTime.Add(10 * time.Minute)

	t.Run("should complete when every item is resolved", func(t *testing.T) {
		list := newInProgressList(t, 2, "worker-1")
		items := list.Items()
		_, err := list.ConfirmItem(items[0].ID(), 2, "", "worker-1", confirmTime)
		require.NoError(t, err)
		_, err = list.ReportItemIssue(items[1].ID(), pickinglist.IssueNotFound, "", "worker-1", confirmTime)
		require.NoError(t, err)

		completeTime := startTime.Add(25 * time.Minute)
		err = list.Complete("worker-1", completeTime)

		require.NoError(t, err)
		assert.Equal(t, pickinglist.Completed, list.Status())
		require.NotNil(t, list.CompletedAt())
		assert.Equal(t, completeTime, *list.CompletedAt())
		require.NotNil(t, list.ActualMinutes())
		assert.Equal(t, 25, *list.ActualMinutes())
	})

	t.Run("should round actual minutes to nearest whole minute", func(t *testing.T) {
		list := newInProgressList(t, 1, "worker-1")
		_, err := list.ConfirmItem(list.Items()[0].ID(), 2, "", "worker-1", confirmTime)
		require.NoError(t, err)

		err = list.Complete("worker-1", startTime.Add(12*time.Minute+40*time.Second))

		require.NoError(t, err)
		require.NotNil(t, list.ActualMinutes())
		assert.Equal(t, 13, *list.ActualMinutes())
	})

	t.Run("should reject completion with pending items", func(t *testing.T) {
		list := newInProgressList(t, 2, "worker-1")
		_, err := list.ConfirmItem(list.Items()[0].ID(), 2, "", "worker-1", confirmTime)
		require.NoError(t, err)

		err = list.Complete("worker-1", confirmTime)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Contains(t, err.Error(), "1 items are still pending")
		assert.Equal(t, pickinglist.InProgress, list.Status())
	})

	t.Run("should reject completion by a different worker", func(t *testing.T) {
		list := newInProgressList(t, 1, "worker-1")
		_, err := list.ConfirmItem(list.Items()[0].ID(), 2, "", "worker-1", confirmTime)
		require.NoError(t, err)

		err = list.Complete("worker-2", confirmTime)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
	})

	t.Run("should reject completion of a created list", func(t *testing.T) {
		list := newCreatedList(t, 1)

		err := list.Complete("worker-1", confirmTime)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestPickingList_NextItem(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

	t.Run("should return the pending item with the lowest sequence", func(t *testing.T) {
		list := newInProgressList(t, 3, "worker-1")

		next := list.NextItem()

		require.NotNil(t, next)
		assert.Equal(t, 1, next.SequenceNumber())
	})

	t.Run("should skip resolved items", func(t *testing.T) {
		list := newInProgressList(t, 3, "worker-1")
		_, err := list.ConfirmItem(list.Items()[0].ID(), 2, "", "worker-1", now)
		require.NoError(t, err)

		next := list.NextItem()

		require.NotNil(t, next)
		assert.Equal(t, 2, next.SequenceNumber())
	})

	t.Run("should return nil when every item is resolved", func(t *testing.T) {
		list := newInProgressList(t, 1, "worker-1")
		_, err := list.ConfirmItem(list.Items()[0].ID(), 2, "", "worker-1", now)
		require.NoError(t, err)

		assert.Nil(t, list.NextItem())
	})
}

func TestPickingList_Progress(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

	t.Run("should report zero progress on a fresh list", func(t *testing.T) {
		list := newCreatedList(t, 4)

		progress := list.Progress()

		assert.Equal(t, pickinglist.Progress{Total: 4, Completed: 0, Remaining: 4, Percentage: 0}, progress)
	})

	t.Run("should count every non-pending item as completed", func(t *testing.T) {
		list := newInProgressList(t, 4, "worker-1")
		items := list.Items()
		_, err := list.ConfirmItem(items[0].ID(), 2, "", "worker-1", now)
		require.NoError(t, err)
		_, err = list.ConfirmItem(items[1].ID(), 1, "", "worker-1", now)
		require.NoError(t, err)
		_, err = list.ReportItemIssue(items[2].ID(), pickinglist.IssueDamaged, "", "worker-1", now)
		require.NoError(t, err)

		progress := list.Progress()

		assert.Equal(t, pickinglist.Progress{Total: 4, Completed: 3, Remaining: 1, Percentage: 75}, progress)
	})

	t.Run("should round the percentage", func(t *testing.T) {
		list := newInProgressList(t, 3, "worker-1")
		_, err := list.ConfirmItem(list.Items()[0].ID(), 2, "", "worker-1", now)
		require.NoError(t, err)

		progress := list.Progress()

		assert.Equal(t, 33, progress.Percentage)
	})
}

func TestRestorePickingList(t *testing.T) {
	startTime := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	t.Run("should restore in progress list", func(t *testing.T) {
		listID := kernel.NewUUID()

		list, err := pickinglist.RestorePickingList(
			listID, "PL-0001", "WH-1", pickinglist.TypeWave, pickinglist.Priority(2),
			pickinglist.InProgress, "worker-1", 8.2, nil, &startTime, nil,
			startTime.Add(-time.Hour), newSequencedItems(t, listID, 2))

		require.NoError(t, err)
		assert.Equal(t, pickinglist.InProgress, list.Status())
		assert.Equal(t, "worker-1", list.AssignedTo())
		assert.Equal(t, pickinglist.TypeWave, list.PickingType())
	})

	t.Run("should reject assigned status without a worker", func(t *testing.T) {
		listID := kernel.NewUUID()

		_, err := pickinglist.RestorePickingList(
			listID, "PL-0001", "WH-1", pickinglist.TypeSingle, pickinglist.Priority(0),
			pickinglist.Assigned, "", 8.2, nil, nil, nil,
			startTime, newSequencedItems(t, listID, 1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "requires an assigned worker")
	})

	t.Run("should reject unknown stored status", func(t *testing.T) {
		listID := kernel.NewUUID()

		_, err := pickinglist.RestorePickingList(
			listID, "PL-0001", "WH-1", pickinglist.TypeSingle, pickinglist.Priority(0),
			pickinglist.Unknown, "", 8.2, nil, nil, nil,
			startTime, newSequencedItems(t, listID, 1))

		require.Error(t, err)
	})
}

func TestPickingList_Validate(t *testing.T) {
	t.Run("should reject list not created via constructor", func(t *testing.T) {
		var list pickinglist.PickingList

		err := list.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, pickinglist.ErrPickingListIsNotConstructed)
	})
}
