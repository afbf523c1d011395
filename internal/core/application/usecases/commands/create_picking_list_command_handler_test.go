package commands_test

import (
	"testing"

	"picking/internal/core/application/usecases/commands"
	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/core/domain/services"
	"picking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, zone kernel.Zone, aisle, shelf int) kernel.Location {
	t.Helper()
	location, err := kernel.NewLocation(zone, aisle, shelf)
	require.NoError(t, err)
	return location
}

func TestCreatePickingListCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	listID := kernel.NewUUID()
	cmd, err := commands.NewCreatePickingListCommand(
		listID, "WH-1", pickinglist.TypeSingle, 1, validOrders(), nil, "")
	require.NoError(t, err)

	resolver := new(MockLocationResolver)
	resolver.On("Resolve", ctx, "WH-1", "SKU-001").Return(mustLocation(t, 'A', 1, 1), nil).Once()
	resolver.On("Resolve", ctx, "WH-1", "SKU-002").Return(mustLocation(t, 'B', 2, 1), nil).Once()

	repo := new(MockPickingListRepository)
	uow := new(MockPickingListUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickingListRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(list *pickinglist.PickingList) bool {
			if !list.ID().IsEqual(listID) || list.Status() != pickinglist.Created {
				return false
			}
			items := list.Items()
			return len(items) == 2 &&
				items[0].SequenceNumber() == 1 &&
				items[1].SequenceNumber() == 2
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickingListUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePickingListCommandHandler(factory, resolver, services.NewRouteOptimizer())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	resolver.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreatePickingListCommandHandler_Handle_AssignTo(t *testing.T) {
	ctx := t.Context()
	listID := kernel.NewUUID()
	cmd, err := commands.NewCreatePickingListCommand(
		listID, "WH-1", pickinglist.TypeSingle, 1, validOrders(), nil, "worker-1")
	require.NoError(t, err)

	resolver := new(MockLocationResolver)
	resolver.On("Resolve", ctx, "WH-1", mock.Anything).Return(mustLocation(t, 'A', 1, 1), nil)

	repo := new(MockPickingListRepository)
	uow := new(MockPickingListUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickingListRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(list *pickinglist.PickingList) bool {
			return list.Status() == pickinglist.Assigned && list.AssignedTo() == "worker-1"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickingListUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePickingListCommandHandler(factory, resolver, services.NewRouteOptimizer())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePickingListCommandHandler_Handle_LocationUnresolved(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePickingListCommand(
		kernel.NewUUID(), "WH-1", pickinglist.TypeSingle, 1, validOrders(), nil, "")
	require.NoError(t, err)

	resolver := new(MockLocationResolver)
	resolver.On("Resolve", ctx, "WH-1", "SKU-001").
		Return(kernel.Location{}, errs.NewLocationUnresolvedError("SKU-001", "WH-1")).Once()

	factory := new(MockPickingListUoWFactory)

	h := commands.NewCreatePickingListCommandHandler(factory, resolver, services.NewRouteOptimizer())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrLocationUnresolved)
	factory.AssertNotCalled(t, "Create")
}

func TestCreatePickingListCommandHandler_Handle_WaveZoneFiltering(t *testing.T) {
	ctx := t.Context()
	orders := []commands.OrderToPick{
		{
			OrderNumber: "ORD-1001",
			Lines:       []commands.OrderLineToPick{{SKU: "SKU-001", Quantity: 1}},
		},
		{
			OrderNumber: "ORD-1002",
			Lines:       []commands.OrderLineToPick{{SKU: "SKU-002", Quantity: 1}},
		},
	}
	cmd, err := commands.NewCreatePickingListCommand(
		kernel.NewUUID(), "WH-1", pickinglist.TypeWave, 1, orders, []kernel.Zone{'A'}, "")
	require.NoError(t, err)

	resolver := new(MockLocationResolver)
	resolver.On("Resolve", ctx, "WH-1", "SKU-001").Return(mustLocation(t, 'A', 1, 1), nil).Once()
	resolver.On("Resolve", ctx, "WH-1", "SKU-002").Return(mustLocation(t, 'C', 1, 1), nil).Once()

	repo := new(MockPickingListRepository)
	uow := new(MockPickingListUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PickingListRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(list *pickinglist.PickingList) bool {
			items := list.Items()
			return len(items) == 1 && items[0].SKU() == "SKU-001"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPickingListUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePickingListCommandHandler(factory, resolver, services.NewRouteOptimizer())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreatePickingListCommandHandler_Handle_AllItemsFilteredOut(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePickingListCommand(
		kernel.NewUUID(), "WH-1", pickinglist.TypeWave, 1, validOrders(), []kernel.Zone{'Z'}, "")
	require.NoError(t, err)

	resolver := new(MockLocationResolver)
	resolver.On("Resolve", ctx, "WH-1", mock.Anything).Return(mustLocation(t, 'A', 1, 1), nil)

	factory := new(MockPickingListUoWFactory)

	h := commands.NewCreatePickingListCommandHandler(factory, resolver, services.NewRouteOptimizer())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestCreatePickingListCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.CreatePickingListCommand // not constructed properly

	h := commands.NewCreatePickingListCommandHandler(
		new(MockPickingListUoWFactory), new(MockLocationResolver), services.NewRouteOptimizer())
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreatePickingListCommandIsNotConstructed)
}
