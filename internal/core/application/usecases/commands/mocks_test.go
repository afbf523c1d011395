package commands_test

import (
	"context"
	"time"

	"picking/internal/core/application/usecases/commands"
	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPickingListRepository struct{ mock.Mock }

func (m *MockPickingListRepository) Add(ctx context.Context, aggregate *pickinglist.PickingList) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPickingListRepository) Get(ctx context.Context, id kernel.UUID) (*pickinglist.PickingList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pickinglist.PickingList), args.Error(1)
}

func (m *MockPickingListRepository) UpdateGuarded(
	ctx context.Context, aggregate *pickinglist.PickingList, expectedStatus pickinglist.Status,
) error {
	args := m.Called(ctx, aggregate, expectedStatus)
	return args.Error(0)
}

func (m *MockPickingListRepository) UpdateItemGuarded(ctx context.Context, item *pickinglist.PickingItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockPickingListRepository) GetAllInCreatedStatusBefore(
	ctx context.Context, cutoff time.Time,
) ([]*pickinglist.PickingList, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pickinglist.PickingList), args.Error(1)
}

type MockPickingListUoW struct{ mock.Mock }

func (m *MockPickingListUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickingListUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickingListUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickingListUoW) PickingListRepository() ports.PickingListRepository {
	args := m.Called()
	return args.Get(0).(ports.PickingListRepository)
}

type MockPickingListUoWFactory struct{ mock.Mock }

func (m *MockPickingListUoWFactory) Create() commands.PickingListUoW {
	args := m.Called()
	return args.Get(0).(commands.PickingListUoW)
}

type MockLocationResolver struct{ mock.Mock }

func (m *MockLocationResolver) Resolve(
	ctx context.Context, warehouse string, sku string,
) (kernel.Location, error) {
	args := m.Called(ctx, warehouse, sku)
	return args.Get(0).(kernel.Location), args.Error(1)
}

type MockInventoryNotifier struct{ mock.Mock }

func (m *MockInventoryNotifier) NotifyStockPicked(ctx context.Context, event ports.StockPicked) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
