package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/core/domain/model/pickinglist"
	"picking/internal/core/domain/services"
	"picking/internal/core/ports"
	"picking/internal/pkg/errs"
)

// CreatePickingListCommandHandler handles the business logic for picking list
// creation: location resolution, route sequencing and the initial persist.
//
// Creation is all-or-nothing. A SKU without a resolvable location aborts the
// whole command before anything is written, and the list with all of its items
// is persisted in one transaction, so a partially written list is never
// observable.
type CreatePickingListCommandHandler struct {
	uowFactory PickingListUoWFactory
	resolver   ports.LocationResolver
	optimizer  services.RouteOptimizer
}

// NewCreatePickingListCommandHandler creates a handler for picking list
// creation operations.
func NewCreatePickingListCommandHandler(
	uowFactory PickingListUoWFactory,
	resolver ports.LocationResolver,
	optimizer services.RouteOptimizer,
) CreatePickingListCommandHandler {
	return CreatePickingListCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		optimizer:  optimizer,
	}
}

// Handle processes the picking list creation command.
//
// Every order line is resolved to a storage location, wave lists are filtered
// to the requested zones, and the Route Optimizer sequences the result with
// the heuristic matching the picking type (zone-based for wave, nearest
// neighbor otherwise). One PickingItem per route entry is persisted together
// with the list; when assignTo is given the list is stored already assigned.
func (h CreatePickingListCommandHandler) Handle(ctx context.Context, cmd CreatePickingListCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	targets, err := h.resolveTargets(ctx, cmd)
	if err != nil {
		return err
	}

	if cmd.PickingType() == pickinglist.TypeWave {
		targets = filterToZones(targets, cmd.Zones())
	}
	if len(targets) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("orders",
			fmt.Errorf("no order line resolves into the requested zones"))
	}

	algorithm := services.AlgorithmNearestNeighbor
	if cmd.PickingType() == pickinglist.TypeWave {
		algorithm = services.AlgorithmZoneBased
	}

	route, err := h.optimizer.Optimize(targets, services.RouteOptions{Algorithm: algorithm})
	if err != nil {
		return err
	}

	list, err := buildPickingList(cmd, route)
	if err != nil {
		return err
	}

	if cmd.AssignTo() != "" {
		if err = list.Assign(cmd.AssignTo()); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PickingListRepository().Add(ctx, list); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveTargets maps every order line to a pick target with a resolved
// storage location. One PickingItem per order line is kept even when lines of
// different orders share a SKU, preserving the order back-reference for
// pack-out.
func (h CreatePickingListCommandHandler) resolveTargets(
	ctx context.Context, cmd CreatePickingListCommand,
) ([]services.PickTarget, error) {
	targets := make([]services.PickTarget, 0)
	for _, order := range cmd.Orders() {
		for _, line := range order.Lines {
			location, err := h.resolver.Resolve(ctx, cmd.Warehouse(), line.SKU)
			if err != nil {
				return nil, err
			}

			targets = append(targets, services.PickTarget{
				SKU:         line.SKU,
				ProductName: line.ProductName,
				OrderNumber: order.OrderNumber,
				Quantity:    line.Quantity,
				Location:    location,
			})
		}
	}
	return targets, nil
}

// filterToZones drops targets resolved outside the requested zones.
// An empty zone set means no restriction.
func filterToZones(targets []services.PickTarget, zones []kernel.Zone) []services.PickTarget {
	if len(zones) == 0 {
		return targets
	}

	allowed := make(map[kernel.Zone]bool, len(zones))
	for _, zone := range zones {
		allowed[zone] = true
	}

	filtered := make([]services.PickTarget, 0, len(targets))
	for _, target := range targets {
		if allowed[target.Location.Zone()] {
			filtered = append(filtered, target)
		}
	}
	return filtered
}

// buildPickingList materializes the aggregate from the sequenced route,
// one item per route entry with sequence numbers in route order.
func buildPickingList(cmd CreatePickingListCommand, route services.Route) (*pickinglist.PickingList, error) {
	items := make([]*pickinglist.PickingItem, 0, len(route.OrderedItems))
	for i, target := range route.OrderedItems {
		item, err := pickinglist.NewPickingItem(
			kernel.NewUUID(),
			cmd.ListID(),
			target.SKU,
			target.ProductName,
			target.OrderNumber,
			target.Location,
			i+1,
			target.Quantity,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return pickinglist.NewPickingList(
		cmd.ListID(),
		newListNumber(cmd.ListID()),
		cmd.Warehouse(),
		cmd.PickingType(),
		cmd.Priority(),
		route.EstimatedMinutes,
		time.Now().UTC(),
		items,
	)
}

// newListNumber derives the human-readable reference from the list ID,
// e.g. "PL-3F2A91BC".
func newListNumber(listID kernel.UUID) string {
	block := strings.SplitN(listID.String(), "-", 2)[0]
	return "PL-" + strings.ToUpper(block)
}
