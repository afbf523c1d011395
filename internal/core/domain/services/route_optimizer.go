package services

import (
	"fmt"
	"sort"

	"picking/internal/core/domain/model/kernel"
	"picking/internal/pkg/errs"
)

// Algorithm selects the tour-construction heuristic used by the RouteOptimizer.
type Algorithm string

const (
	// AlgorithmNearestNeighbor builds the tour greedily, repeatedly stepping
	// to the closest unvisited target. O(n²); not globally optimal by design.
	AlgorithmNearestNeighbor Algorithm = "nearest_neighbor"

	// AlgorithmZoneBased visits one warehouse zone at a time, applying
	// nearest-neighbor within each zone. Produces tours with less zig-zag
	// across zones on large, zone-partitioned floors.
	AlgorithmZoneBased Algorithm = "zone_based"
)

// defaultWalkingSpeedMps is the assumed walking speed when the caller does not
// supply one.
const defaultWalkingSpeedMps = 1.0

// PickTarget is an item to be picked: a SKU, a quantity, and the storage
// location to retrieve it from. Targets are produced by order consolidation
// and are read-only to the optimizer.
type PickTarget struct {
	// SKU identifies the product.
	SKU string
	// ProductName is the product display name.
	ProductName string
	// OrderNumber references the source order line.
	OrderNumber string
	// Quantity is the amount to pick.
	Quantity int
	// Location is the storage cell to pick from.
	Location kernel.Location
}

// Route is an ordered tour over a set of pick targets.
type Route struct {
	// OrderedItems are the targets in visiting order.
	OrderedItems []PickTarget
	// TotalDistance is the walking distance over the tour, including the
	// optional start and end legs.
	TotalDistance float64
	// EstimatedMinutes is the travel-plus-pick time estimate, unrounded.
	EstimatedMinutes float64
	// Algorithm is the heuristic that produced the tour.
	Algorithm Algorithm
}

// RouteOptions tune a route calculation. The zero value selects
// nearest-neighbor, no start or end location, the default walking speed,
// and no per-location pick time.
type RouteOptions struct {
	// Algorithm selects the heuristic; empty means nearest_neighbor.
	Algorithm Algorithm
	// StartLocation, when set, is where the worker begins the tour.
	StartLocation *kernel.Location
	// EndLocation, when set, is where the worker must end up (drop-off point).
	EndLocation *kernel.Location
	// WalkingSpeedMps is the walking speed in meters per second.
	// Non-positive values fall back to the 1.0 m/s default; callers must not
	// pass them.
	WalkingSpeedMps float64
	// PickTimeSeconds is the fixed handling time per unique location visited.
	PickTimeSeconds float64
}

// RouteOptimizer sequences pick targets to minimize walking distance.
//
// The optimizer is a stateless, purely functional domain service: it holds no
// mutable state, performs no I/O, and its output is fully determined by its
// input, so it may run on any goroutine without locking.
//
// Example usage:
//
//	optimizer := services.NewRouteOptimizer()
//	route, err := optimizer.Optimize(targets, services.RouteOptions{
//	    Algorithm:     services.AlgorithmZoneBased,
//	    StartLocation: &dock,
//	})
type RouteOptimizer struct{}

// NewRouteOptimizer creates a new RouteOptimizer instance.
func NewRouteOptimizer() RouteOptimizer {
	return RouteOptimizer{}
}

// Optimize orders the given pick targets into a walking tour and estimates its
// distance and duration.
//
// An empty input produces an empty route with zero distance and duration.
// A single target with no start location is a trivial one-element route with
// distance 0. Every target location must be properly constructed; that is the
// only error condition.
func (o RouteOptimizer) Optimize(items []PickTarget, opts RouteOptions) (Route, error) {
	if err := validateTargets(items); err != nil {
		return Route{}, err
	}

	algorithm := opts.Algorithm
	if algorithm == "" {
		algorithm = AlgorithmNearestNeighbor
	}

	if len(items) == 0 {
		return Route{OrderedItems: []PickTarget{}, Algorithm: algorithm}, nil
	}

	var ordered []PickTarget
	switch algorithm {
	case AlgorithmZoneBased:
		ordered = zoneBasedTour(items, opts.StartLocation)
	case AlgorithmNearestNeighbor:
		ordered = nearestNeighborTour(items, opts.StartLocation)
	default:
		return Route{}, errs.NewValueIsInvalidErrorWithCause("algorithm",
			fmt.Errorf("%q is not a supported algorithm", algorithm))
	}

	totalDistance, err := o.CalculateTotalDistance(ordered, opts.StartLocation, opts.EndLocation)
	if err != nil {
		return Route{}, err
	}

	estimated := o.EstimatePickingTime(
		totalDistance, uniqueLocationCount(ordered), opts.WalkingSpeedMps, opts.PickTimeSeconds)

	return Route{
		OrderedItems:     ordered,
		TotalDistance:    totalDistance,
		EstimatedMinutes: estimated,
		Algorithm:        algorithm,
	}, nil
}

// CalculateTotalDistance sums the walking distance over consecutive targets in
// the given order, prepending the start leg and appending the end leg when
// those locations are supplied.
func (o RouteOptimizer) CalculateTotalDistance(
	items []PickTarget, start *kernel.Location, end *kernel.Location,
) (float64, error) {
	if err := validateTargets(items); err != nil {
		return 0, err
	}

	total := 0.0
	if len(items) == 0 {
		if start != nil && end != nil {
			return start.Distance(*end)
		}
		return 0, nil
	}

	if start != nil {
		d, err := start.Distance(items[0].Location)
		if err != nil {
			return 0, err
		}
		total += d
	}

	for i := 1; i < len(items); i++ {
		d, err := items[i-1].Location.Distance(items[i].Location)
		if err != nil {
			return 0, err
		}
		total += d
	}

	if end != nil {
		d, err := items[len(items)-1].Location.Distance(*end)
		if err != nil {
			return 0, err
		}
		total += d
	}

	return total, nil
}

// BuildDistanceMatrix returns the N×N symmetric matrix of pairwise distances
// with a zero diagonal. The matrix feeds analytics and floor-plan
// visualization; the heuristics themselves never materialize it.
func (o RouteOptimizer) BuildDistanceMatrix(locations []kernel.Location) ([][]float64, error) {
	matrix := make([][]float64, len(locations))
	for i := range matrix {
		matrix[i] = make([]float64, len(locations))
	}

	for i := 0; i < len(locations); i++ {
		for j := i + 1; j < len(locations); j++ {
			d, err := locations[i].Distance(locations[j])
			if err != nil {
				return nil, err
			}
			matrix[i][j] = d
			matrix[j][i] = d
		}
	}

	return matrix, nil
}

// EstimatePickingTime converts a tour into a duration estimate in minutes:
// walking time at the given speed plus a fixed handling time per unique
// location visited. The result is unrounded; callers round for display.
func (o RouteOptimizer) EstimatePickingTime(
	totalDistance float64, uniqueLocations int, walkingSpeedMps float64, pickTimeSeconds float64,
) float64 {
	if walkingSpeedMps <= 0 {
		walkingSpeedMps = defaultWalkingSpeedMps
	}

	totalSeconds := totalDistance/walkingSpeedMps + float64(uniqueLocations)*pickTimeSeconds
	return totalSeconds / 60
}

// nearestNeighborTour builds the tour greedily from the start location, or
// from the first target when no start is given (that target is then placed
// first). Ties break by input order, keeping the heuristic stable.
func nearestNeighborTour(items []PickTarget, start *kernel.Location) []PickTarget {
	remaining := make([]PickTarget, len(items))
	copy(remaining, items)

	ordered := make([]PickTarget, 0, len(items))

	var current kernel.Location
	if start != nil {
		current = *start
	} else {
		ordered = append(ordered, remaining[0])
		current = remaining[0].Location
		remaining = remaining[1:]
	}

	for len(remaining) > 0 {
		best := 0
		bestDistance, _ := current.Distance(remaining[0].Location)
		for idx := 1; idx < len(remaining); idx++ {
			// Strict less-than keeps the earliest candidate on ties.
			if d, _ := current.Distance(remaining[idx].Location); d < bestDistance {
				best = idx
				bestDistance = d
			}
		}

		ordered = append(ordered, remaining[best])
		current = remaining[best].Location
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return ordered
}

// zoneBasedTour visits one zone at a time: zones are ordered by distance from
// the start location's zone when a start is given, otherwise alphabetically
// starting from the first target's zone. Within each zone, nearest-neighbor
// runs on that zone's subset only, with the running position carried across
// zone boundaries.
func zoneBasedTour(items []PickTarget, start *kernel.Location) []PickTarget {
	zones := make([]kernel.Zone, 0)
	seen := make(map[kernel.Zone]bool)
	for _, item := range items {
		if zone := item.Location.Zone(); !seen[zone] {
			seen[zone] = true
			zones = append(zones, zone)
		}
	}

	sort.Slice(zones, func(i, j int) bool { return zones[i] < zones[j] })
	if start != nil {
		startIndex := start.ZoneIndex()
		sort.SliceStable(zones, func(i, j int) bool {
			di := absInt(int(zones[i]-kernel.ZoneMin) + 1 - startIndex)
			dj := absInt(int(zones[j]-kernel.ZoneMin) + 1 - startIndex)
			return di < dj
		})
	} else {
		firstZone := items[0].Location.Zone()
		rotateToZone(zones, firstZone)
	}

	ordered := make([]PickTarget, 0, len(items))
	current := start
	for _, zone := range zones {
		subset := make([]PickTarget, 0)
		for _, item := range items {
			if item.Location.Zone() == zone {
				subset = append(subset, item)
			}
		}

		leg := nearestNeighborTour(subset, current)
		ordered = append(ordered, leg...)
		last := leg[len(leg)-1].Location
		current = &last
	}

	return ordered
}

// rotateToZone rotates the alphabetically sorted zone list so the given zone
// comes first, preserving the cyclic alphabetical order after it.
func rotateToZone(zones []kernel.Zone, first kernel.Zone) {
	pivot := 0
	for i, zone := range zones {
		if zone == first {
			pivot = i
			break
		}
	}
	if pivot == 0 {
		return
	}

	rotated := make([]kernel.Zone, 0, len(zones))
	rotated = append(rotated, zones[pivot:]...)
	rotated = append(rotated, zones[:pivot]...)
	copy(zones, rotated)
}

func uniqueLocationCount(items []PickTarget) int {
	codes := make(map[string]bool, len(items))
	for _, item := range items {
		codes[item.Location.Code()] = true
	}
	return len(codes)
}

func validateTargets(items []PickTarget) error {
	for _, item := range items {
		if err := item.Location.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
