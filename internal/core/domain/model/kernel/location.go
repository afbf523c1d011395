package kernel

import (
	"errors"
	"fmt"
	"math"

	"picking/internal/pkg/errs"
	"picking/internal/pkg/guard"
)

// Zone identifies a warehouse zone by a single uppercase letter A..Z.
// Zones partition the floor into areas with distinct walking costs between them.
type Zone byte

const (
	// ZoneMin is the first valid warehouse zone.
	ZoneMin Zone = 'A'
	// ZoneMax is the last valid warehouse zone.
	ZoneMax Zone = 'Z'
)

// Walking-cost weights for the zone/aisle/shelf distance proxy.
// Crossing zones costs far more walking than moving along an aisle, and moving
// along an aisle costs more than moving between shelves on the same rack.
const (
	// ZoneCrossingCost is the walking cost of moving between adjacent zones.
	ZoneCrossingCost = 10.0
	// AisleCrossingCost is the walking cost of moving between adjacent aisles.
	AisleCrossingCost = 3.0
	// ShelfCrossingCost is the walking cost of moving between adjacent shelves.
	ShelfCrossingCost = 0.5
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation or
// NewLocationWithCoordinates to ensure validity.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or NewLocationWithCoordinates constructors")

// Coordinates is a measured X/Y position on the warehouse floor plan, in meters.
// A Location either carries both coordinates or none; partial coordinate data is
// treated as "no coordinates" and never reaches this type.
type Coordinates struct {
	x float64
	y float64
}

// NewCoordinates creates a Coordinates pair.
func NewCoordinates(x, y float64) Coordinates {
	return Coordinates{x: x, y: y}
}

// X returns the X position in meters.
func (c Coordinates) X() float64 { return c.x }

// Y returns the Y position in meters.
func (c Coordinates) Y() float64 { return c.y }

// Location represents a storage cell on the warehouse floor, addressed by
// zone letter, aisle number and shelf number. Location is an immutable value
// object; the zero value is invalid and fails validation - use the constructors.
//
// A location may additionally carry floor-plan Coordinates. When both locations
// of a distance calculation have coordinates the distance is Euclidean;
// otherwise a weighted zone/aisle/shelf proxy is used (see Distance).
//
// Example:
//
//	loc, err := kernel.NewLocation('A', 1, 3)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc.Code()) // Output: A-01-03
type Location struct { //nolint:recvcheck //using for validation
	zone      Zone
	aisle     int
	shelf     int
	coords    Coordinates
	hasCoords bool
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location without floor-plan coordinates.
// The zone must be a single uppercase letter A..Z; aisle and shelf must be >= 0.
//
// Returns:
//   - Location: A valid location instance
//   - error: Validation error if any component is out of bounds
func NewLocation(zone Zone, aisle int, shelf int) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setZone(zone), loc.setAisle(aisle), loc.setShelf(shelf)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// NewLocationWithCoordinates creates a Location carrying measured floor-plan
// coordinates. Both X and Y are required; a caller with only one of them must
// fall back to NewLocation so the coordinate-less distance proxy applies.
func NewLocationWithCoordinates(zone Zone, aisle int, shelf int, x, y float64) (Location, error) {
	loc, err := NewLocation(zone, aisle, shelf)
	if err != nil {
		return Location{}, err
	}

	loc.coords = NewCoordinates(x, y)
	loc.hasCoords = true
	return loc, nil
}

// Validate checks if the Location was properly constructed using a constructor.
// The zero value of Location is invalid and will fail this validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Zone returns the warehouse zone letter.
func (l Location) Zone() Zone {
	return l.zone
}

// Aisle returns the aisle number within the zone.
func (l Location) Aisle() int {
	return l.aisle
}

// Shelf returns the shelf number within the aisle.
func (l Location) Shelf() int {
	return l.shelf
}

// Coordinates returns the floor-plan coordinates and whether they are present.
func (l Location) Coordinates() (Coordinates, bool) {
	return l.coords, l.hasCoords
}

// Code returns the human-readable cell code in the form "A-01-03".
func (l Location) Code() string {
	return fmt.Sprintf("%c-%02d-%02d", l.zone, l.aisle, l.shelf)
}

// String returns a human-readable representation of the Location.
// This method implements the fmt.Stringer interface.
func (l Location) String() string {
	return fmt.Sprintf("Location(%s)", l.Code())
}

// IsSameCell reports whether two locations address the same physical storage
// cell, i.e. the same zone, aisle and shelf. Coordinates are not compared:
// they are a measurement of the cell, not part of its identity.
func (l Location) IsSameCell(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.zone == other.zone && l.aisle == other.aisle && l.shelf == other.shelf, nil
}

// Distance calculates the walking distance between two locations.
//
// The distance is always >= 0, symmetric, and 0 exactly when both locations
// address the same cell. When both locations carry floor-plan coordinates the
// Euclidean distance between them is returned. Otherwise a weighted proxy is
// used:
//
//	|zoneIndex(a)-zoneIndex(b)| * ZoneCrossingCost
//	  + |a.aisle-b.aisle| * AisleCrossingCost
//	  + |a.shelf-b.shelf| * ShelfCrossingCost
//
// Both locations must be properly constructed for the calculation to succeed.
func (l Location) Distance(other Location) (float64, error) {
	same, err := l.IsSameCell(other)
	if err != nil {
		return 0, err
	}
	if same {
		return 0, nil
	}

	if l.hasCoords && other.hasCoords {
		dx := l.coords.x - other.coords.x
		dy := l.coords.y - other.coords.y
		return math.Sqrt(dx*dx + dy*dy), nil
	}

	zones := math.Abs(float64(l.ZoneIndex() - other.ZoneIndex()))
	aisles := math.Abs(float64(l.aisle - other.aisle))
	shelves := math.Abs(float64(l.shelf - other.shelf))
	return zones*ZoneCrossingCost + aisles*AisleCrossingCost + shelves*ShelfCrossingCost, nil
}

// ZoneIndex returns the alphabetical rank of the location's zone (A=1, B=2, ...).
func (l Location) ZoneIndex() int {
	return int(l.zone-ZoneMin) + 1
}

// setZone sets the zone with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// The private setters enable self-encapsulated validation of business requirements
// during object construction.
func (l *Location) setZone(zone Zone) error {
	if zone < ZoneMin || zone > ZoneMax {
		return errs.NewValueIsOutOfRangeError("zone", string(zone), string(ZoneMin), string(ZoneMax))
	}

	l.zone = zone
	return nil
}

// setAisle sets the aisle number with validation.
func (l *Location) setAisle(aisle int) error {
	if aisle < 0 {
		return errs.NewValueIsInvalidErrorWithCause("aisle",
			fmt.Errorf("%d is not greater than or equal to 0", aisle))
	}

	l.aisle = aisle
	return nil
}

// setShelf sets the shelf number with validation.
func (l *Location) setShelf(shelf int) error {
	if shelf < 0 {
		return errs.NewValueIsInvalidErrorWithCause("shelf",
			fmt.Errorf("%d is not greater than or equal to 0", shelf))
	}

	l.shelf = shelf
	return nil
}
