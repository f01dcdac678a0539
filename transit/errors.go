package transit

import "errors"

// Sentinel errors returned by Network operations.
var (
	// ErrStopNotFound indicates an id that does not name a stop.
	ErrStopNotFound = errors.New("transit: stop not found")

	// ErrRouteNotFound indicates an id that does not name a route.
	ErrRouteNotFound = errors.New("transit: route not found")

	// ErrInvalidTime indicates a departure time that is not HH:MM on a 24h clock.
	ErrInvalidTime = errors.New("transit: invalid time, want HH:MM")

	// ErrInvalidName indicates an empty or multi-line name.
	ErrInvalidName = errors.New("transit: invalid name")

	// ErrUnknownPlanKind indicates a plan kind other than shortest, longest, established or fewest.
	ErrUnknownPlanKind = errors.New("transit: unknown plan kind")

	// ErrEmptyRoute indicates a route with fewer than two stops.
	ErrEmptyRoute = errors.New("transit: route needs at least two stops")

	// ErrGraphFull indicates that the stop id ceiling has been reached.
	ErrGraphFull = errors.New("transit: stop limit reached")

	// ErrInvalidWeight indicates a negative travel time.
	ErrInvalidWeight = errors.New("transit: travel time must be non-negative")

	// ErrUnknownSortKey indicates a sort key other than name or id.
	ErrUnknownSortKey = errors.New("transit: unknown sort key")
)
