package shipment

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// The usual progression is
//
//	Created ──> InTransit ──> Delivered
//	    │            │
//	    └──> Delayed <┘            Failed (terminal)
//
// but transitions are intentionally not enforced as a closed graph: an
// update may set any defined status, and operators do use that to correct
// mistakes. Status values are only validated for membership. The
// delivered-record side effects key off the before/after pair of an update,
// not off an allowed-transition table.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when a shipment is registered.
	Created

	// InTransit indicates the shipment is moving through the network.
	InTransit

	// Delayed indicates the shipment is held up; reachable from
	// Created or InTransit in normal operation.
	Delayed

	// Delivered indicates the shipment reached its destination. Entering
	// this status materializes a delivery record.
	Delivered

	// Failed indicates the shipment will not be delivered.
	Failed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		InTransit: "InTransit",
		Delayed:   "Delayed",
		Delivered: "Delivered",
		Failed:    "Failed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		InTransit: "InTransit",
		Delayed:   "Delayed",
		Delivered: "Delivered",
		Failed:    "Failed",
	}
}

// StatusFromString parses a status name as received from the HTTP layer.
// Returns an error for names outside the defined set.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks that the Status value is one of the defined statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
