package order

import (
	"fmt"

	"driverhub/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the dispatch workflow.
//
// State transitions:
//
//	Unclaimed ──> Claimed ──> Delivered
//
// There is no transition back to Unclaimed and no transition out of
// Delivered. Status is a value object that validates transitions and
// provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Unclaimed is the initial status when a shop creates an order.
	// Orders in this status are visible to every driver.
	Unclaimed

	// Claimed indicates exactly one driver has claimed the order and is
	// delivering it. The claiming driver reference never changes afterwards.
	Claimed

	// Delivered indicates the claiming driver has completed the delivery.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Unclaimed: "Unclaimed",
		Claimed:   "Claimed",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Unclaimed: "Unclaimed",
		Claimed:   "Claimed",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is one of Unclaimed, Claimed, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCanHaveDriver validates the consistency between order status and
// the claiming driver reference.
//
// Business rules:
//   - Unclaimed orders must not reference a driver
//   - Claimed and Delivered orders must reference a driver
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && s != Claimed && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()))
	}

	if !hasDriver && (s == Claimed || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()))
	}

	return nil
}

// Claim transitions the status to Claimed.
//
// The only valid transition is Unclaimed -> Claimed. A Claimed or Delivered
// order already has its one driver, so claiming again returns
// ErrOrderAlreadyClaimed; re-claiming is not idempotent.
func (s Status) Claim() (Status, error) {
	if s != Unclaimed {
		return 0, ErrOrderAlreadyClaimed
	}

	return Claimed, nil
}

// Deliver transitions the status to Delivered.
//
// The only valid transition is Claimed -> Delivered. Delivering an already
// delivered order returns ErrOrderAlreadyDelivered; delivering an unclaimed
// order is a status error because the delivered flag implies a claimant.
func (s Status) Deliver() (Status, error) {
	switch s {
	case Claimed:
		return Delivered, nil
	case Delivered:
		return 0, ErrOrderAlreadyDelivered
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()))
	}
}
