// Package queries contains read-only projections over order records.
// Implements the read side of the CQRS architecture: handlers run raw SQL
// against the store and return flat read models, bypassing the aggregates.
// Every scoped query resolves the caller's own record first and never
// accepts an arbitrary target id.
package queries

import (
	"driverhub/internal/pkg/errs"
)

// ErrOrderScopeIsInvalid is returned when a list query is constructed with
// an undefined scope.
var ErrOrderScopeIsInvalid = errs.NewValueIsInvalidError("orderScope")

// OrderScope selects which slice of an actor's orders a list query returns.
type OrderScope int

const (
	// ScopeUnknown represents an invalid or undefined scope.
	ScopeUnknown OrderScope = iota

	// ScopeUnclaimed selects orders no driver has claimed yet.
	ScopeUnclaimed

	// ScopeInFlight selects claimed, undelivered orders.
	ScopeInFlight

	// ScopeDelivered selects delivered orders.
	ScopeDelivered
)

// String returns a human-readable scope name.
func (s OrderScope) String() string {
	switch s {
	case ScopeUnclaimed:
		return "Unclaimed"
	case ScopeInFlight:
		return "InFlight"
	case ScopeDelivered:
		return "Delivered"
	case ScopeUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}
