// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is created by a shop, claimed by exactly one driver, and finally
// delivered by that driver:
//
//	Unclaimed ──> Claimed ──> Delivered
//
// Both transitions are irreversible. There is no release operation back to
// Unclaimed, re-claiming a claimed order is rejected rather than treated as
// idempotent, and Delivered is terminal. The claiming driver reference is
// set exactly once; a delivered order always has one.
package order
