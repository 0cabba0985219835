package kernel

import (
	"fmt"

	"driverhub/internal/pkg/errs"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through NewMoneyFromCents.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoneyFromCents")

// Money is an immutable monetary amount stored in integer cents to avoid
// floating-point drift in sums. Amounts are never negative: order totals
// and commissions are non-negative by the data model, and every derived
// amount (the shop net) is produced by Sub, which rejects a negative result.
//
// Example:
//
//	total, _ := kernel.NewMoneyFromCents(10000)      // 100.00
//	commission, _ := kernel.NewMoneyFromCents(1000)  // 10.00
//	net, _ := total.Sub(commission)                  // 90.00
type Money struct {
	cents int64
	// constructed guards against zero-value Money bypassing validation
	constructed bool
}

// NewMoneyFromCents creates a Money amount from integer cents.
// Negative amounts are rejected.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents, constructed: true}, nil
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents, constructed: true}
}

// Sub returns m minus other, failing if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.cents > m.cents {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d - %d cents is negative", m.cents, other.cents))
	}
	return Money{cents: m.cents - other.cents, constructed: true}, nil
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount as a decimal, e.g. "100.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

// Validate returns ErrMoneyIsNotConstructed for a zero-value Money.
func (m Money) Validate() error {
	if !m.constructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
