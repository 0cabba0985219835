package order

import (
	"errors"
	"time"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderAlreadyClaimed is returned when claiming an order whose claiming
	// driver reference is already set, including by the same driver.
	ErrOrderAlreadyClaimed = errs.NewConflictError("order is already claimed by a driver")

	// ErrOrderAlreadyDelivered is returned when delivering an order that is
	// already in the terminal Delivered status.
	ErrOrderAlreadyDelivered = errs.NewConflictError("order is already delivered")

	// ErrNotClaimant is returned when a driver other than the claimant tries
	// to mark the order delivered.
	ErrNotClaimant = errs.NewPermissionDeniedError("only the claiming driver may mark the order delivered")

	// ErrCommissionExceedsTotal is returned when an order is created with a
	// commission larger than its total.
	ErrCommissionExceedsTotal = errs.NewValueIsInvalidErrorWithCause("commission",
		errors.New("commission cannot exceed total"))
)

// Order is the aggregate root of the dispatch domain. It carries the
// monetary amounts a shop attached at creation and the claim state that the
// dispatch operations mutate.
//
// Invariants:
//   - identifier, owning shop, creation timestamp, total, and commission are
//     immutable after creation
//   - commission never exceeds total
//   - the claiming driver reference is set at most once and never changes
//   - a Delivered order always has a claiming driver reference
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// shopID references the shop that created the order, fixed at creation
	shopID kernel.UUID

	// driverID is the claiming driver's ID (nil while unclaimed)
	driverID *kernel.UUID

	// createdAt is the creation timestamp, set once
	createdAt time.Time

	// total is the order's monetary value
	total kernel.Money

	// commission is the driver's cut, never exceeding total
	commission kernel.Money

	// address is the optional delivery address
	address string

	// status tracks the claim lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new unclaimed Order owned by the given shop.
// The creation timestamp is set here and never changes. Address may be
// empty. Returns a validation error when any identifier or amount is
// invalid, or when commission exceeds total.
func NewOrder(id, shopID kernel.UUID, total, commission kernel.Money, address string) (*Order, error) {
	o := &Order{
		createdAt:     time.Now().UTC(),
		address:       address,
		status:        Unclaimed,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShopID(shopID),
		o.setAmounts(total, commission),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. Unlike NewOrder it
// accepts any lifecycle status and an optional driver reference, but still
// enforces every invariant, including that a driver reference is present
// exactly when the status requires one.
func RestoreOrder(
	id, shopID kernel.UUID,
	driverID *kernel.UUID,
	createdAt time.Time,
	total, commission kernel.Money,
	address string,
	status Status,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		address:       address,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShopID(shopID),
		o.setAmounts(total, commission),
		o.setStatus(status, driverID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ShopID returns the owning shop's identifier.
func (o *Order) ShopID() kernel.UUID {
	return o.shopID
}

// Driver returns the claiming driver's ID, or nil while unclaimed.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total returns the order's monetary value.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Commission returns the driver's commission.
func (o *Order) Commission() kernel.Money {
	return o.commission
}

// Address returns the delivery address, possibly empty.
func (o *Order) Address() string {
	return o.address
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// IsDelivered reports whether the order reached the terminal status.
func (o *Order) IsDelivered() bool {
	return o.status == Delivered
}

// Claim assigns the order to a driver.
//
// Claiming succeeds only while the order is Unclaimed; any later claim,
// including one by the same driver, fails with ErrOrderAlreadyClaimed.
// The in-memory transition here is a fast-fail check; the authoritative
// exclusivity guarantee is the repository's conditional write, which may
// itself report ErrOrderAlreadyClaimed when a concurrent claim won.
func (o *Order) Claim(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	return nil
}

// Deliver marks the order delivered on behalf of the given driver.
//
// Fails with ErrNotClaimant when driverID is not the claiming driver and
// with ErrOrderAlreadyDelivered when the order is already delivered by the
// claimant. The transition is monotonic: once delivered, neither the status
// nor the driver reference changes again.
func (o *Order) Deliver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.driverID == nil || !o.driverID.IsEqual(driverID) {
		return ErrNotClaimant
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setShopID(shopID kernel.UUID) error {
	if err := shopID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopID", err)
	}
	o.shopID = shopID
	return nil
}

func (o *Order) setAmounts(total, commission kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	if err := commission.Validate(); err != nil {
		return err
	}
	if commission.GreaterThan(total) {
		return ErrCommissionExceedsTotal
	}

	o.total = total
	o.commission = commission
	return nil
}

func (o *Order) setStatus(status Status, driverID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}
	if err := status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return err
	}

	o.status = status
	o.driverID = driverID
	return nil
}
