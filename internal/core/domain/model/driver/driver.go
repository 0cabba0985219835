// Package driver contains the Driver aggregate. A driver claims unclaimed
// orders and delivers them; the online flag gates which orders the query
// layer shows, and the on-delivery flag is derived from the driver's open
// claims by a reconciliation job rather than maintained by dispatch itself.
package driver

import (
	"errors"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
	"driverhub/internal/pkg/guard"
)

var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")
	// ErrIdentityKeyIsRequired is returned when the external identity key is empty.
	ErrIdentityKeyIsRequired = errs.NewValueIsRequiredError("identityKey")
	// ErrNameIsRequired is returned when the display name is empty.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Driver represents a delivery driver.
//
// Each driver record corresponds to exactly one authenticated actor through
// a unique identity key; the store enforces that uniqueness and identity
// resolution fails loudly if it is ever violated. Only the driver themself
// toggles the online flag.
type Driver struct {
	// id uniquely identifies the driver record
	id kernel.UUID
	// identityKey links the record to the external authenticated actor
	identityKey string
	// name is the driver's display name
	name string
	// online is toggled by the driver to opt in or out of the unclaimed pool
	online bool
	// onDelivery mirrors "has at least one claimed, undelivered order";
	// maintained by the activity reconciliation job
	onDelivery bool
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a Driver record for a newly registered actor.
// New drivers start offline with no deliveries in flight.
func NewDriver(id kernel.UUID, identityKey, name string) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setIdentityKey(identityKey),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistence with its stored flags.
func RestoreDriver(id kernel.UUID, identityKey, name string, online, onDelivery bool) (*Driver, error) {
	d, err := NewDriver(id, identityKey, name)
	if err != nil {
		return nil, err
	}

	d.online = online
	d.onDelivery = onDelivery
	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver record's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// IdentityKey returns the external actor identity linked to this record.
func (d *Driver) IdentityKey() string {
	return d.identityKey
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// IsOnline reports whether the driver is accepting work.
func (d *Driver) IsOnline() bool {
	return d.online
}

// IsOnDelivery reports the last reconciled in-flight state.
func (d *Driver) IsOnDelivery() bool {
	return d.onDelivery
}

// SetOnline toggles the online flag and reports whether the value changed.
// Setting the current value again is a no-op.
func (d *Driver) SetOnline(online bool) bool {
	if d.online == online {
		return false
	}
	d.online = online
	return true
}

// SetOnDelivery records the derived in-flight state and reports whether the
// value changed, letting the reconciliation job skip redundant writes.
func (d *Driver) SetOnDelivery(onDelivery bool) bool {
	if d.onDelivery == onDelivery {
		return false
	}
	d.onDelivery = onDelivery
	return true
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setIdentityKey(identityKey string) error {
	if identityKey == "" {
		return ErrIdentityKeyIsRequired
	}
	d.identityKey = identityKey
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}
