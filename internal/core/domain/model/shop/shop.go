// Package shop contains the Shop aggregate. A shop creates orders and
// toggles its own open flag; the query layer uses the flag only to annotate
// the shop's views.
package shop

import (
	"errors"

	"driverhub/internal/core/domain/model/kernel"
	"driverhub/internal/pkg/errs"
	"driverhub/internal/pkg/guard"
)

var (
	// ErrShopIsNotConstructed is returned when using an improperly initialized Shop.
	ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop or RestoreShop")
	// ErrIdentityKeyIsRequired is returned when the external identity key is empty.
	ErrIdentityKeyIsRequired = errs.NewValueIsRequiredError("identityKey")
	// ErrNameIsRequired is returned when the display name is empty.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Shop represents an order-issuing shop. Like Driver, each record maps to
// exactly one authenticated actor through a unique identity key, and only
// the shop itself toggles the open flag.
type Shop struct {
	// id uniquely identifies the shop record
	id kernel.UUID
	// identityKey links the record to the external authenticated actor
	identityKey string
	// name is the shop's display name
	name string
	// open is toggled by the shop manager
	open bool
	// guard ensures the shop was properly constructed
	guard guard.ConstructorGuard
}

// NewShop creates a Shop record for a newly registered actor.
// New shops start open.
func NewShop(id kernel.UUID, identityKey, name string) (*Shop, error) {
	s := &Shop{
		open:  true,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setIdentityKey(identityKey),
		s.setName(name),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShop reconstructs a Shop from persistence with its stored flag.
func RestoreShop(id kernel.UUID, identityKey, name string, open bool) (*Shop, error) {
	s, err := NewShop(id, identityKey, name)
	if err != nil {
		return nil, err
	}

	s.open = open
	return s, nil
}

// Validate ensures the Shop instance was properly constructed.
func (s *Shop) Validate() error {
	if s == nil {
		return ErrShopIsNotConstructed
	}
	return s.guard.Validate(ErrShopIsNotConstructed)
}

// ID returns the shop record's unique identifier.
func (s *Shop) ID() kernel.UUID {
	return s.id
}

// IdentityKey returns the external actor identity linked to this record.
func (s *Shop) IdentityKey() string {
	return s.identityKey
}

// Name returns the shop's display name.
func (s *Shop) Name() string {
	return s.name
}

// IsOpen reports whether the shop is currently open.
func (s *Shop) IsOpen() bool {
	return s.open
}

// SetOpen toggles the open flag and reports whether the value changed.
// Setting the current value again is a no-op.
func (s *Shop) SetOpen(open bool) bool {
	if s.open == open {
		return false
	}
	s.open = open
	return true
}

func (s *Shop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shop) setIdentityKey(identityKey string) error {
	if identityKey == "" {
		return ErrIdentityKeyIsRequired
	}
	s.identityKey = identityKey
	return nil
}

func (s *Shop) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}
