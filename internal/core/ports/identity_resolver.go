package ports

import (
	"context"
	"errors"

	"driverhub/internal/core/domain/model/driver"
	"driverhub/internal/core/domain/model/shop"
)

var (
	// ErrActorHasNoRecord is returned when identity resolution finds no
	// driver or shop record for the authenticated actor.
	ErrActorHasNoRecord = errors.New("actor has no matching record")

	// ErrMultipleRecordsForIdentity is returned when more than one record
	// shares one identity key. The uniqueness invariant makes this
	// impossible in a healthy store; resolution fails loudly instead of
	// picking an arbitrary record.
	ErrMultipleRecordsForIdentity = errors.New("multiple records share one identity key")
)

// IdentityResolver maps an authenticated actor id (supplied by the external
// identity collaborator) to the actor's own Driver or Shop record. Every
// scoped operation resolves the caller through this capability and never
// accepts an arbitrary target record id, so actors can only ever see or
// mutate their own records.
type IdentityResolver interface {
	// ResolveDriver returns the single driver record whose identity key
	// equals actorID. Fails with ErrActorHasNoRecord when there is none and
	// ErrMultipleRecordsForIdentity when there are several.
	ResolveDriver(ctx context.Context, actorID string) (*driver.Driver, error)

	// ResolveShop is the shop counterpart of ResolveDriver.
	ResolveShop(ctx context.Context, actorID string) (*shop.Shop, error)
}
