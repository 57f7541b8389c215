package core

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/methodmap/errors"
)

// OwnerGuard enforces that a blueprint is claimed by at most one distinct
// owning type. Claiming with the same type again is a no-op.
type OwnerGuard struct {
	owner reflect.Type
}

// Claim records owner as the blueprint's owning type. The second distinct
// type to claim fails with ErrMultipleOwners naming the blueprint.
func (g *OwnerGuard) Claim(blueprint string, owner reflect.Type) error {
	if owner == nil {
		return errorc.With(
			errors.ErrNilOwner,
			errorc.String(errors.ErrorFieldBlueprint, blueprint),
		)
	}
	if g.owner == nil {
		g.owner = owner
		return nil
	}
	if g.owner == owner {
		return nil
	}
	return errorc.With(
		errors.ErrMultipleOwners,
		errorc.String(errors.ErrorFieldBlueprint, blueprint),
		errorc.String(errors.ErrorFieldOwnerType, g.owner.String()),
		errorc.String(errors.ErrorFieldClaimedType, owner.String()),
	)
}

// Owner returns the claiming type, or nil if the blueprint is unclaimed.
func (g *OwnerGuard) Owner() reflect.Type {
	return g.owner
}
