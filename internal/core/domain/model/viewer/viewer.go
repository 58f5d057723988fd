// Package viewer defines the ephemeral viewing context used to compute
// visibility-reduced order projections: a role plus an identity. A Context is
// built per query or subscription session and is never persisted.
package viewer

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Role identifies which kind of actor is looking at an order.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is the buyer who placed an order.
	RoleCustomer

	// RoleVendor owns products and sees order traffic for them.
	RoleVendor

	// RoleRider delivers orders; a rider may be prospective (browsing the
	// pending pool) or assigned (bound to an order via a claim).
	RoleRider
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleVendor:   "vendor",
		RoleRider:    "rider",
	}
}

// RoleFromString parses a role from its wire representation.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleVendor && r != RoleRider {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Context is the viewing identity an order projection is computed for.
// It is a value object: immutable and valid only if created via NewContext.
type Context struct {
	role Role
	id   kernel.UUID
}

// NewContext creates a viewing context from a role and an authenticated
// identity. Both must be valid.
func NewContext(role Role, id kernel.UUID) (Context, error) {
	if err := role.Validate(); err != nil {
		return Context{}, err
	}
	if err := id.Validate(); err != nil {
		return Context{}, errs.NewValueIsRequiredErrorWithCause("viewer ID", err)
	}

	return Context{role: role, id: id}, nil
}

// Role returns the viewer's role.
func (c Context) Role() Role {
	return c.role
}

// ID returns the viewer's identity.
func (c Context) ID() kernel.UUID {
	return c.id
}

// Validate checks the context carries a valid role and identity.
func (c Context) Validate() error {
	if err := c.role.Validate(); err != nil {
		return err
	}
	return c.id.Validate()
}
