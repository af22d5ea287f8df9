// Package operator models the acting context of a request: who performs an
// operation and which office, if any, they are bound to.
package operator

import (
	"fmt"
	"strings"

	"logitrack/internal/pkg/errs"
)

// Role is the kind of operator.
type Role int

const (
	UnknownRole Role = iota
	// SuperAdmin works across all offices and is not bound to one.
	SuperAdmin
	// OfficeAdmin manages a single office.
	OfficeAdmin
	// Public is an unauthenticated guest.
	Public
)

var roleNames = map[Role]string{
	UnknownRole: "UNKNOWN",
	SuperAdmin:  "SUPER_ADMIN",
	OfficeAdmin: "OFFICE_ADMIN",
	Public:      "PUBLIC",
}

// RoleFromString parses a role wire name.
func RoleFromString(s string) (Role, error) {
	for role, name := range roleNames {
		if role != UnknownRole && name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return roleNames[UnknownRole]
}

// Operator is an immutable value passed explicitly into every mutating use case.
type Operator struct {
	name     string
	role     Role
	officeID string
}

// New validates the office binding: office admins must have one, other roles must not.
func New(name string, role Role, officeID string) (Operator, error) {
	officeID = strings.TrimSpace(officeID)

	switch role {
	case OfficeAdmin:
		if officeID == "" {
			return Operator{}, errs.NewValueIsRequiredError("officeId")
		}
	case SuperAdmin, Public:
		if officeID != "" {
			return Operator{}, errs.NewValueIsInvalidErrorWithCause(
				"officeId",
				fmt.Errorf("%s operators are not bound to an office", role),
			)
		}
	default:
		return Operator{}, errs.NewValueIsInvalidError("role")
	}

	return Operator{name: strings.TrimSpace(name), role: role, officeID: officeID}, nil
}

// Guest is the operator used when a request carries no identity.
func Guest() Operator {
	return Operator{name: "Guest", role: Public}
}

// Name returns the operator's display name.
func (o Operator) Name() string { return o.name }

// Role returns the operator's role.
func (o Operator) Role() Role { return o.role }

// OfficeID returns the bound office, empty unless the role is OfficeAdmin.
func (o Operator) OfficeID() string { return o.officeID }

// IsOfficeBound reports whether operations by this operator happen at a specific office.
func (o Operator) IsOfficeBound() bool {
	return o.officeID != ""
}

// IsGlobal reports whether the operator acts for the whole network.
func (o Operator) IsGlobal() bool {
	return o.role == SuperAdmin
}
