// Package office holds the Office reference entity supplied by the directory.
package office

import (
	"errors"
	"strings"

	"logitrack/internal/pkg/errs"
	"logitrack/internal/pkg/guard"
)

// UnknownOfficeName is shown when an office id cannot be resolved.
const UnknownOfficeName = "Unknown Office"

var ErrOfficeIsNotConstructed = errors.New("Office must be created via NewOffice constructor")

// Office is a branch that books and receives parcels. It is keyed by a short
// directory id such as "off_1".
type Office struct {
	id    string
	name  string
	city  string
	code  string
	guard guard.ConstructorGuard
}

// NewOffice validates and creates an office. Every field is required.
func NewOffice(id, name, city, code string) (*Office, error) {
	o := &Office{
		id:    strings.TrimSpace(id),
		name:  strings.TrimSpace(name),
		city:  strings.TrimSpace(city),
		code:  strings.ToUpper(strings.TrimSpace(code)),
		guard: guard.NewConstructorGuard(),
	}

	var errList []error
	if o.id == "" {
		errList = append(errList, errs.NewValueIsRequiredError("officeId"))
	}
	if o.name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if o.city == "" {
		errList = append(errList, errs.NewValueIsRequiredError("city"))
	}
	if o.code == "" {
		errList = append(errList, errs.NewValueIsRequiredError("code"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate reports whether the office was built by NewOffice.
func (o *Office) Validate() error {
	if o == nil {
		return ErrOfficeIsNotConstructed
	}
	return o.guard.Validate(ErrOfficeIsNotConstructed)
}

// ID returns the office identifier, e.g. off_1.
func (o *Office) ID() string { return o.id }

// Name returns the display name used in locations and receipts.
func (o *Office) Name() string { return o.name }

// City returns the city the office is in.
func (o *Office) City() string { return o.city }

// Code returns the short office code printed on receipts.
func (o *Office) Code() string { return o.code }
