package parcel

import (
	"errors"
	"strings"

	"logitrack/internal/pkg/errs"
)

// Party is the sender or the receiver of a parcel.
type Party struct {
	name  string
	phone string
}

// NewParty trims both fields and requires them to be non-empty. role prefixes
// the parameter names in errors ("senderName", "receiverPhone", ...).
func NewParty(role, name, phone string) (Party, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	var nameErr, phoneErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError(role + "Name")
	}
	if phone == "" {
		phoneErr = errs.NewValueIsRequiredError(role + "Phone")
	}
	if err := errors.Join(nameErr, phoneErr); err != nil {
		return Party{}, err
	}

	return Party{name: name, phone: phone}, nil
}

// Name returns the party's name.
func (p Party) Name() string { return p.name }

// Phone returns the party's phone number.
func (p Party) Phone() string { return p.phone }

// IsZero reports whether the party was never constructed.
func (p Party) IsZero() bool {
	return p.name == "" && p.phone == ""
}
