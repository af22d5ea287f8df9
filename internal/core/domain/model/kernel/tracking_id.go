package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"logitrack/internal/pkg/errs"
)

const (
	// TrackingIDPrefix starts every tracking identifier.
	TrackingIDPrefix = "TRK"
	// TrackingIDMinNumber and TrackingIDMaxNumber bound the six-digit suffix.
	TrackingIDMinNumber = 100000
	TrackingIDMaxNumber = 999999
)

var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError("trackingId")

// TrackingID is the external, human-facing parcel key: "TRK-" followed by a
// fixed-width six-digit number. Comparison is exact and case-sensitive.
type TrackingID struct {
	number int
}

// NewTrackingID builds the identifier for a number in
// [TrackingIDMinNumber, TrackingIDMaxNumber].
func NewTrackingID(number int) (TrackingID, error) {
	if number < TrackingIDMinNumber || number > TrackingIDMaxNumber {
		return TrackingID{}, errs.NewValueIsOutOfRangeError("trackingId", number, TrackingIDMinNumber, TrackingIDMaxNumber)
	}
	return TrackingID{number: number}, nil
}

// TrackingIDFromString parses the canonical "TRK-NNNNNN" form.
func TrackingIDFromString(s string) (TrackingID, error) {
	digits, ok := strings.CutPrefix(s, TrackingIDPrefix+"-")
	if !ok || len(digits) != 6 {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingId",
			fmt.Errorf("%q does not match %s-NNNNNN", s, TrackingIDPrefix),
		)
	}

	number, err := strconv.Atoi(digits)
	if err != nil {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause("trackingId", err)
	}
	return NewTrackingID(number)
}

// String returns the canonical TRK-NNNNNN form.
func (t TrackingID) String() string {
	return fmt.Sprintf("%s-%06d", TrackingIDPrefix, t.number)
}

// Number returns the numeric suffix, which printed documents use as the LR number.
func (t TrackingID) Number() string {
	return fmt.Sprintf("%06d", t.number)
}

// IsEqual reports whether both identifiers have the same number.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.number == other.number
}

// Validate rejects the zero value.
func (t TrackingID) Validate() error {
	if t.number == 0 {
		return ErrTrackingIDIsNotConstructed
	}
	return nil
}
