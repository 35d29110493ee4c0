package cnp

import (
	"errors"
	"fmt"
)

// Reason names the first CNP rule an input failed.
type Reason string

const (
	ReasonWrongLength Reason = "WRONG_LENGTH"
	ReasonNonDigit    Reason = "NON_DIGIT"
	ReasonBadSexDigit Reason = "BAD_SEX_DIGIT"
	ReasonBadCounty   Reason = "BAD_COUNTY"
	ReasonBadDate     Reason = "BAD_DATE"
	ReasonFutureDate  Reason = "FUTURE_DATE"
	ReasonBadChecksum Reason = "BAD_CHECKSUM"
)

// Reasons lists every reason in the order the checks run.
var Reasons = []Reason{
	ReasonWrongLength,
	ReasonNonDigit,
	ReasonBadSexDigit,
	ReasonBadCounty,
	ReasonBadDate,
	ReasonFutureDate,
	ReasonBadChecksum,
}

// ErrInvalid is wrapped by every ValidationError.
var ErrInvalid = errors.New("invalid CNP")

// ValidationError is returned by Parse and ControlDigit.
type ValidationError struct {
	Reason Reason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalid, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}

// ReasonOf extracts the reason from an error returned by this package.
func ReasonOf(err error) (Reason, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason, true
	}
	return "", false
}
