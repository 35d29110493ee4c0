// Package address formats and checks Romanian postal addresses.
package address

import (
	"errors"
	"sort"
	"strings"

	"roident/pkg/identifiers/county"
	"roident/pkg/identifiers/postal"
)

// CountryName is printed as the last line of every formatted address.
const CountryName = "România"

const (
	maxFieldLength = 200
	maxNotesLength = 500
)

// Address is a structured Romanian address.
type Address struct {
	CountyCode string `json:"county_code"`
	Locality   string `json:"locality"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Building   string `json:"building,omitempty"`
	Staircase  string `json:"staircase,omitempty"`
	Floor      string `json:"floor,omitempty"`
	Apartment  string `json:"apartment,omitempty"`
	PostalCode string `json:"postal_code"`
	Notes      string `json:"notes,omitempty"`
}

// Normalize trims every field and uppercases the county code.
func (a *Address) Normalize() {
	if a == nil {
		return
	}
	a.CountyCode = strings.ToUpper(strings.TrimSpace(a.CountyCode))
	a.Locality = strings.TrimSpace(a.Locality)
	a.Street = strings.TrimSpace(a.Street)
	a.Number = strings.TrimSpace(a.Number)
	a.Building = strings.TrimSpace(a.Building)
	a.Staircase = strings.TrimSpace(a.Staircase)
	a.Floor = strings.TrimSpace(a.Floor)
	a.Apartment = strings.TrimSpace(a.Apartment)
	a.PostalCode = postal.Normalize(a.PostalCode)
	a.Notes = strings.TrimSpace(a.Notes)
}

// FieldError describes one invalid address field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every FieldError found by Validate.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// ErrInvalidAddress is matched by errors.Is on any ValidationErrors.
var ErrInvalidAddress = errors.New("invalid address")

func (v ValidationErrors) Is(target error) bool {
	return target == ErrInvalidAddress
}

// Validate checks the county code, the postal code and the required
// fields. It returns nil or a ValidationErrors listing every problem.
//
// Follows validation order: Size -> Required -> Syntax -> Semantic.
func Validate(a Address) error {
	var errs ValidationErrors

	for field, value := range map[string]string{
		"locality":  a.Locality,
		"street":    a.Street,
		"number":    a.Number,
		"building":  a.Building,
		"staircase": a.Staircase,
		"floor":     a.Floor,
		"apartment": a.Apartment,
	} {
		if len(value) > maxFieldLength {
			errs = append(errs, FieldError{Field: field, Message: "must be 200 characters or less"})
		}
	}
	if len(a.Notes) > maxNotesLength {
		errs = append(errs, FieldError{Field: "notes", Message: "must be 500 characters or less"})
	}

	if strings.TrimSpace(a.Locality) == "" {
		errs = append(errs, FieldError{Field: "locality", Message: "is required"})
	}
	if strings.TrimSpace(a.Street) == "" {
		errs = append(errs, FieldError{Field: "street", Message: "is required"})
	}
	if strings.TrimSpace(a.Number) == "" {
		errs = append(errs, FieldError{Field: "number", Message: "is required"})
	}

	if !postal.Validate(a.PostalCode) {
		errs = append(errs, FieldError{Field: "postal_code", Message: "must be exactly 6 digits"})
	}
	if !county.IsAddressCounty(a.CountyCode) {
		errs = append(errs, FieldError{Field: "county_code", Message: "is not a Romanian county code"})
	}

	if len(errs) == 0 {
		return nil
	}
	sortFieldErrors(errs)
	return errs
}

// fieldOrder keeps Validate output stable regardless of map iteration.
var fieldOrder = map[string]int{
	"county_code": 0,
	"locality":    1,
	"street":      2,
	"number":      3,
	"building":    4,
	"staircase":   5,
	"floor":       6,
	"apartment":   7,
	"postal_code": 8,
	"notes":       9,
}

func sortFieldErrors(errs ValidationErrors) {
	sort.SliceStable(errs, func(i, j int) bool {
		return fieldOrder[errs[i].Field] < fieldOrder[errs[j].Field]
	})
}
