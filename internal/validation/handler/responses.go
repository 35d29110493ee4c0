package handler

import (
	"time"

	"roident/internal/validation"
	"roident/pkg/identifiers/address"
	"roident/pkg/identifiers/cnp"
)

const dateLayout = "2006-01-02"

// CNPResponse is the HTTP response for POST /v1/cnp/validate and /v1/cnp/parse.
type CNPResponse struct {
	Valid  bool        `json:"valid"`
	Reason string      `json:"reason,omitempty"`
	CNP    *CNPDetails `json:"cnp,omitempty"`
}

// CNPDetails are the fields decoded from a valid CNP.
type CNPDetails struct {
	Masked     string  `json:"masked"`
	Gender     *string `json:"gender"`
	BirthDate  string  `json:"birth_date"`
	Age        int     `json:"age"`
	CountyCode string  `json:"county_code"`
	CountyName string  `json:"county_name"`
	Sequence   string  `json:"sequence"`
	Resident   bool    `json:"resident"`
	Foreign    bool    `json:"foreign"`
}

func toCNPDetails(d *cnp.Decoded, now time.Time) *CNPDetails {
	if d == nil {
		return nil
	}
	return &CNPDetails{
		Masked:     d.Masked(),
		Gender:     genderOf(d.Gender),
		BirthDate:  d.BirthDate.Format(dateLayout),
		Age:        d.AgeAt(now),
		CountyCode: d.CountyCode,
		CountyName: d.CountyName,
		Sequence:   d.Sequence,
		Resident:   d.Resident,
		Foreign:    d.Foreign,
	}
}

// genderOf is nil for foreign citizens, whose CNP carries no gender.
func genderOf(g cnp.Gender) *string {
	if g == cnp.GenderUnknown {
		return nil
	}
	v := string(g)
	return &v
}

// OutcomeResponse is the verdict for one value of any kind.
type OutcomeResponse struct {
	Kind        string               `json:"kind"`
	Valid       bool                 `json:"valid"`
	Reason      string               `json:"reason,omitempty"`
	Normalized  string               `json:"normalized,omitempty"`
	PhoneKind   string               `json:"phone_kind,omitempty"`
	FieldErrors []address.FieldError `json:"field_errors,omitempty"`
	CNP         *CNPDetails          `json:"cnp,omitempty"`
}

func toOutcomeResponse(o validation.Outcome, now time.Time) OutcomeResponse {
	return OutcomeResponse{
		Kind:        string(o.Kind),
		Valid:       o.Valid,
		Reason:      o.Reason,
		Normalized:  o.Normalized,
		PhoneKind:   string(o.PhoneKind),
		FieldErrors: o.FieldErrors,
		CNP:         toCNPDetails(o.CNP, now),
	}
}

// MaskResponse is the HTTP response for POST /v1/cnp/mask.
type MaskResponse struct {
	Masked string `json:"masked"`
}

// FormatResponse is the HTTP response for the format endpoints.
type FormatResponse struct {
	Formatted string `json:"formatted"`
}

// BatchResponse is the HTTP response for POST /v1/batch.
type BatchResponse struct {
	Results []OutcomeResponse `json:"results"`
}

// CountyResponse is one entry of GET /v1/counties.
type CountyResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CountiesResponse is the HTTP response for GET /v1/counties.
type CountiesResponse struct {
	Counties []CountyResponse `json:"counties"`
}
