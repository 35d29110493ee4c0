package handler

import (
	"strings"

	"roident/internal/validation"
	dErrors "roident/pkg/domain-errors"
	"roident/pkg/identifiers/address"
)

// maxValueLength bounds single identifier values. The longest accepted
// form is a spaced IBAN; anything far beyond that is rejected before the
// engine sees it.
const maxValueLength = 64

// ValueRequest is the body of every single-value endpoint.
type ValueRequest struct {
	Value string `json:"value"`
}

func (r *ValueRequest) Normalize() {
	if r == nil {
		return
	}
	r.Value = strings.TrimSpace(r.Value)
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *ValueRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Value) > maxValueLength {
		return dErrors.New(dErrors.CodeValidation, "value must be 64 characters or less")
	}
	if r.Value == "" {
		return dErrors.New(dErrors.CodeValidation, "value is required")
	}
	return nil
}

// AddressRequest is the body of POST /v1/address/validate and /v1/address/format.
type AddressRequest struct {
	Address    *address.Address `json:"address"`
	SingleLine bool             `json:"single_line"`
}

func (r *AddressRequest) Normalize() {
	if r == nil || r.Address == nil {
		return
	}
	r.Address.Normalize()
}

func (r *AddressRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.Address == nil {
		return dErrors.New(dErrors.CodeValidation, "address is required")
	}
	return nil
}

// BatchItemRequest is one entry of a batch.
type BatchItemRequest struct {
	Kind    string           `json:"kind"`
	Value   string           `json:"value,omitempty"`
	Address *address.Address `json:"address,omitempty"`
}

// BatchRequest is the body of POST /v1/batch.
type BatchRequest struct {
	Items []BatchItemRequest `json:"items"`

	// Parsed values (populated by Validate)
	parsed []validation.BatchItem
}

func (r *BatchRequest) Normalize() {
	if r == nil {
		return
	}
	for i := range r.Items {
		r.Items[i].Kind = strings.ToLower(strings.TrimSpace(r.Items[i].Kind))
		r.Items[i].Value = strings.TrimSpace(r.Items[i].Value)
		if r.Items[i].Address != nil {
			r.Items[i].Address.Normalize()
		}
	}
}

// Validate checks every item and parses its kind. The batch size limit is
// enforced by the service.
func (r *BatchRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Items) == 0 {
		return dErrors.New(dErrors.CodeValidation, "items is required")
	}

	parsed := make([]validation.BatchItem, len(r.Items))
	for i, item := range r.Items {
		if len(item.Value) > maxValueLength {
			return dErrors.New(dErrors.CodeValidation, "items.value must be 64 characters or less")
		}
		kind, err := validation.ParseKind(item.Kind)
		if err != nil {
			return err
		}
		if kind == validation.KindAddress && item.Address == nil {
			return dErrors.New(dErrors.CodeValidation, "items.address is required for kind address")
		}
		if kind != validation.KindAddress && item.Value == "" {
			return dErrors.New(dErrors.CodeValidation, "items.value is required")
		}
		parsed[i] = validation.BatchItem{Kind: kind, Value: item.Value, Address: item.Address}
	}
	r.parsed = parsed
	return nil
}

// ParsedItems returns the validated batch items.
func (r *BatchRequest) ParsedItems() []validation.BatchItem {
	return r.parsed
}
