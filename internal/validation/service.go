// Package validation is the service layer over the identifier engine. It
// supplies request-scoped time, records metrics and logs every verdict, and
// evaluates mixed batches concurrently.
package validation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"roident/internal/validation/metrics"
	dErrors "roident/pkg/domain-errors"
	"roident/pkg/identifiers/address"
	"roident/pkg/identifiers/cnp"
	"roident/pkg/identifiers/county"
	"roident/pkg/identifiers/cui"
	"roident/pkg/identifiers/iban"
	"roident/pkg/identifiers/phone"
	"roident/pkg/identifiers/postal"
	"roident/pkg/requestcontext"
)

const (
	DefaultBatchLimit       = 100
	DefaultBatchConcurrency = 8
)

// Kind identifies which identifier a value is checked as.
type Kind string

const (
	KindCNP        Kind = "cnp"
	KindIBAN       Kind = "iban"
	KindCUI        Kind = "cui"
	KindPostalCode Kind = "postal_code"
	KindPhone      Kind = "phone"
	KindAddress    Kind = "address"
)

// Kinds lists every supported kind.
var Kinds = []Kind{KindCNP, KindIBAN, KindCUI, KindPostalCode, KindPhone, KindAddress}

// ParseKind returns the Kind named by s.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unsupported kind %q", s))
}

// Reasons for kinds whose engine check is a plain predicate.
const (
	ReasonBadFormat     = "BAD_FORMAT"
	ReasonInvalidFields = "INVALID_FIELDS"
)

// Outcome is the verdict for one value.
type Outcome struct {
	Kind  Kind
	Valid bool
	// Reason is empty when Valid is true.
	Reason string
	// Normalized is the canonical form of a valid value. It is always empty
	// for CNPs so the full number is never echoed back.
	Normalized string
	// CNP is set for valid CNPs.
	CNP *cnp.Decoded
	// PhoneKind is set for valid phone numbers.
	PhoneKind phone.Kind
	// FieldErrors is set for invalid addresses.
	FieldErrors []address.FieldError
}

// BatchItem is one value in a batch. Address is used only for KindAddress.
type BatchItem struct {
	Kind    Kind
	Value   string
	Address *address.Address
}

// County is one entry of the address county table.
type County struct {
	Code string
	Name string
}

// Service validates Romanian identifiers.
type Service struct {
	logger           *slog.Logger
	metrics          *metrics.Metrics
	batchLimit       int
	batchConcurrency int
}

type Option func(*Service)

// WithMetrics records every verdict on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithBatchLimits bounds batch size and the number of items evaluated at once.
func WithBatchLimits(limit, concurrency int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.batchLimit = limit
		}
		if concurrency > 0 {
			s.batchConcurrency = concurrency
		}
	}
}

func New(logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		logger:           logger,
		batchLimit:       DefaultBatchLimit,
		batchConcurrency: DefaultBatchConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BatchLimit is the largest batch ValidateBatch accepts.
func (s *Service) BatchLimit() int {
	return s.batchLimit
}

// ValidateCNP checks raw as a CNP against the request time.
func (s *Service) ValidateCNP(ctx context.Context, raw string) cnp.Result {
	start := time.Now()
	res := cnp.Validate(raw, requestcontext.Now(ctx))
	s.record(KindCNP, res.Valid, string(res.Reason), start)
	s.logger.DebugContext(ctx, "cnp checked",
		"request_id", requestcontext.RequestID(ctx),
		"cnp", raw,
		"valid", res.Valid,
		"reason", res.Reason,
	)
	return res
}

// ParseCNP decodes raw, returning a validation error naming the failed rule.
func (s *Service) ParseCNP(ctx context.Context, raw string) (*cnp.Decoded, error) {
	res := s.ValidateCNP(ctx, raw)
	if !res.Valid {
		return nil, dErrors.Wrap(&cnp.ValidationError{Reason: res.Reason}, dErrors.CodeValidation,
			fmt.Sprintf("invalid CNP: %s", res.Reason))
	}
	return res.Decoded, nil
}

// MaskCNP hides everything after the birth date. It does not validate.
func (s *Service) MaskCNP(_ context.Context, raw string) string {
	return cnp.Mask(cnp.Clean(raw))
}

// ValidateIBAN checks raw as a Romanian IBAN. Valid values are returned in
// groups of four.
func (s *Service) ValidateIBAN(ctx context.Context, raw string) Outcome {
	start := time.Now()
	out := Outcome{Kind: KindIBAN}
	if reason := iban.Check(raw); reason != "" {
		out.Reason = string(reason)
	} else {
		out.Valid = true
		out.Normalized = iban.Format(raw)
	}
	s.record(KindIBAN, out.Valid, out.Reason, start)
	s.logger.DebugContext(ctx, "iban checked",
		"request_id", requestcontext.RequestID(ctx),
		"iban", raw,
		"valid", out.Valid,
		"reason", out.Reason,
	)
	return out
}

// FormatIBAN groups raw in blocks of four. It does not validate.
func (s *Service) FormatIBAN(_ context.Context, raw string) string {
	return iban.Format(raw)
}

// ValidateCUI checks raw as a company tax identifier.
func (s *Service) ValidateCUI(ctx context.Context, raw string) Outcome {
	start := time.Now()
	out := Outcome{Kind: KindCUI}
	if reason := cui.Check(raw); reason != "" {
		out.Reason = string(reason)
	} else {
		out.Valid = true
		out.Normalized = cui.Normalize(raw)
	}
	s.record(KindCUI, out.Valid, out.Reason, start)
	return out
}

// ValidatePostalCode checks raw as a six digit postal code.
func (s *Service) ValidatePostalCode(ctx context.Context, raw string) Outcome {
	start := time.Now()
	out := Outcome{Kind: KindPostalCode}
	if postal.Validate(raw) {
		out.Valid = true
		out.Normalized = postal.Normalize(raw)
	} else {
		out.Reason = ReasonBadFormat
	}
	s.record(KindPostalCode, out.Valid, out.Reason, start)
	return out
}

// NormalizePhone checks raw and returns it in +40 form when valid.
func (s *Service) NormalizePhone(ctx context.Context, raw string) Outcome {
	start := time.Now()
	out := Outcome{Kind: KindPhone}
	if phone.Validate(raw) {
		out.Valid = true
		out.Normalized = phone.Normalize(raw)
		out.PhoneKind = phone.Classify(raw)
	} else {
		out.Reason = ReasonBadFormat
	}
	s.record(KindPhone, out.Valid, out.Reason, start)
	s.logger.DebugContext(ctx, "phone checked",
		"request_id", requestcontext.RequestID(ctx),
		"phone", raw,
		"valid", out.Valid,
	)
	return out
}

// ValidateAddress normalizes a and reports every invalid field.
func (s *Service) ValidateAddress(ctx context.Context, a address.Address) Outcome {
	start := time.Now()
	a.Normalize()
	out := Outcome{Kind: KindAddress}

	err := address.Validate(a)
	var fieldErrs address.ValidationErrors
	switch {
	case err == nil:
		out.Valid = true
		out.Normalized = address.FormatSingleLineWithLookup(a)
	case errors.As(err, &fieldErrs):
		out.Reason = ReasonInvalidFields
		out.FieldErrors = fieldErrs
	default:
		out.Reason = ReasonInvalidFields
	}
	s.record(KindAddress, out.Valid, out.Reason, start)
	return out
}

// FormatAddress renders a on several lines, or on one when singleLine is set.
// The county name is resolved from its code. It does not validate.
func (s *Service) FormatAddress(_ context.Context, a address.Address, singleLine bool) string {
	a.Normalize()
	if singleLine {
		return address.FormatSingleLineWithLookup(a)
	}
	return address.FormatWithLookup(a)
}

// Counties lists the address county codes and their names in code order.
func (s *Service) Counties(_ context.Context) []County {
	codes := county.AddressCountyCodes()
	out := make([]County, 0, len(codes))
	for _, code := range codes {
		name, _ := county.AddressCountyName(code)
		out = append(out, County{Code: code, Name: name})
	}
	return out
}

// ValidateBatch checks every item concurrently and returns the outcomes in
// input order. Every item sees the same request time.
func (s *Service) ValidateBatch(ctx context.Context, items []BatchItem) ([]Outcome, error) {
	if len(items) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "batch must contain at least one item")
	}
	if len(items) > s.batchLimit {
		return nil, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("batch must contain at most %d items", s.batchLimit))
	}
	s.metrics.ObserveBatchSize(len(items))

	// Pin the clock so the whole batch is judged against one instant.
	ctx = requestcontext.WithTime(ctx, requestcontext.Now(ctx))

	results := make([]Outcome, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := s.check(gctx, item)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "batch validation aborted")
		}
		return nil, err
	}

	invalid := 0
	for _, r := range results {
		if !r.Valid {
			invalid++
		}
	}
	s.logger.InfoContext(ctx, "batch validated",
		"request_id", requestcontext.RequestID(ctx),
		"items", len(items),
		"invalid", invalid,
	)
	return results, nil
}

func (s *Service) check(ctx context.Context, item BatchItem) (Outcome, error) {
	switch item.Kind {
	case KindCNP:
		res := s.ValidateCNP(ctx, item.Value)
		return Outcome{Kind: KindCNP, Valid: res.Valid, Reason: string(res.Reason), CNP: res.Decoded}, nil
	case KindIBAN:
		return s.ValidateIBAN(ctx, item.Value), nil
	case KindCUI:
		return s.ValidateCUI(ctx, item.Value), nil
	case KindPostalCode:
		return s.ValidatePostalCode(ctx, item.Value), nil
	case KindPhone:
		return s.NormalizePhone(ctx, item.Value), nil
	case KindAddress:
		if item.Address == nil {
			return Outcome{}, dErrors.New(dErrors.CodeValidation, "address is required for kind address")
		}
		return s.ValidateAddress(ctx, *item.Address), nil
	default:
		return Outcome{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unsupported kind %q", item.Kind))
	}
}

func (s *Service) record(kind Kind, valid bool, reason string, start time.Time) {
	s.metrics.IncrementOutcome(string(kind), valid, reason)
	s.metrics.ObserveCheckLatency(string(kind), time.Since(start))
}
