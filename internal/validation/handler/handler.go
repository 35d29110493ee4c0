package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"roident/internal/validation"
	"roident/pkg/identifiers/address"
	"roident/pkg/identifiers/cnp"
	"roident/pkg/platform/httputil"
	"roident/pkg/requestcontext"
)

// Service defines the interface for validation operations.
type Service interface {
	ValidateCNP(ctx context.Context, raw string) cnp.Result
	ParseCNP(ctx context.Context, raw string) (*cnp.Decoded, error)
	MaskCNP(ctx context.Context, raw string) string
	ValidateIBAN(ctx context.Context, raw string) validation.Outcome
	FormatIBAN(ctx context.Context, raw string) string
	ValidateCUI(ctx context.Context, raw string) validation.Outcome
	ValidatePostalCode(ctx context.Context, raw string) validation.Outcome
	NormalizePhone(ctx context.Context, raw string) validation.Outcome
	ValidateAddress(ctx context.Context, a address.Address) validation.Outcome
	FormatAddress(ctx context.Context, a address.Address, singleLine bool) string
	Counties(ctx context.Context) []validation.County
	ValidateBatch(ctx context.Context, items []validation.BatchItem) ([]validation.Outcome, error)
}

// Handler wires validation endpoints to the validation service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a validation handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts validation endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/cnp/validate", h.HandleValidateCNP)
		r.Post("/cnp/parse", h.HandleParseCNP)
		r.Post("/cnp/mask", h.HandleMaskCNP)
		r.Post("/iban/validate", h.valueHandler(h.service.ValidateIBAN))
		r.Post("/iban/format", h.HandleFormatIBAN)
		r.Post("/cui/validate", h.valueHandler(h.service.ValidateCUI))
		r.Post("/postal-code/validate", h.valueHandler(h.service.ValidatePostalCode))
		r.Post("/phone/normalize", h.valueHandler(h.service.NormalizePhone))
		r.Post("/address/validate", h.HandleValidateAddress)
		r.Post("/address/format", h.HandleFormatAddress)
		r.Post("/batch", h.HandleBatch)
		r.Get("/counties", h.HandleCounties)
	})
}

// HandleValidateCNP handles POST /v1/cnp/validate. Invalid CNPs are a
// successful response with valid=false and the failed rule.
func (h *Handler) HandleValidateCNP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValueRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res := h.service.ValidateCNP(ctx, req.Value)
	httputil.WriteJSON(w, http.StatusOK, &CNPResponse{
		Valid:  res.Valid,
		Reason: string(res.Reason),
		CNP:    toCNPDetails(res.Decoded, requestcontext.Now(ctx)),
	})
}

// HandleParseCNP handles POST /v1/cnp/parse. Invalid CNPs are a 422.
func (h *Handler) HandleParseCNP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValueRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	decoded, err := h.service.ParseCNP(ctx, req.Value)
	if err != nil {
		h.logger.InfoContext(ctx, "cnp rejected",
			"request_id", requestID,
			"cnp", req.Value,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &CNPResponse{
		Valid: true,
		CNP:   toCNPDetails(decoded, requestcontext.Now(ctx)),
	})
}

// HandleMaskCNP handles POST /v1/cnp/mask.
func (h *Handler) HandleMaskCNP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[ValueRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &MaskResponse{Masked: h.service.MaskCNP(ctx, req.Value)})
}

// HandleFormatIBAN handles POST /v1/iban/format.
func (h *Handler) HandleFormatIBAN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[ValueRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &FormatResponse{Formatted: h.service.FormatIBAN(ctx, req.Value)})
}

// valueHandler serves the single-value endpoints whose verdict is an Outcome.
func (h *Handler) valueHandler(check func(context.Context, string) validation.Outcome) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		req, ok := httputil.DecodeAndPrepare[ValueRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
		if !ok {
			return
		}
		out := check(ctx, req.Value)
		httputil.WriteJSON(w, http.StatusOK, toOutcomeResponse(out, requestcontext.Now(ctx)))
	}
}

// HandleValidateAddress handles POST /v1/address/validate.
func (h *Handler) HandleValidateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[AddressRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	out := h.service.ValidateAddress(ctx, *req.Address)
	httputil.WriteJSON(w, http.StatusOK, toOutcomeResponse(out, requestcontext.Now(ctx)))
}

// HandleFormatAddress handles POST /v1/address/format.
func (h *Handler) HandleFormatAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[AddressRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, &FormatResponse{
		Formatted: h.service.FormatAddress(ctx, *req.Address, req.SingleLine),
	})
}

// HandleBatch handles POST /v1/batch.
func (h *Handler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[BatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	outcomes, err := h.service.ValidateBatch(ctx, req.ParsedItems())
	if err != nil {
		h.logger.WarnContext(ctx, "batch validation failed",
			"request_id", requestID,
			"items", len(req.Items),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	now := requestcontext.Now(ctx)
	resp := &BatchResponse{Results: make([]OutcomeResponse, len(outcomes))}
	for i, o := range outcomes {
		resp.Results[i] = toOutcomeResponse(o, now)
	}

	h.logger.InfoContext(ctx, "batch served",
		"request_id", requestID,
		"items", len(outcomes),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleCounties handles GET /v1/counties.
func (h *Handler) HandleCounties(w http.ResponseWriter, r *http.Request) {
	counties := h.service.Counties(r.Context())
	resp := &CountiesResponse{Counties: make([]CountyResponse, len(counties))}
	for i, c := range counties {
		resp.Counties[i] = CountyResponse{Code: c.Code, Name: c.Name}
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
