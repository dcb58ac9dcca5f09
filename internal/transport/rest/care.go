package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/internal/service/care"
	"github.com/heartmarshall/plantcare-backend/pkg/ctxutil"
)

type careService interface {
	CreateLog(ctx context.Context, input care.CreateLogInput) (*domain.CareLog, error)
	ListLogs(ctx context.Context, plantID uuid.UUID) ([]domain.CareLog, error)
	GetProfile(ctx context.Context, plantID uuid.UUID) (*domain.CareProfile, error)
	UpsertProfile(ctx context.Context, input care.UpsertProfileInput) (*domain.CareProfile, error)
	LatestSummaries(ctx context.Context) ([]domain.PlantLatestCareSummary, error)
}

// CareHandler serves care log, care profile and summary endpoints.
type CareHandler struct {
	svc careService
	log *slog.Logger
	loc *time.Location
	now func() time.Time
}

// NewCareHandler creates a CareHandler. loc is the calendar used when the
// request carries no time zone.
func NewCareHandler(svc careService, logger *slog.Logger, loc *time.Location) *CareHandler {
	return &CareHandler{
		svc: svc,
		log: logger.With("handler", "care"),
		loc: loc,
		now: time.Now,
	}
}

// ListLogs handles GET /api/plants/{id}/logs.
func (h *CareHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	logs, err := h.svc.ListLogs(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	now := h.now().In(ctxutil.LocationFromCtx(r.Context(), h.loc))
	writeJSON(w, http.StatusOK, careLogListResponse{
		Logs:             mapSlice(logs, toCareLogResponse),
		RepotElapsedDays: care.RepotElapsedDays(logs, now),
	})
}

// CreateLog handles POST /api/plants/{id}/logs. A missing occurred_at means now.
func (h *CareHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req careLogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var fe domain.FieldErrors
	loc := ctxutil.LocationFromCtx(r.Context(), h.loc)
	occurredAt := h.now()
	if t := parseTimeField(&fe, "occurred_at", req.OccurredAt, loc); t != nil {
		occurredAt = *t
	}
	if err := fe.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.CreateLog(r.Context(), care.CreateLogInput{
		PlantID:        id,
		EventType:      domain.CareEventType(strings.ToUpper(strings.TrimSpace(req.EventType))),
		OccurredAt:     occurredAt,
		FertilizerName: req.FertilizerName,
		Note:           req.Note,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCareLogResponse(l))
}

// GetProfile handles GET /api/plants/{id}/profile.
func (h *CareHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.GetProfile(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCareProfileResponse(p))
}

// UpsertProfile handles PUT /api/plants/{id}/profile.
func (h *CareHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req careProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var fe domain.FieldErrors
	loc := ctxutil.LocationFromCtx(r.Context(), h.loc)
	input := care.UpsertProfileInput{
		PlantID:                   id,
		WateringIntervalDays:      req.WateringIntervalDays,
		FertilizingIntervalDays:   req.FertilizingIntervalDays,
		NextWateringOverrideAt:    parseTimeField(&fe, "next_watering_override_at", req.NextWateringOverrideAt, loc),
		NextFertilizingOverrideAt: parseTimeField(&fe, "next_fertilizing_override_at", req.NextFertilizingOverrideAt, loc),
	}
	if err := fe.Err(); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.UpsertProfile(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCareProfileResponse(p))
}

// Summaries handles GET /api/care-summaries.
func (h *CareHandler) Summaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.LatestSummaries(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]careSummaryResponse, len(summaries))
	for i, s := range summaries {
		resp[i] = careSummaryResponse(s)
	}
	writeJSON(w, http.StatusOK, resp)
}
