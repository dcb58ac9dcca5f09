package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/plantcare-backend/internal/domain"
	"github.com/heartmarshall/plantcare-backend/internal/service/schedule"
	"github.com/heartmarshall/plantcare-backend/pkg/ctxutil"
)

type scheduleService interface {
	ListSchedules(ctx context.Context) ([]domain.CareSchedule, error)
	ListCareEvents(ctx context.Context, input schedule.RangeInput) ([]domain.CareScheduleEvent, error)
	CalendarFeed(ctx context.Context, input schedule.RangeInput) ([]byte, error)
}

// ScheduleHandler serves the derived schedule and calendar endpoints.
type ScheduleHandler struct {
	svc scheduleService
	log *slog.Logger
	loc *time.Location
}

// NewScheduleHandler creates a ScheduleHandler. loc is the calendar range
// bounds are read in when the request carries no time zone.
func NewScheduleHandler(svc scheduleService, logger *slog.Logger, loc *time.Location) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, log: logger.With("handler", "schedule"), loc: loc}
}

// Schedules handles GET /api/schedules.
func (h *ScheduleHandler) Schedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.svc.ListSchedules(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]scheduleResponse, len(schedules))
	for i, s := range schedules {
		resp[i] = scheduleResponse(s)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Events handles GET /api/events?from=&to=.
func (h *ScheduleHandler) Events(w http.ResponseWriter, r *http.Request) {
	input, err := rangeQuery(r, ctxutil.LocationFromCtx(r.Context(), h.loc))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	events, err := h.svc.ListCareEvents(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]eventResponse, len(events))
	for i, e := range events {
		resp[i] = eventResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Calendar handles GET /api/calendar.ics?from=&to=.
func (h *ScheduleHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	input, err := rangeQuery(r, ctxutil.LocationFromCtx(r.Context(), h.loc))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	feed, err := h.svc.CalendarFeed(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="plantcare.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write(feed) //nolint:errcheck
}

// rangeQuery reads the from/to query parameters, dates without an offset in
// loc. Missing values are left zero for the service to reject.
func rangeQuery(r *http.Request, loc *time.Location) (schedule.RangeInput, error) {
	var (
		fe    domain.FieldErrors
		input schedule.RangeInput
	)
	q := r.URL.Query()
	for _, p := range []struct {
		name string
		dst  *time.Time
	}{{"from", &input.From}, {"to", &input.To}} {
		v := q.Get(p.name)
		if t := parseTimeField(&fe, p.name, &v, loc); t != nil {
			*p.dst = *t
		}
	}
	return input, fe.Err()
}
