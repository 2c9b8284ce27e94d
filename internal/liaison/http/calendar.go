package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/liaison/internal/liaison/service"
	"github.com/aussiebroadwan/liaison/pkg/httpx"
	"github.com/aussiebroadwan/liaison/pkg/liaisonsdk"
)

type CalendarHandler struct {
	CalendarService *service.CalendarService
}

// ServeHTTP handles GET /v1/calendar/events
//
//	@Summary		List calendar events
//	@Description	Lists up to 50 events of the user's primary calendar, recurring events expanded, ordered by start time.
//	@Tags			Calendar
//	@Produce		json
//	@Security		BearerAuth
//	@Param			timeMin	query		string	false	"RFC3339 lower bound (default now)"
//	@Param			timeMax	query		string	false	"RFC3339 upper bound"
//	@Success		200		{array}		liaisonsdk.Event
//	@Failure		400		{object}	liaisonsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	liaisonsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	liaisonsdk.ErrorResponse	"google_not_connected or google_reconnect_required"
//	@Failure		502		{object}	liaisonsdk.ErrorResponse	"dispatch_failed"
//	@Router			/v1/calendar/events [get]
func (h *CalendarHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	timeMin, ok := parseTimeParam(w, r, "timeMin")
	if !ok {
		return
	}
	timeMax, ok := parseTimeParam(w, r, "timeMax")
	if !ok {
		return
	}

	events, err := h.CalendarService.ListEvents(r.Context(), uid, timeMin, timeMax)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKEvents(events))
}

func parseTimeParam(w http.ResponseWriter, r *http.Request, name string) (*time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		(&liaisonsdk.APIError{
			StatusCode:  http.StatusBadRequest,
			Code:        liaisonsdk.ErrorCodeValidation,
			Description: name + " must be an RFC3339 timestamp",
			Fields:      map[string]string{name: "must be an RFC3339 timestamp"},
		}).WriteError(w)
		return nil, false
	}
	return &t, true
}
