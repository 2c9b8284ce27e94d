package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/liaison/internal/liaison/service"
	"github.com/aussiebroadwan/liaison/pkg/httpx"
	"github.com/aussiebroadwan/liaison/pkg/liaisonsdk"
	"github.com/aussiebroadwan/liaison/pkg/slogx"
)

// GoogleHandler runs the consent flow and reports the connection state.
type GoogleHandler struct {
	ConnectionService *service.ConnectionService

	// AppBaseURL is where the browser lands after the callback.
	AppBaseURL string
}

// HandleConnect handles GET /v1/google/connect
//
//	@Summary		Start Google consent
//	@Description	Redirects the browser to Google's consent screen asking for offline calendar read and mail send access.
//	@Tags			Google
//	@Security		BearerAuth
//	@Success		302	"Redirect to Google"
//	@Failure		401	{object}	liaisonsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	liaisonsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/google/connect [get]
func (h *GoogleHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	authURL, err := h.ConnectionService.BeginConnect(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	http.Redirect(w, r, authURL, http.StatusFound)
}

// HandleCallback handles GET /v1/google/callback
//
//	@Summary		Google consent callback
//	@Description	Completes the consent flow. Always redirects back to the app dashboard with google_connected=true or google_error=true.
//	@Tags			Google
//	@Param			code	query	string	false	"Authorization code"
//	@Param			state	query	string	false	"State issued by /v1/google/connect"
//	@Param			error	query	string	false	"Error reported by Google"
//	@Success		302		"Redirect to the app"
//	@Router			/v1/google/callback [get]
func (h *GoogleHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	q := r.URL.Query()

	if denied := q.Get("error"); denied != "" {
		log.Info("google consent denied", "reason", denied)
		h.redirectToApp(w, r, false)
		return
	}

	_, err := h.ConnectionService.CompleteConnect(ctx, q.Get("state"), q.Get("code"))
	if err != nil {
		if !errors.Is(err, service.ErrInvalidState) && !errors.Is(err, service.ErrCodeExchangeFailed) {
			log.Error("google callback failed", "error", err)
		}
		h.redirectToApp(w, r, false)
		return
	}

	h.redirectToApp(w, r, true)
}

func (h *GoogleHandler) redirectToApp(w http.ResponseWriter, r *http.Request, connected bool) {
	q := url.Values{}
	if connected {
		q.Set("google_connected", "true")
	} else {
		q.Set("google_error", "true")
	}

	httpx.NoCache(w)
	http.Redirect(w, r, strings.TrimSuffix(h.AppBaseURL, "/")+"/dashboard?"+q.Encode(), http.StatusFound)
}

// HandleStatus handles GET /v1/google/status
//
//	@Summary		Google connection status
//	@Tags			Google
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	liaisonsdk.ConnectionStatusResponse
//	@Failure		401	{object}	liaisonsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	liaisonsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/google/status [get]
func (h *GoogleHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	connected, err := h.ConnectionService.ConnectionStatus(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, liaisonsdk.ConnectionStatusResponse{Connected: connected})
}

// HandleDisconnect handles POST /v1/google/disconnect
//
//	@Summary		Disconnect Google
//	@Description	Forgets the stored credential. Succeeds when nothing is connected.
//	@Tags			Google
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	liaisonsdk.DisconnectResponse
//	@Failure		401	{object}	liaisonsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	liaisonsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/google/disconnect [post]
func (h *GoogleHandler) HandleDisconnect(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.ConnectionService.DeleteConnection(r.Context(), uid); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, liaisonsdk.DisconnectResponse{Success: true})
}
