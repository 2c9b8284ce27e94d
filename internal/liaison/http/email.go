package http

import (
	"net/http"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/internal/liaison/service"
	"github.com/aussiebroadwan/liaison/pkg/httpx"
	"github.com/aussiebroadwan/liaison/pkg/liaisonsdk"
)

type EmailHandler struct {
	EmailService *service.EmailService
}

// ServeHTTP handles POST /v1/email/send
//
//	@Summary		Send email
//	@Description	Sends the subject and body to every recipient separately from the user's mailbox.
//	@Description	A recipient the provider rejects does not fail the request; check each result's status.
//	@Tags			Email
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		liaisonsdk.SendEmailRequest		true	"Recipients and message"
//	@Success		200		{object}	liaisonsdk.SendEmailResponse	"one result per recipient, in order"
//	@Failure		400		{object}	liaisonsdk.ErrorResponse		"error, error_description, fields"
//	@Failure		401		{object}	liaisonsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	liaisonsdk.ErrorResponse		"google_not_connected or google_reconnect_required"
//	@Failure		404		{object}	liaisonsdk.ErrorResponse		"unknown client or template"
//	@Failure		502		{object}	liaisonsdk.ErrorResponse		"dispatch_failed"
//	@Router			/v1/email/send [post]
func (h *EmailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req liaisonsdk.SendEmailRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	outcomes, err := h.EmailService.SendFromRequest(r.Context(), uid, domain.SendRequest{
		Recipients: req.Recipients,
		Subject:    req.Subject,
		Body:       req.Body,
		ClientIDs:  req.ClientIDs,
		TemplateID: req.TemplateID,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSendEmailResponse(outcomes))
}
