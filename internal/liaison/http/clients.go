package http

import (
	"net/http"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/internal/liaison/service"
	"github.com/aussiebroadwan/liaison/pkg/httpx"
	"github.com/aussiebroadwan/liaison/pkg/liaisonsdk"
)

// ClientsHandler serves the caller's contact records. Another user's
// client is reported as not found.
type ClientsHandler struct {
	ClientService *service.ClientService
}

// HandleList handles GET /v1/clients
//
//	@Summary		List clients
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	liaisonsdk.ListClientsResponse	"newest first"
//	@Failure		401	{object}	liaisonsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/clients [get]
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	clients, err := h.ClientService.List(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := liaisonsdk.ListClientsResponse{Clients: make([]liaisonsdk.Client, len(clients))}
	for i, c := range clients {
		resp.Clients[i] = toSDKClient(c)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /v1/clients/{id}
//
//	@Summary		Get client
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Client ID (ULID)"
//	@Success		200	{object}	liaisonsdk.Client
//	@Failure		404	{object}	liaisonsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients/{id} [get]
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	c, err := h.ClientService.Get(r.Context(), uid, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKClient(c))
}

// HandleCreate handles POST /v1/clients
//
//	@Summary		Create client
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		liaisonsdk.CreateClientRequest	true	"Client"
//	@Success		201		{object}	liaisonsdk.Client
//	@Failure		400		{object}	liaisonsdk.ErrorResponse	"error, error_description, fields"
//	@Router			/v1/clients [post]
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req liaisonsdk.CreateClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.ClientService.Create(r.Context(), uid, domain.ClientInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSDKClient(c))
}

// HandleUpdate handles PATCH /v1/clients/{id}
//
//	@Summary		Update client
//	@Description	Changes only the fields present. An empty phone or notes clears it.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Client ID (ULID)"
//	@Param			request	body		liaisonsdk.UpdateClientRequest	true	"Fields to change"
//	@Success		200		{object}	liaisonsdk.Client
//	@Failure		400		{object}	liaisonsdk.ErrorResponse	"error, error_description, fields"
//	@Failure		404		{object}	liaisonsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients/{id} [patch]
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req liaisonsdk.UpdateClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.ClientService.Update(r.Context(), uid, r.PathValue("id"), domain.ClientPatch{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKClient(c))
}

// HandleDelete handles DELETE /v1/clients/{id}
//
//	@Summary		Delete client
//	@Tags			Clients
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Client ID (ULID)"
//	@Success		204	"Client deleted"
//	@Failure		404	{object}	liaisonsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/clients/{id} [delete]
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.ClientService.Delete(r.Context(), uid, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
