package http

import (
	"net/http"

	"github.com/aussiebroadwan/liaison/internal/liaison/domain"
	"github.com/aussiebroadwan/liaison/internal/liaison/service"
	"github.com/aussiebroadwan/liaison/pkg/httpx"
	"github.com/aussiebroadwan/liaison/pkg/liaisonsdk"
)

type TemplatesHandler struct {
	TemplateService *service.TemplateService
}

// HandleList handles GET /v1/templates
//
//	@Summary	List templates
//	@Tags		Templates
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	liaisonsdk.ListTemplatesResponse	"newest first"
//	@Router		/v1/templates [get]
func (h *TemplatesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	templates, err := h.TemplateService.List(r.Context(), uid)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := liaisonsdk.ListTemplatesResponse{Templates: make([]liaisonsdk.Template, len(templates))}
	for i, t := range templates {
		resp.Templates[i] = toSDKTemplate(t)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /v1/templates/{id}
//
//	@Summary	Get template
//	@Tags		Templates
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Template ID (ULID)"
//	@Success	200	{object}	liaisonsdk.Template
//	@Failure	404	{object}	liaisonsdk.ErrorResponse	"error, error_description"
//	@Router		/v1/templates/{id} [get]
func (h *TemplatesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	t, err := h.TemplateService.Get(r.Context(), uid, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKTemplate(t))
}

// HandleCreate handles POST /v1/templates
//
//	@Summary	Create template
//	@Tags		Templates
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		liaisonsdk.CreateTemplateRequest	true	"Template"
//	@Success	201		{object}	liaisonsdk.Template
//	@Failure	400		{object}	liaisonsdk.ErrorResponse	"error, error_description, fields"
//	@Router		/v1/templates [post]
func (h *TemplatesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req liaisonsdk.CreateTemplateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.TemplateService.Create(r.Context(), uid, domain.TemplateInput{
		Name:    req.Name,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSDKTemplate(t))
}

// HandleUpdate handles PATCH /v1/templates/{id}
//
//	@Summary	Update template
//	@Tags		Templates
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string								true	"Template ID (ULID)"
//	@Param		request	body		liaisonsdk.UpdateTemplateRequest	true	"Fields to change"
//	@Success	200		{object}	liaisonsdk.Template
//	@Failure	400		{object}	liaisonsdk.ErrorResponse	"error, error_description, fields"
//	@Failure	404		{object}	liaisonsdk.ErrorResponse	"error, error_description"
//	@Router		/v1/templates/{id} [patch]
func (h *TemplatesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	var req liaisonsdk.UpdateTemplateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.TemplateService.Update(r.Context(), uid, r.PathValue("id"), domain.TemplatePatch{
		Name:    req.Name,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSDKTemplate(t))
}

// HandleDelete handles DELETE /v1/templates/{id}
//
//	@Summary	Delete template
//	@Tags		Templates
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Template ID (ULID)"
//	@Success	204	"Template deleted"
//	@Failure	404	{object}	liaisonsdk.ErrorResponse	"error, error_description"
//	@Router		/v1/templates/{id} [delete]
func (h *TemplatesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.TemplateService.Delete(r.Context(), uid, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
