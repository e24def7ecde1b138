package http

import (
	"errors"
	"net/http"

	"github.com/lumabank/accounts/internal/accounts/service"
	"github.com/lumabank/accounts/internal/accounts/store"
	"github.com/lumabank/accounts/pkg/httpx"
	"github.com/lumabank/accounts/pkg/slogx"
)

type ManagerClientsHandler struct {
	ManagerService *service.ManagerService
}

// HandleList godoc
//
//	@Summary		List Clients Endpoint
//	@Description	List client accounts. Manager and staff accounts never appear.
//	@Tags			Managers
//	@Produce		json
//	@Security		TokenAuth
//	@Param			is_active	query		bool	false	"filter on activation state"
//	@Param			is_closed	query		bool	false	"filter on closed state"
//	@Success		200			{array}		AccountResponse	"client summaries"
//	@Failure		400			{object}	ErrorResponse	"error, error_description"
//	@Failure		401			{object}	ErrorResponse	"error, error_description"
//	@Failure		403			{object}	ErrorResponse	"error, error_description"
//	@Router			/api/account/manager/clients [get].
func (h *ManagerClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var filter store.ClientFilter
	var ok bool
	if filter.IsActive, ok = boolQueryParam(w, r, "is_active"); !ok {
		return
	}
	if filter.IsClosed, ok = boolQueryParam(w, r, "is_closed"); !ok {
		return
	}

	clients, err := h.ManagerService.ListClients(ctx, filter)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list clients", "err", err)
		writeServerError(w, "Failed to list clients")
		return
	}

	out := make([]AccountResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toAccountResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary		Client Detail Endpoint
//	@Description	Return one client account by id. Ids of non-client accounts behave as missing.
//	@Tags			Managers
//	@Produce		json
//	@Security		TokenAuth
//	@Param			id	path		string			true	"account id"
//	@Success		200	{object}	AccountResponse	"profile fields"
//	@Failure		401	{object}	ErrorResponse	"error, error_description"
//	@Failure		403	{object}	ErrorResponse	"error, error_description"
//	@Failure		404	{object}	ErrorResponse	"error, error_description"
//	@Router			/api/account/manager/clients/{id} [get].
func (h *ManagerClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	client, err := h.ManagerService.GetClient(ctx, r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err, "Failed to load client")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAccountResponse(client))
}

// HandlePut godoc
//
//	@Summary		Update Client Lifecycle Endpoint
//	@Description	Set the is_active and is_closed flags on a client account
//	@Tags			Managers
//	@Accept			json
//	@Produce		json
//	@Security		TokenAuth
//	@Param			id		path		string				true	"account id"
//	@Param			request	body		LifecycleRequest	true	"is_active, is_closed"
//	@Success		200		{object}	AccountResponse		"profile fields"
//	@Failure		400		{object}	ErrorResponse		"error, error_description"
//	@Failure		401		{object}	ErrorResponse		"error, error_description"
//	@Failure		403		{object}	ErrorResponse		"error, error_description"
//	@Failure		404		{object}	ErrorResponse		"error, error_description"
//	@Router			/api/account/manager/clients/{id} [put].
func (h *ManagerClientsHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LifecycleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	client, err := h.ManagerService.UpdateClient(ctx, r.PathValue("id"), service.LifecycleUpdate{
		IsActive: req.IsActive,
		IsClosed: req.IsClosed,
	})
	if err != nil {
		h.writeError(w, r, err, "Failed to update client")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAccountResponse(client))
}

// HandleDelete godoc
//
//	@Summary		Delete Client Endpoint
//	@Description	Hard-delete a client account. The bearer token is removed with it.
//	@Tags			Managers
//	@Security		TokenAuth
//	@Param			id	path	string	true	"account id"
//	@Success		204	"deleted"
//	@Failure		401	{object}	ErrorResponse	"error, error_description"
//	@Failure		403	{object}	ErrorResponse	"error, error_description"
//	@Failure		404	{object}	ErrorResponse	"error, error_description"
//	@Router			/api/account/manager/clients/{id} [delete].
func (h *ManagerClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.ManagerService.DeleteClient(ctx, r.PathValue("id")); err != nil {
		h.writeError(w, r, err, "Failed to delete client")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ManagerClientsHandler) writeError(w http.ResponseWriter, r *http.Request, err error, description string) {
	if errors.Is(err, store.ErrNotFound) {
		httpx.WriteJSON(w, http.StatusNotFound, ErrorResponse{
			Error:            "not_found",
			ErrorDescription: "No such client",
		})
		return
	}
	slogx.FromContext(r.Context()).Error("manager operation failed", "err", err)
	writeServerError(w, description)
}

// boolQueryParam parses an optional boolean query parameter. A missing or
// blank parameter yields nil; anything unparsable renders 400 and returns
// ok=false.
func boolQueryParam(w http.ResponseWriter, r *http.Request, name string) (*bool, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	switch raw {
	case "true", "1":
		v := true
		return &v, true
	case "false", "0":
		v := false
		return &v, true
	}
	httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:            "validation_error",
		ErrorDescription: "One or more fields are invalid",
		Fields:           map[string]string{name: "must be true or false"},
	})
	return nil, false
}
