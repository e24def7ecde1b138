package http

import (
	"net/http"

	"github.com/lumabank/accounts/internal/accounts/service"
	"github.com/lumabank/accounts/pkg/httpx"
	"github.com/lumabank/accounts/pkg/slogx"
)

type ProvidePINHandler struct {
	ProfileService *service.ProfileService
}

// ServeHTTP godoc
//
//	@Summary		Provide PIN Endpoint
//	@Description	Set or change the account PIN. Both fields must carry the same value.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		TokenAuth
//	@Param			request	body		ProvidePINRequest	true	"password, password1"
//	@Success		200		{object}	AccountResponse		"profile fields"
//	@Failure		400		{object}	ErrorResponse		"error, error_description"
//	@Failure		401		{object}	ErrorResponse		"error, error_description"
//	@Failure		403		{object}	ErrorResponse		"error, error_description"
//	@Router			/api/account/client/provide_pin [put].
func (h *ProvidePINHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProvidePINRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Password != req.Password1 {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:            "pins_dont_match",
			ErrorDescription: "The two PIN fields do not match",
		})
		return
	}

	account, _ := accountFromContext(ctx)
	if err := h.ProfileService.SetPIN(ctx, account.ID, req.Password); err != nil {
		slogx.FromContext(ctx).Error("failed to set pin", "err", err)
		writeServerError(w, "Failed to set PIN")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAccountResponse(account))
}
