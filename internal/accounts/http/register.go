package http

import (
	"net/http"

	"github.com/lumabank/accounts/internal/accounts/service"
	"github.com/lumabank/accounts/pkg/httpx"
	"github.com/lumabank/accounts/pkg/slogx"
)

type RegisterHandler struct {
	RegisterService *service.RegisterService
}

// ServeHTTP godoc
//
//	@Summary		Client Registration Endpoint
//	@Description	Create an inactive client account and its bearer token.
//	@Description	Managers are notified by email and the client receives a welcome message.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest		true	"first_name, last_name, email, passport_number"
//	@Success		201		{object}	RegisterResponse	"profile fields and token"
//	@Failure		400		{object}	ErrorResponse		"error, error_description, fields"
//	@Failure		500		{object}	ErrorResponse		"error, error_description"
//	@Router			/api/account/client/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, token, err := h.RegisterService.Register(ctx, service.RegisterInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PassportNumber: req.PassportNumber,
	})
	if err != nil {
		if writeConflict(w, err) {
			return
		}
		log.Error("registration failed", "err", err)
		writeServerError(w, "Failed to register account")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, RegisterResponse{
		AccountResponse: toAccountResponse(account),
		Token:           token.Value,
	})
}
