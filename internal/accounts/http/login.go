package http

import (
	"errors"
	"net/http"

	"github.com/lumabank/accounts/internal/accounts/service"
	"github.com/lumabank/accounts/pkg/httpx"
	"github.com/lumabank/accounts/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchange an email and PIN for the account's bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"email, password"
//	@Success		200		{object}	LoginResponse	"email, token"
//	@Failure		400		{object}	ErrorResponse	"error, error_description"
//	@Failure		500		{object}	ErrorResponse	"error, error_description"
//	@Router			/api/account/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, token, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownEmail):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:            "invalid_credentials",
				ErrorDescription: "this email is not valid",
			})
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:            "invalid_credentials",
				ErrorDescription: "incorrect credentials",
			})
		default:
			log.Error("login failed", "err", err)
			writeServerError(w, "Failed to process login")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		Email: account.Email,
		Token: token.Value,
	})
}
