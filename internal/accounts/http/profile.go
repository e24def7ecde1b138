package http

import (
	"net/http"

	"github.com/lumabank/accounts/internal/accounts/service"
	"github.com/lumabank/accounts/internal/accounts/store"
	"github.com/lumabank/accounts/pkg/httpx"
	"github.com/lumabank/accounts/pkg/slogx"
)

type ProfileHandler struct {
	ProfileService *service.ProfileService
}

// HandleGet godoc
//
//	@Summary		Get Profile Endpoint
//	@Description	Return the authenticated client's profile, including the rendered balance
//	@Tags			Clients
//	@Produce		json
//	@Security		TokenAuth
//	@Success		200	{object}	AccountResponse	"profile fields"
//	@Failure		401	{object}	ErrorResponse	"error, error_description"
//	@Failure		403	{object}	ErrorResponse	"error, error_description"
//	@Router			/api/account/client/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	account, _ := accountFromContext(ctx)
	fresh, err := h.ProfileService.GetProfile(ctx, account.ID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to load profile", "err", err)
		writeServerError(w, "Failed to load profile")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAccountResponse(fresh))
}

// HandlePut godoc
//
//	@Summary		Update Profile Endpoint
//	@Description	Update the client-editable profile fields. Balance and lifecycle flags are read-only.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		TokenAuth
//	@Param			request	body		ProfileUpdateRequest	true	"first_name, last_name, email, passport_number"
//	@Success		200		{object}	AccountResponse			"profile fields"
//	@Failure		400		{object}	ErrorResponse			"error, error_description, fields"
//	@Failure		401		{object}	ErrorResponse			"error, error_description"
//	@Failure		403		{object}	ErrorResponse			"error, error_description"
//	@Router			/api/account/client/profile [put].
func (h *ProfileHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProfileUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, _ := accountFromContext(ctx)
	updated, err := h.ProfileService.UpdateProfile(ctx, account.ID, store.ProfileUpdate{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PassportNumber: req.PassportNumber,
	})
	if err != nil {
		if writeConflict(w, err) {
			return
		}
		slogx.FromContext(ctx).Error("failed to update profile", "err", err)
		writeServerError(w, "Failed to update profile")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAccountResponse(updated))
}
