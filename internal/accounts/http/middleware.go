package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/lumabank/accounts/internal/accounts/domain"
	"github.com/lumabank/accounts/internal/accounts/service"
	"github.com/lumabank/accounts/pkg/httpx"
	"github.com/lumabank/accounts/pkg/slogx"
)

type ctxKey string

const ctxKeyAccount ctxKey = "account"

// accountFromContext returns the authenticated account placed there by
// AuthnMiddleware.
func accountFromContext(ctx context.Context) (domain.Account, bool) {
	a, ok := ctx.Value(ctxKeyAccount).(domain.Account)
	return a, ok
}

// AuthnMiddleware resolves the "Authorization: Token <value>" header to an
// account and stores it in the request context. Missing or unknown tokens
// and tokens of inactive accounts all get 401.
func AuthnMiddleware(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := extractToken(r)
			if !ok {
				httpx.WriteJSON(w, http.StatusUnauthorized, ErrorResponse{
					Error:            "invalid_token",
					ErrorDescription: "Missing or malformed Authorization header",
				})
				return
			}

			account, err := auth.ResolveToken(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, service.ErrInvalidToken):
					httpx.WriteJSON(w, http.StatusUnauthorized, ErrorResponse{
						Error:            "invalid_token",
						ErrorDescription: "Invalid token",
					})
				case errors.Is(err, service.ErrAccountInactive):
					httpx.WriteJSON(w, http.StatusUnauthorized, ErrorResponse{
						Error:            "account_inactive",
						ErrorDescription: "Account is not active",
					})
				default:
					slogx.FromContext(r.Context()).Error("token resolution failed", "err", err)
					writeServerError(w, "Failed to authenticate request")
				}
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyAccount, account)
			// Expose the account id for per-account rate limiting.
			ctx = context.WithValue(ctx, httpx.CtxKeyAccountID, account.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken pulls the credential out of the Authorization header. The
// "Token" scheme is primary; "Bearer" is accepted as an alias.
func extractToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, value, found := strings.Cut(header, " ")
	if !found || value == "" {
		return "", false
	}
	if !strings.EqualFold(scheme, "Token") && !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	return strings.TrimSpace(value), true
}

// RequireCapability gates a handler on a permission predicate over the
// authenticated account. Runs after AuthnMiddleware; a missing account in
// context is a wiring bug and renders 401 rather than panicking.
func RequireCapability(allowed func(domain.Account) bool) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, ok := accountFromContext(r.Context())
			if !ok {
				httpx.WriteJSON(w, http.StatusUnauthorized, ErrorResponse{
					Error:            "invalid_token",
					ErrorDescription: "Authentication required",
				})
				return
			}
			if !allowed(account) {
				httpx.WriteJSON(w, http.StatusForbidden, ErrorResponse{
					Error:            "access_denied",
					ErrorDescription: "You do not have permission to perform this action",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
