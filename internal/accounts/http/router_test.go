package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumabank/accounts/internal/accounts/domain"
	"github.com/lumabank/accounts/internal/accounts/mail"
	"github.com/lumabank/accounts/internal/accounts/service"
	"github.com/lumabank/accounts/internal/accounts/store"
	"github.com/lumabank/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/lumabank/accounts/pkg/cryptox"
	"github.com/lumabank/accounts/pkg/idx"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "accounts-http-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

type testEnv struct {
	router *Router
	store  store.Store
	mailer *mail.LogMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "accounts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mailer := &mail.LogMailer{Logger: logger}

	router := NewRouter("test", st, logger)
	router.AuthService = &service.AuthService{Store: st}
	router.RegisterService = &service.RegisterService{Store: st, Mailer: mailer}
	router.ProfileService = &service.ProfileService{Store: st}
	router.ManagerService = &service.ManagerService{Store: st}
	router.ApplyRoutes()

	return &testEnv{router: router, store: st, mailer: mailer}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) seed(t *testing.T, a domain.Account) (domain.Account, string) {
	t.Helper()
	ctx := context.Background()

	if a.ID == "" {
		a.ID = idx.New().String()
	}
	tokenValue, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)

	require.NoError(t, e.store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Accounts().CreateAccount(ctx, a); err != nil {
			return err
		}
		return tx.Tokens().CreateToken(ctx, domain.Token{Value: tokenValue, AccountID: a.ID})
	}))
	return a, tokenValue
}

func (e *testEnv) seedClient(t *testing.T, email, passport, pin string, active bool) (domain.Account, string) {
	t.Helper()

	a := domain.Account{
		Email: email, PassportNumber: passport,
		FirstName: "Grace", LastName: "Hopper",
		Role: domain.RoleClient, IsActive: active,
	}
	if pin != "" {
		hash, err := cryptox.HashPIN(pin)
		require.NoError(t, err)
		a.PINHash = &hash
	}
	return e.seed(t, a)
}

func (e *testEnv) seedManager(t *testing.T, email, passport string) (domain.Account, string) {
	t.Helper()
	return e.seed(t, domain.Account{
		Email: email, PassportNumber: passport,
		FirstName: "Max", LastName: "Planck",
		Role: domain.RoleManager, IsActive: true,
	})
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/account/client/register", "", map[string]string{
		"first_name":      "Ada",
		"last_name":       "Lovelace",
		"email":           "ada@example.com",
		"passport_number": "AB123456",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeBody[RegisterResponse](t, rec)
	require.NotEmpty(t, resp.ID)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "ada@example.com", resp.Email)
	require.Equal(t, "0.00", resp.Balance)
	require.False(t, resp.IsActive)

	// Duplicate email renders a field-level validation error.
	rec = env.do(t, http.MethodPost, "/api/account/client/register", "", map[string]string{
		"first_name":      "Eva",
		"last_name":       "Crane",
		"email":           "ada@example.com",
		"passport_number": "XY999999",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decodeBody[ErrorResponse](t, rec)
	require.Equal(t, "validation_error", errResp.Error)
	require.Contains(t, errResp.Fields, "email")
}

func TestRegisterEndpointValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/account/client/register", "", map[string]string{
		"first_name": "Ada",
		"email":      "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errResp := decodeBody[ErrorResponse](t, rec)
	require.Equal(t, "validation_error", errResp.Error)
	require.Contains(t, errResp.Fields, "email")
	require.Contains(t, errResp.Fields, "last_name")
	require.Contains(t, errResp.Fields, "passport_number")
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedClient(t, "grace@example.com", "GH555555", "4821", true)

	t.Run("ok", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/account/login", "", map[string]string{
			"email":    "grace@example.com",
			"password": "4821",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[LoginResponse](t, rec)
		require.Equal(t, "grace@example.com", resp.Email)
		require.Equal(t, token, resp.Token)
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/account/login", "", map[string]string{
			"email":    "nobody@example.com",
			"password": "4821",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeBody[ErrorResponse](t, rec)
		require.Equal(t, "invalid_credentials", resp.Error)
		require.Equal(t, "this email is not valid", resp.ErrorDescription)
	})

	t.Run("wrong pin", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/account/login", "", map[string]string{
			"email":    "grace@example.com",
			"password": "0000",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeBody[ErrorResponse](t, rec)
		require.Equal(t, "invalid_credentials", resp.Error)
		require.Equal(t, "incorrect credentials", resp.ErrorDescription)
	})
}

func TestProfileEndpointAccess(t *testing.T) {
	env := newTestEnv(t)

	_, withPIN := env.seedClient(t, "grace@example.com", "GH555555", "4821", true)
	_, noPIN := env.seedClient(t, "fresh@example.com", "FR777777", "", true)
	_, inactive := env.seedClient(t, "idle@example.com", "ID999999", "4821", false)
	_, managerToken := env.seedManager(t, "boss@example.com", "MG000001")

	t.Run("client with pin gets profile", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/account/client/profile", withPIN, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[AccountResponse](t, rec)
		require.Equal(t, "grace@example.com", resp.Email)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/account/client/profile", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown token is 401", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/account/client/profile", "bogus", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeBody[ErrorResponse](t, rec)
		require.Equal(t, "invalid_token", resp.Error)
	})

	t.Run("inactive account token is 401", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/account/client/profile", inactive, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeBody[ErrorResponse](t, rec)
		require.Equal(t, "account_inactive", resp.Error)
	})

	t.Run("client without pin is 403", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/account/client/profile", noPIN, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
		resp := decodeBody[ErrorResponse](t, rec)
		require.Equal(t, "access_denied", resp.Error)
	})

	t.Run("manager is 403", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/account/client/profile", managerToken, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestProfileUpdateEndpoint(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedClient(t, "grace@example.com", "GH555555", "4821", true)

	rec := env.do(t, http.MethodPut, "/api/account/client/profile", token, map[string]string{
		"first_name":      "Grace",
		"last_name":       "Murray-Hopper",
		"email":           "grace.mh@example.com",
		"passport_number": "GH555555",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[AccountResponse](t, rec)
	require.Equal(t, "Murray-Hopper", resp.LastName)
	require.Equal(t, "grace.mh@example.com", resp.Email)
}

func TestProvidePINEndpoint(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedClient(t, "fresh@example.com", "FR777777", "", true)

	t.Run("mismatch", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/account/client/provide_pin", token, map[string]string{
			"password":  "4821",
			"password1": "1284",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeBody[ErrorResponse](t, rec)
		require.Equal(t, "pins_dont_match", resp.Error)
	})

	t.Run("set then login", func(t *testing.T) {
		rec := env.do(t, http.MethodPut, "/api/account/client/provide_pin", token, map[string]string{
			"password":  "4821",
			"password1": "4821",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, http.MethodPost, "/api/account/login", "", map[string]string{
			"email":    "fresh@example.com",
			"password": "4821",
		})
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestManagerEndpoints(t *testing.T) {
	env := newTestEnv(t)

	client, clientToken := env.seedClient(t, "grace@example.com", "GH555555", "4821", false)
	closed, _ := env.seed(t, domain.Account{
		Email: "closed@example.com", PassportNumber: "CL222222",
		FirstName: "Closed", LastName: "Client",
		Role: domain.RoleClient, IsActive: true, IsClosed: true,
	})
	manager, managerToken := env.seedManager(t, "boss@example.com", "MG000001")

	t.Run("client cannot use manager endpoints", func(t *testing.T) {
		// Activate so the token authenticates, then expect 403.
		require.NoError(t, env.store.Accounts().UpdateLifecycle(context.Background(), client.ID, true, false))

		rec := env.do(t, http.MethodGet, "/api/account/manager/clients", clientToken, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("list with filter", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/account/manager/clients", managerToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		all := decodeBody[[]AccountResponse](t, rec)
		require.Len(t, all, 2, "the manager account must not be listed")

		rec = env.do(t, http.MethodGet, "/api/account/manager/clients?is_closed=true", managerToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		onlyClosed := decodeBody[[]AccountResponse](t, rec)
		require.Len(t, onlyClosed, 1)
		require.Equal(t, closed.ID, onlyClosed[0].ID)
	})

	t.Run("detail and lifecycle update", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/account/manager/clients/"+client.ID, managerToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, http.MethodPut, "/api/account/manager/clients/"+client.ID, managerToken, map[string]bool{
			"is_active": true,
			"is_closed": false,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[AccountResponse](t, rec)
		require.True(t, resp.IsActive)
	})

	t.Run("manager id behaves as missing", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/account/manager/clients/"+manager.ID, managerToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := env.do(t, http.MethodDelete, "/api/account/manager/clients/"+closed.ID, managerToken, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = env.do(t, http.MethodGet, "/api/account/manager/clients/"+closed.ID, managerToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	live := decodeBody[HealthResponse](t, rec)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	rec = env.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ready := decodeBody[HealthResponse](t, rec)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}
