package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/lumabank/accounts/internal/accounts/domain"
	"github.com/lumabank/accounts/internal/accounts/store"
	"github.com/lumabank/accounts/pkg/httpx"
)

// validate is shared across handlers; validator.Validate is safe for
// concurrent use.
var validate = validator.New()

// ErrorResponse is the error envelope every endpoint renders. Fields is
// only present on validation errors and maps field name to message.
type ErrorResponse struct {
	Error            string            `json:"error"`
	ErrorDescription string            `json:"error_description"`
	Fields           map[string]string `json:"fields,omitempty"`
}

// AccountResponse renders the non-sensitive account fields.
type AccountResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	PassportNumber string `json:"passport_number"`
	Balance        string `json:"balance"`
	IsActive       bool   `json:"is_active"`
	IsClosed       bool   `json:"is_closed"`
}

func toAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		ID:             a.ID,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		Email:          a.Email,
		PassportNumber: a.PassportNumber,
		Balance:        a.Balance(),
		IsActive:       a.IsActive,
		IsClosed:       a.IsClosed,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type RegisterRequest struct {
	FirstName      string `json:"first_name" validate:"required,max=64"`
	LastName       string `json:"last_name" validate:"required,max=64"`
	Email          string `json:"email" validate:"required,email"`
	PassportNumber string `json:"passport_number" validate:"required,max=32"`
}

type RegisterResponse struct {
	AccountResponse
	Token string `json:"token"`
}

type ProfileUpdateRequest struct {
	FirstName      string `json:"first_name" validate:"required,max=64"`
	LastName       string `json:"last_name" validate:"required,max=64"`
	Email          string `json:"email" validate:"required,email"`
	PassportNumber string `json:"passport_number" validate:"required,max=32"`
}

type ProvidePINRequest struct {
	Password  string `json:"password" validate:"required,min=4,max=64"`
	Password1 string `json:"password1" validate:"required"`
}

type LifecycleRequest struct {
	IsActive bool `json:"is_active"`
	IsClosed bool `json:"is_closed"`
}

// decodeJSON parses the request body into dst and runs the validator tags.
// On failure it writes the validation_error envelope and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:            "validation_error",
			ErrorDescription: "Request body is not valid JSON",
		})
		return false
	}

	if err := validate.Struct(dst); err != nil {
		fields := map[string]string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fieldName(fe)] = fieldMessage(fe)
			}
		}
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:            "validation_error",
			ErrorDescription: "One or more fields are invalid",
			Fields:           fields,
		})
		return false
	}
	return true
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "FirstName":
		return "first_name"
	case "LastName":
		return "last_name"
	case "PassportNumber":
		return "passport_number"
	case "Password1":
		return "password1"
	default:
		// Email, Password and friends lowercase cleanly.
		return toSnake(fe.Field())
	}
}

func toSnake(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				out = append(out, '_')
			}
			c += 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "invalid value"
	}
}

// writeConflict maps store uniqueness sentinels to field-level validation
// errors. Returns false when err is not a uniqueness violation.
func writeConflict(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, store.ErrEmailExists):
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:            "validation_error",
			ErrorDescription: "One or more fields are invalid",
			Fields:           map[string]string{"email": "an account with this email already exists"},
		})
	case errors.Is(err, store.ErrPassportExists):
		httpx.WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:            "validation_error",
			ErrorDescription: "One or more fields are invalid",
			Fields:           map[string]string{"passport_number": "an account with this passport number already exists"},
		})
	default:
		return false
	}
	return true
}

func writeServerError(w http.ResponseWriter, description string) {
	httpx.WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:            "server_error",
		ErrorDescription: description,
	})
}
