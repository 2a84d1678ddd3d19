package api

import (
	"net/http"

	"github.com/phrazzld/signup-api/internal/api/shared"
	"github.com/phrazzld/signup-api/internal/service/account"
)

// AccountHandler handles account registration API requests.
type AccountHandler struct {
	accounts *account.Service
}

// NewAccountHandler creates a new AccountHandler with the given dependencies.
func NewAccountHandler(accounts *account.Service) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
	}
}

// CreateAccount handles POST /users/.
//
// The body is decoded as a flat string map rather than a fixed struct so
// that which-field-is-missing reporting stays in the service layer, where
// the validation order is defined.
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var fields map[string]string
	if err := shared.DecodeJSON(r, &fields); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Request body must be JSON")
		return
	}

	view, err := h.accounts.CreateAccount(r.Context(), fields)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, view)
}
