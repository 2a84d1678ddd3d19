package api

import (
	"net/http"

	"github.com/phrazzld/signup-api/internal/api/shared"
	"github.com/phrazzld/signup-api/internal/service/verification"
)

// VerificationHandler handles credential verification API requests.
type VerificationHandler struct {
	verifier *verification.Service
}

// NewVerificationHandler creates a new VerificationHandler with the given
// dependencies.
func NewVerificationHandler(verifier *verification.Service) *VerificationHandler {
	return &VerificationHandler{
		verifier: verifier,
	}
}

// VerifyPassword handles POST /password/.
//
// A checked mismatch is a 401 with a fixed message; only a storage-layer
// failure produces a 500. The two are never conflated.
func (h *VerificationHandler) VerifyPassword(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Request body must be JSON")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Both 'username' and 'password' are required")
		return
	}

	ok, err := h.verifier.VerifyCredentials(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if !ok {
		shared.RespondWithJSON(w, r, http.StatusUnauthorized, shared.MessageResponse{
			Message: MsgInvalidCredentials,
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{
		Message: MsgPasswordCorrect,
	})
}
