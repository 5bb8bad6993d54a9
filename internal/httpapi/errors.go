package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"prospector-engine/internal/lookup"
)

type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		Balance   *int   `json:"balance,omitempty"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}

// WriteLookupError maps the lookup error taxonomy onto HTTP for the UI:
// missing credential, insufficient balance (message keeps the remaining
// count), everything else generic.
func WriteLookupError(w http.ResponseWriter, r *http.Request, err error) {
	if lookup.IsNotConfigured(err) {
		WriteError(w, r, http.StatusUnauthorized, "not_configured", err.Error())
		return
	}

	var ice *lookup.InsufficientCreditsError
	if errors.As(err, &ice) {
		var e APIError
		e.Error.Code = "insufficient_credits"
		e.Error.Message = ice.Error()
		e.Error.Balance = &ice.Balance
		e.Error.RequestID = RequestIDFrom(r.Context())
		WriteJSON(w, http.StatusPaymentRequired, e)
		return
	}

	WriteError(w, r, http.StatusBadGateway, "lookup_failed", err.Error())
}
