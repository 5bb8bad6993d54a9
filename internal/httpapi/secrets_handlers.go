package httpapi

import (
	"encoding/json"
	"net/http"

	"prospector-engine/internal/secrets"
)

type SecretsHandler struct{}

type setAPIKeyReq struct {
	APIKey string `json:"api_key"`
}

// SetAPIKey stores the paid-API credential in the OS keychain. The UI owns
// the prompting; the engine only holds the value.
func (h SecretsHandler) SetAPIKey(w http.ResponseWriter, r *http.Request) {
	var req setAPIKeyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if err := secrets.SetAPIKey(req.APIKey); err != nil {
		http.Error(w, "failed to store API key: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h SecretsHandler) DeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	if err := secrets.DeleteAPIKey(); err != nil {
		http.Error(w, "failed to delete API key: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h SecretsHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"configured": secrets.HasAPIKey()})
}
