package httpapi

import (
	"encoding/json"
	"net/http"

	"profilescout-engine/internal/secrets"
)

// SecretStore lets tests avoid the OS keychain.
type SecretStore interface {
	Set(account, value string) error
	Delete(account string) error
}

type SecretsHandler struct {
	Store SecretStore
}

// Only the accounts the engine actually reads can be written.
var knownAccounts = map[string]bool{
	secrets.AccountApifyToken:     true,
	secrets.AccountCeipalPassword: true,
	secrets.AccountCeipalAPIKey:   true,
}

type secretReq struct {
	Account string `json:"account"`
	Value   string `json:"value,omitempty"`
}

// Set stores one secret in the OS keychain so a local install doesn't need
// env vars.
func (h SecretsHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req secretReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if !knownAccounts[req.Account] {
		writeError(w, http.StatusBadRequest, "unknown secret account", nil)
		return
	}
	if err := h.Store.Set(req.Account, req.Value); err != nil {
		writeError(w, http.StatusBadRequest, "failed to store secret", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h SecretsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req secretReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if !knownAccounts[req.Account] {
		writeError(w, http.StatusBadRequest, "unknown secret account", nil)
		return
	}
	if err := h.Store.Delete(req.Account); err != nil {
		writeError(w, http.StatusBadRequest, "failed to delete secret", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
