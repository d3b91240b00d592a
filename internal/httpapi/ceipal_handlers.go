package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"profilescout-engine/internal/domain"
)

// ApplicantSink is the slice of the Ceipal client the handler needs.
type ApplicantSink interface {
	CreateApplicant(ctx context.Context, p domain.NormalizedProfile) (map[string]any, error)
}

type CeipalHandler struct {
	Sink ApplicantSink
}

func (h CeipalHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Profile domain.NormalizedProfile `json:"profile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.Sink.CreateApplicant(r.Context(), body.Profile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error syncing data to Ceipal", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Successfully synced profile to Ceipal",
		"data":    result,
	})
}
