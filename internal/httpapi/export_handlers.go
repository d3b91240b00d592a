package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"profilescout-engine/internal/domain"
	"profilescout-engine/internal/export"
)

// PDFRenderer lets tests stub out headless Chrome.
type PDFRenderer interface {
	Render(ctx context.Context, profiles []domain.NormalizedProfile) ([]byte, error)
}

type ExportHandler struct {
	PDF PDFRenderer
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h ExportHandler) Excel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Data []domain.NormalizedProfile `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if len(body.Data) == 0 {
		writeError(w, http.StatusBadRequest, "no profiles to export", nil)
		return
	}

	buf, err := export.Excel(body.Data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error generating Excel file", err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="linkedin-profiles.xlsx"`)
	_, _ = w.Write(buf)
}

func (h ExportHandler) PDFDownload(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Profile domain.NormalizedProfile `json:"profile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	buf, err := h.PDF.Render(r.Context(), []domain.NormalizedProfile{body.Profile})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error generating PDF", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+pdfFileName(body.Profile)+`"`)
	_, _ = w.Write(buf)
}

func pdfFileName(p domain.NormalizedProfile) string {
	name := strings.Join(strings.Fields(p.FullName), "_")
	if name == "" {
		name = "profile"
	}
	return name + ".pdf"
}
