package httpadapter

import (
	"errors"
	"io"
	"net/http"

	"bagpresto/internal/core/apperr"
	"bagpresto/internal/core/quote"
)

func (h *Handler) handleClientDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.svc.Campaigns.ClientDashboard(r.Context(), sessionFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}

func (h *Handler) handleSubmitCampaign(w http.ResponseWriter, r *http.Request) {
	q, err := decodeQuote(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	campaign, err := h.svc.Campaigns.SubmitCampaign(r.Context(), sessionFrom(r), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

// handleUploadLogo accepts a multipart form with the file under "logo".
func (h *Handler) handleUploadLogo(w http.ResponseWriter, r *http.Request) {
	limit := h.opts.MaxUploadBytes
	if limit <= 0 {
		limit = 2 * quote.MaxLogoSize
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	file, header, err := r.FormFile("logo")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			h.writeError(w, r, apperr.New(apperr.CodeUpload, "Le fichier est trop volumineux (max 2 Mo)"))
			return
		}
		h.writeError(w, r, apperr.Wrap(apperr.CodeUpload, err, "Aucun fichier reçu"))
		return
	}
	defer file.Close()

	// One byte past the limit is enough to reject an oversized file.
	data, err := io.ReadAll(io.LimitReader(file, quote.MaxLogoSize+1))
	if err != nil {
		h.writeError(w, r, apperr.Wrap(apperr.CodeUpload, err, "Lecture du fichier impossible"))
		return
	}
	url, err := h.svc.Campaigns.UploadLogo(r.Context(), sessionFrom(r), header.Header.Get("Content-Type"), data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"logo_url": url})
}
