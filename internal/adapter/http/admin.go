package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bagpresto/internal/core/apperr"
	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/port"
)

type campaignStatusRequest struct {
	Status  domain.CampaignStatus `json:"status" validate:"required"`
	Version int64                 `json:"version" validate:"min=0"`
	Force   bool                  `json:"force"`
}

type accountStatusRequest struct {
	Status domain.AccountStatus `json:"status" validate:"required,oneof=pending active suspended"`
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apperr.Wrap(apperr.CodeValidation, err, "Identifiant invalide")
	}
	return id, nil
}

func (h *Handler) handleAdminOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Admin.Overview(r.Context(), sessionFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ov)
}

func (h *Handler) handleCampaignStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req campaignStatusRequest
	if err = decodeJSONBody(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	campaign, err := h.svc.Admin.SetCampaignStatus(r.Context(), sessionFrom(r), port.StatusChange{
		CampaignID: id,
		Status:     req.Status,
		Version:    req.Version,
		Force:      req.Force,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *Handler) handleClientStatus(w http.ResponseWriter, r *http.Request) {
	h.handleAccountStatus(w, r, h.svc.Admin.SetClientStatus)
}

func (h *Handler) handlePartnerStatus(w http.ResponseWriter, r *http.Request) {
	h.handleAccountStatus(w, r, h.svc.Admin.SetPartnerStatus)
}

type accountStatusSetter func(ctx context.Context, session domain.Session, id uuid.UUID, status domain.AccountStatus) error

func (h *Handler) handleAccountStatus(w http.ResponseWriter, r *http.Request, set accountStatusSetter) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req accountStatusRequest
	if err = decodeJSONBody(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = set(r.Context(), sessionFrom(r), id, req.Status); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
