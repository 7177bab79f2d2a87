package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ads-board/internal/core/domain"
)

type createAdResponse struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

type getAdResponse struct {
	Name         string `json:"name"`
	CreationTime int64  `json:"creation_time"`
	Owner        string `json:"owner"`
}

type updateAdResponse struct {
	Status string `json:"status"`
	Name   string `json:"name"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// createAd handles POST /ads.
func (h *Handler) createAd(w http.ResponseWriter, r *http.Request) error {
	var req CreateAdRequest
	if err := decodeAndValidate(r, &req); err != nil {
		return err
	}
	ad, err := h.svc.CreateAd(r.Context(), req.Input())
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusCreated, createAdResponse{Status: "ok", ID: ad.ID})
	return nil
}

// getAd handles GET /ads/{id}. The owner is returned as stored, i.e. hashed.
func (h *Handler) getAd(w http.ResponseWriter, r *http.Request) error {
	id, err := adID(r)
	if err != nil {
		return err
	}
	ad, err := h.svc.GetAd(r.Context(), id)
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, getAdResponse{
		Name:         ad.Name,
		CreationTime: ad.CreationTime.Unix(),
		Owner:        ad.Owner,
	})
	return nil
}

// updateAd handles PATCH /ads/{id}. Only fields present in the body change.
func (h *Handler) updateAd(w http.ResponseWriter, r *http.Request) error {
	id, err := adID(r)
	if err != nil {
		return err
	}
	var req PatchAdRequest
	if err = decodeAndValidate(r, &req); err != nil {
		return err
	}
	ad, err := h.svc.UpdateAd(r.Context(), id, req.Patch())
	if err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, updateAdResponse{Status: "ok", Name: ad.Name})
	return nil
}

// deleteAd handles DELETE /ads/{id}.
func (h *Handler) deleteAd(w http.ResponseWriter, r *http.Request) error {
	id, err := adID(r)
	if err != nil {
		return err
	}
	if err = h.svc.DeleteAd(r.Context(), id); err != nil {
		return err
	}
	h.writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
	return nil
}

// adID parses the {id} path parameter. The route only admits digits, so the
// only failure is an id too large for int64, which cannot exist.
func adID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, domain.ErrAdNotFound
	}
	return id, nil
}
