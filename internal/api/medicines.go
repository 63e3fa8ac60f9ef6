package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"pharmapos/m/domain"
	"pharmapos/m/internal/status"
)

type medicineRequest struct {
	Name           string      `json:"name"`
	ScientificName string      `json:"scientificName"`
	Manufacturer   string      `json:"manufacturer"`
	Category       string      `json:"category"`
	ExpiryDate     domain.Date `json:"expiryDate"`
	Quantity       int         `json:"quantity"`
	Price          float64     `json:"price"`
}

// listMedicines returns the stock list with each medicine's derived status.
// ?query= filters by name or scientific name, ?in_stock=true hides
// out-of-stock items (the point-of-sale picker).
func (h *Handler) listMedicines(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	inStock := strings.EqualFold(r.URL.Query().Get("in_stock"), "true")

	medicines := h.store.SearchMedicines(query, inStock)
	now := h.store.Now()
	out := make([]medicineResponse, 0, len(medicines))
	for _, m := range medicines {
		out = append(out, medicineResponse{Medicine: m, Status: status.Classify(m, now)})
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *Handler) createMedicine(w http.ResponseWriter, r *http.Request) {
	var req medicineRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	med, err := h.store.CreateMedicine(req.Name, req.ScientificName, req.Manufacturer, req.Category, req.ExpiryDate, req.Quantity, req.Price)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, med)
}

func (h *Handler) updateMedicine(w http.ResponseWriter, r *http.Request) {
	var req medicineRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	med, err := h.store.UpdateMedicine(domain.Medicine{
		ID:             chi.URLParam(r, "id"),
		Name:           req.Name,
		ScientificName: req.ScientificName,
		Manufacturer:   req.Manufacturer,
		Category:       req.Category,
		ExpiryDate:     req.ExpiryDate,
		Quantity:       req.Quantity,
		Price:          req.Price,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, med)
}

func (h *Handler) deleteMedicine(w http.ResponseWriter, r *http.Request) {
	if !h.store.DeleteMedicine(chi.URLParam(r, "id")) {
		respondError(w, http.StatusNotFound, "medicine not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
