package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pharmapos/m/domain"
	"pharmapos/m/internal/store"
)

type saleRequest struct {
	CustomerID string           `json:"customerId,omitempty"`
	Items      []store.SaleLine `json:"items"`
}

type saleResponse struct {
	domain.Sale
	CustomerName string `json:"customerName,omitempty"`
}

// customerDisplayName degrades a dangling customer reference to the
// placeholder instead of failing. An absent id is a walk-in sale.
func (h *Handler) customerDisplayName(id string) string {
	if id == "" {
		return ""
	}
	if cust, ok := h.store.CustomerByID(id); ok {
		return cust.Name
	}
	return domain.UnknownName
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	sales := h.store.Sales()
	out := make([]saleResponse, 0, len(sales))
	for _, sale := range sales {
		out = append(out, saleResponse{Sale: sale, CustomerName: h.customerDisplayName(sale.CustomerID)})
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *Handler) createSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Items) == 0 {
		respondDomainError(w, domain.ErrEmptyCart)
		return
	}
	sale, err := h.store.RecordSale(req.CustomerID, req.Items)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, saleResponse{Sale: sale, CustomerName: h.customerDisplayName(sale.CustomerID)})
}

type purchaseRequest struct {
	SupplierID string                `json:"supplierId"`
	Items      []domain.PurchaseItem `json:"items"`
}

type purchaseResponse struct {
	domain.Purchase
	SupplierName string `json:"supplierName"`
}

func (h *Handler) supplierDisplayName(id string) string {
	if sup, ok := h.store.SupplierByID(id); ok {
		return sup.Name
	}
	return domain.UnknownName
}

func (h *Handler) listPurchases(w http.ResponseWriter, r *http.Request) {
	purchases := h.store.Purchases()
	out := make([]purchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, purchaseResponse{Purchase: p, SupplierName: h.supplierDisplayName(p.SupplierID)})
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *Handler) createPurchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	purchase, err := h.store.RecordPurchase(req.SupplierID, req.Items)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, purchaseResponse{Purchase: purchase, SupplierName: h.supplierDisplayName(purchase.SupplierID)})
}

// Purchase invoice view: the data behind the printable invoice, with every
// dangling reference resolved to a display placeholder.

type invoiceLine struct {
	MedicineID   string  `json:"medicineId"`
	MedicineName string  `json:"medicineName"`
	Quantity     int     `json:"quantity"`
	CostPrice    float64 `json:"costPrice"`
	Subtotal     float64 `json:"subtotal"`
}

type invoiceSupplier struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type invoiceResponse struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Supplier  invoiceSupplier `json:"supplier"`
	Items     []invoiceLine   `json:"items"`
	TotalCost float64         `json:"totalCost"`
}

func (h *Handler) purchaseInvoice(w http.ResponseWriter, r *http.Request) {
	purchase, ok := h.store.PurchaseByID(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "purchase not found")
		return
	}

	supplier := invoiceSupplier{Name: domain.UnknownName, Phone: "-", Address: "-"}
	if sup, found := h.store.SupplierByID(purchase.SupplierID); found {
		supplier = invoiceSupplier{Name: sup.Name, Phone: sup.Phone, Address: sup.Address}
	}

	lines := make([]invoiceLine, 0, len(purchase.Items))
	for _, item := range purchase.Items {
		name := domain.UnknownName
		if med, found := h.store.MedicineByID(item.MedicineID); found {
			name = med.Name
		}
		lines = append(lines, invoiceLine{
			MedicineID:   item.MedicineID,
			MedicineName: name,
			Quantity:     item.Quantity,
			CostPrice:    item.CostPrice,
			Subtotal:     item.Subtotal(),
		})
	}

	respondJSON(w, http.StatusOK, invoiceResponse{
		ID:        purchase.ID,
		Date:      purchase.Date.Format("2006-01-02 15:04"),
		Supplier:  supplier,
		Items:     lines,
		TotalCost: purchase.TotalCost,
	})
}
