package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pharmapos/m/domain"
	"pharmapos/m/internal/ids"
	"pharmapos/m/internal/store"
)

var testNow = time.Date(2025, time.November, 1, 10, 0, 0, 0, time.UTC)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	st := store.New(&ids.Sequence{}, func() time.Time { return testNow }, nil)
	st.Load(store.Snapshot{
		Medicines: []domain.Medicine{
			{ID: "med1", Name: "Panadol", ScientificName: "Paracetamol", ExpiryDate: domain.NewDate(2030, time.January, 1), Quantity: 10, Price: 100},
			{ID: "med2", Name: "Glucophage", ScientificName: "Metformin", ExpiryDate: domain.NewDate(2025, time.October, 1), Quantity: 5, Price: 45000},
		},
		Customers: []domain.Customer{{ID: "cust1", Name: "Ahmad"}},
		Suppliers: []domain.Supplier{{ID: "sup1", Name: "Dar Aldawa", Phone: "0951", Address: "Damascus"}},
	})
	return New(st, nil).Router()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if out != nil && rec.Code < 300 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s %s response: %v (%s)", method, path, err, rec.Body.String())
		}
	}
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCreateSaleAndStockEffect(t *testing.T) {
	h := newTestHandler(t)

	var sale struct {
		ID           string  `json:"id"`
		TotalAmount  float64 `json:"totalAmount"`
		CustomerName string  `json:"customerName"`
	}
	rec := doJSON(t, h, http.MethodPost, "/sales",
		`{"customerId":"cust1","items":[{"medicineId":"med1","quantity":5}]}`, &sale)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if sale.TotalAmount != 500 {
		t.Fatalf("total = %v, want 500", sale.TotalAmount)
	}
	if sale.CustomerName != "Ahmad" {
		t.Fatalf("customer name = %q", sale.CustomerName)
	}

	var medicines []struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
		Status   string `json:"status"`
	}
	doJSON(t, h, http.MethodGet, "/medicines?query=panadol", "", &medicines)
	if len(medicines) != 1 {
		t.Fatalf("medicines = %d, want 1", len(medicines))
	}
	if medicines[0].Quantity != 5 {
		t.Fatalf("stock after sale = %d, want 5", medicines[0].Quantity)
	}
	if medicines[0].Status != "low_stock" {
		t.Fatalf("status = %q, want low_stock", medicines[0].Status)
	}
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodPost, "/sales",
		`{"items":[{"medicineId":"med1","quantity":15}]}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var medicines []struct {
		Quantity int `json:"quantity"`
	}
	doJSON(t, h, http.MethodGet, "/medicines?query=panadol", "", &medicines)
	if medicines[0].Quantity != 10 {
		t.Fatalf("rejected sale changed stock: %d", medicines[0].Quantity)
	}
}

func TestCreateSaleEmptyCart(t *testing.T) {
	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodPost, "/sales", `{"items":[]}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateSaleUnknownMedicine(t *testing.T) {
	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodPost, "/sales",
		`{"items":[{"medicineId":"ghost","quantity":1}]}`, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreatePurchaseMissingSupplier(t *testing.T) {
	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodPost, "/purchases",
		`{"supplierId":"","items":[{"medicineId":"med1","quantity":1,"costPrice":10}]}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var purchases []struct{}
	doJSON(t, h, http.MethodGet, "/purchases", "", &purchases)
	if len(purchases) != 0 {
		t.Fatalf("rejected purchase recorded: %d", len(purchases))
	}
}

func TestPurchaseInvoicePlaceholders(t *testing.T) {
	h := newTestHandler(t)

	var purchase struct {
		ID string `json:"id"`
	}
	rec := doJSON(t, h, http.MethodPost, "/purchases",
		`{"supplierId":"sup1","items":[{"medicineId":"med1","quantity":10,"costPrice":50},{"medicineId":"ghost","quantity":1,"costPrice":5}]}`, &purchase)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var invoice struct {
		Supplier struct {
			Name string `json:"name"`
		} `json:"supplier"`
		Items []struct {
			MedicineName string  `json:"medicineName"`
			Subtotal     float64 `json:"subtotal"`
		} `json:"items"`
		TotalCost float64 `json:"totalCost"`
	}
	rec = doJSON(t, h, http.MethodGet, "/purchases/"+purchase.ID+"/invoice", "", &invoice)
	if rec.Code != http.StatusOK {
		t.Fatalf("invoice status = %d", rec.Code)
	}
	if invoice.Supplier.Name != "Dar Aldawa" {
		t.Fatalf("supplier name = %q", invoice.Supplier.Name)
	}
	if invoice.Items[0].MedicineName != "Panadol" {
		t.Fatalf("resolved medicine name = %q", invoice.Items[0].MedicineName)
	}
	// Dangling medicine reference degrades to the placeholder.
	if invoice.Items[1].MedicineName != domain.UnknownName {
		t.Fatalf("placeholder name = %q, want %q", invoice.Items[1].MedicineName, domain.UnknownName)
	}
	if invoice.TotalCost != 505 {
		t.Fatalf("total cost = %v, want 505", invoice.TotalCost)
	}
}

func TestMedicineCRUD(t *testing.T) {
	h := newTestHandler(t)

	var created struct {
		ID string `json:"id"`
	}
	rec := doJSON(t, h, http.MethodPost, "/medicines",
		`{"name":"Zyrtec","scientificName":"Cetirizine","manufacturer":"UCB","category":"antihistamine","expiryDate":"2029-01-10","quantity":120,"price":22000}`, &created)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodPut, "/medicines/"+created.ID,
		`{"name":"Zyrtec","scientificName":"Cetirizine","manufacturer":"UCB","category":"antihistamine","expiryDate":"2029-01-10","quantity":100,"price":23000}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodPut, "/medicines/ghost",
		`{"name":"x","expiryDate":"2029-01-10","quantity":1,"price":1}`, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("update unknown status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, h, http.MethodDelete, "/medicines/"+created.ID, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = doJSON(t, h, http.MethodDelete, "/medicines/"+created.ID, "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}

func TestDashboard(t *testing.T) {
	h := newTestHandler(t)
	doJSON(t, h, http.MethodPost, "/sales", `{"items":[{"medicineId":"med1","quantity":3}]}`, nil)

	var summary struct {
		TotalMedicines    int     `json:"totalMedicines"`
		LowStockCount     int     `json:"lowStockCount"`
		ExpiringSoonCount int     `json:"expiringSoonCount"`
		TotalSalesToday   float64 `json:"totalSalesToday"`
	}
	rec := doJSON(t, h, http.MethodGet, "/dashboard", "", &summary)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if summary.TotalMedicines != 2 {
		t.Fatalf("total medicines = %d", summary.TotalMedicines)
	}
	if summary.TotalSalesToday != 300 {
		t.Fatalf("today's revenue = %v, want 300", summary.TotalSalesToday)
	}
	// med2 is already expired, so it is not expiring soon.
	if summary.ExpiringSoonCount != 0 {
		t.Fatalf("expiring soon = %d, want 0", summary.ExpiringSoonCount)
	}
	// med2 (qty 5) and med1 after the sale (qty 7) are both at or under 20.
	if summary.LowStockCount != 2 {
		t.Fatalf("low stock = %d, want 2", summary.LowStockCount)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/metrics", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "pharmapos_") {
		t.Fatal("metrics exposition missing application collectors")
	}
}
