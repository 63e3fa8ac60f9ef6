// Package store owns the entity collections for the lifetime of the process.
// All mutation goes through a single writer lock: the store passes the
// current snapshot into the ledger and commits the snapshot the ledger
// returns. Entities are never mutated in place; an update replaces the
// record in its collection.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"pharmapos/m/domain"
	"pharmapos/m/internal/ids"
	"pharmapos/m/internal/ledger"
	"pharmapos/m/internal/metrics"
	"pharmapos/m/internal/status"
)

// Snapshot bundles the five entity collections.
type Snapshot struct {
	Medicines []domain.Medicine
	Customers []domain.Customer
	Suppliers []domain.Supplier
	Sales     []domain.Sale
	Purchases []domain.Purchase
}

// SaleLine is one requested cart line: how many units of which medicine.
type SaleLine struct {
	MedicineID string `json:"medicineId"`
	Quantity   int    `json:"quantity"`
}

type Store struct {
	mu  sync.RWMutex
	src ids.Source
	now func() time.Time
	log *zap.Logger

	medicines []domain.Medicine
	customers []domain.Customer
	suppliers []domain.Supplier
	sales     []domain.Sale
	purchases []domain.Purchase
}

func New(src ids.Source, now func() time.Time, log *zap.Logger) *Store {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{src: src, now: now, log: log}
}

// Load replaces the entire session state with the given snapshot.
func (s *Store) Load(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.medicines = append([]domain.Medicine(nil), snap.Medicines...)
	s.customers = append([]domain.Customer(nil), snap.Customers...)
	s.suppliers = append([]domain.Supplier(nil), snap.Suppliers...)
	s.sales = append([]domain.Sale(nil), snap.Sales...)
	s.purchases = append([]domain.Purchase(nil), snap.Purchases...)
}

// Now reports the store's clock, so display classification uses the same
// time source as ledger stamping.
func (s *Store) Now() time.Time {
	return s.now()
}

// Reads

func (s *Store) Medicines() []domain.Medicine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Medicine(nil), s.medicines...)
}

func (s *Store) Customers() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Customer(nil), s.customers...)
}

func (s *Store) Suppliers() []domain.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Supplier(nil), s.suppliers...)
}

// Sales are held most-recent-first; new sales are prepended on commit.
func (s *Store) Sales() []domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Sale(nil), s.sales...)
}

func (s *Store) Purchases() []domain.Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Purchase(nil), s.purchases...)
}

func (s *Store) MedicineByID(id string) (domain.Medicine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return findMedicine(s.medicines, id)
}

func (s *Store) CustomerByID(id string) (domain.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Customer{}, false
}

func (s *Store) SupplierByID(id string) (domain.Supplier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sup := range s.suppliers {
		if sup.ID == id {
			return sup, true
		}
	}
	return domain.Supplier{}, false
}

func (s *Store) PurchaseByID(id string) (domain.Purchase, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.purchases {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Purchase{}, false
}

// SearchMedicines matches the query against name and scientific name,
// case-insensitively. With inStockOnly set, out-of-stock medicines are
// filtered out (the point-of-sale picker view).
func (s *Store) SearchMedicines(query string, inStockOnly bool) []domain.Medicine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q := strings.ToLower(strings.TrimSpace(query))
	var out []domain.Medicine
	for _, m := range s.medicines {
		if inStockOnly && m.Quantity == 0 {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(m.Name), q) &&
			!strings.Contains(strings.ToLower(m.ScientificName), q) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Dashboard derives the summary from the current snapshot.
func (s *Store) Dashboard() status.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return status.Summarize(s.medicines, s.sales, s.now())
}

// Transactions

// RecordSale builds a cart from the requested lines against current stock and
// commits the ledger result. Lines for the same medicine accumulate into one
// cart line and are capped against committed stock as they are added; any
// rejected line rejects the whole request with nothing applied.
func (s *Store) RecordSale(customerID string, lines []SaleLine) (domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cart ledger.Cart
	for _, line := range lines {
		med, ok := findMedicine(s.medicines, line.MedicineID)
		if !ok {
			metrics.TransactionsRejected.WithLabelValues("unknown_reference").Inc()
			return domain.Sale{}, fmt.Errorf("medicine %s: %w", line.MedicineID, domain.ErrUnknownReference)
		}
		if err := cart.Add(med, line.Quantity); err != nil {
			metrics.TransactionsRejected.WithLabelValues(rejectReason(err)).Inc()
			return domain.Sale{}, err
		}
	}

	sale, updated, err := ledger.RecordSale(s.medicines, &cart, customerID, s.src, s.now())
	if err != nil {
		metrics.TransactionsRejected.WithLabelValues(rejectReason(err)).Inc()
		return domain.Sale{}, err
	}

	s.medicines = updated
	s.sales = append([]domain.Sale{sale}, s.sales...)
	metrics.SalesRecorded.Inc()
	s.log.Info("sale recorded",
		zap.String("sale_id", sale.ID),
		zap.Int("items", len(sale.Items)),
		zap.Float64("total", sale.TotalAmount))
	return sale, nil
}

// RecordPurchase commits a supplier invoice through the ledger.
func (s *Store) RecordPurchase(supplierID string, items []domain.PurchaseItem) (domain.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	purchase, updated, err := ledger.RecordPurchase(s.medicines, supplierID, items, s.src, s.now())
	if err != nil {
		metrics.TransactionsRejected.WithLabelValues(rejectReason(err)).Inc()
		return domain.Purchase{}, err
	}

	s.medicines = updated
	s.purchases = append([]domain.Purchase{purchase}, s.purchases...)
	metrics.PurchasesRecorded.Inc()
	s.log.Info("purchase recorded",
		zap.String("purchase_id", purchase.ID),
		zap.String("supplier_id", purchase.SupplierID),
		zap.Float64("total_cost", purchase.TotalCost))
	return purchase, nil
}

func findMedicine(medicines []domain.Medicine, id string) (domain.Medicine, bool) {
	for _, m := range medicines {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Medicine{}, false
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrMissingRequiredField):
		return "missing_required_field"
	case errors.Is(err, domain.ErrUnknownReference):
		return "unknown_reference"
	default:
		return "other"
	}
}
