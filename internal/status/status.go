// Package status derives display-facing stock status and dashboard
// aggregates from entity state and the current date. Everything here is a
// pure function; inputs are never mutated.
package status

import (
	"sort"
	"time"

	"pharmapos/m/domain"
)

type MedicineStatus string

const (
	Expired    MedicineStatus = "expired"
	NearExpiry MedicineStatus = "near_expiry"
	LowStock   MedicineStatus = "low_stock"
	Available  MedicineStatus = "available"
)

const (
	// LowStockThreshold is the quantity at or below which a medicine counts
	// as low stock.
	LowStockThreshold = 20
	// ExpiryWindowMonths is how far ahead the near-expiry window reaches.
	ExpiryWindowMonths = 3
)

// Classify evaluates in a fixed order, first match wins:
// expired, near-expiry, low-stock, available. A medicine that is both
// near-expiry and low on stock reports near-expiry.
func Classify(m domain.Medicine, now time.Time) MedicineStatus {
	window := now.AddDate(0, ExpiryWindowMonths, 0)
	switch {
	case m.ExpiryDate.Before(now):
		return Expired
	case !m.ExpiryDate.After(window):
		return NearExpiry
	case m.Quantity <= LowStockThreshold:
		return LowStock
	default:
		return Available
	}
}

type Summary struct {
	TotalMedicines    int           `json:"totalMedicines"`
	LowStockCount     int           `json:"lowStockCount"`
	ExpiringSoonCount int           `json:"expiringSoonCount"`
	TotalSalesToday   float64       `json:"totalSalesToday"`
	RecentSales       []domain.Sale `json:"recentSales"`
}

// Summarize computes the dashboard aggregates. LowStockCount is the raw
// quantity threshold count regardless of expiry, unlike the per-medicine
// classification. ExpiringSoonCount requires a strictly future expiry, so
// already-expired medicines are excluded. TotalSalesToday uses calendar-day
// equality, not a rolling 24h window.
func Summarize(medicines []domain.Medicine, sales []domain.Sale, now time.Time) Summary {
	window := now.AddDate(0, ExpiryWindowMonths, 0)

	s := Summary{TotalMedicines: len(medicines)}
	for _, m := range medicines {
		if m.Quantity <= LowStockThreshold {
			s.LowStockCount++
		}
		if m.ExpiryDate.After(now) && !m.ExpiryDate.After(window) {
			s.ExpiringSoonCount++
		}
	}

	for _, sale := range sales {
		if sameCalendarDay(sale.Date, now) {
			s.TotalSalesToday += sale.TotalAmount
		}
	}

	recent := make([]domain.Sale, len(sales))
	copy(recent, sales)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	s.RecentSales = recent

	return s
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
