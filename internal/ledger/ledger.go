// Package ledger enforces the stock-conservation rules tying sales and
// purchases to medicine stock. Operations take the current medicine snapshot
// and return a new one; they keep no state of their own, and a rejected
// transaction returns the input unchanged.
package ledger

import (
	"fmt"
	"time"

	"pharmapos/m/domain"
	"pharmapos/m/internal/ids"
)

// RecordSale completes the cart as a sale: stamps the date, totals the frozen
// line prices, and decrements each referenced medicine's stock in the
// returned snapshot. Every line must resolve to a medicine with enough stock;
// otherwise nothing is applied.
func RecordSale(medicines []domain.Medicine, cart *Cart, customerID string, src ids.Source, now time.Time) (domain.Sale, []domain.Medicine, error) {
	if cart.Empty() {
		return domain.Sale{}, medicines, domain.ErrEmptyCart
	}

	byID := indexMedicines(medicines)
	items := cart.Items()
	for _, item := range items {
		idx, ok := byID[item.MedicineID]
		if !ok {
			return domain.Sale{}, medicines, fmt.Errorf("medicine %s: %w", item.MedicineID, domain.ErrUnknownReference)
		}
		if item.Quantity > medicines[idx].Quantity {
			return domain.Sale{}, medicines, fmt.Errorf("%s: %w", item.MedicineID, domain.ErrInsufficientStock)
		}
	}

	updated := make([]domain.Medicine, len(medicines))
	copy(updated, medicines)
	for _, item := range items {
		updated[byID[item.MedicineID]].Quantity -= item.Quantity
	}

	sale := domain.Sale{
		ID:          src.Next(ids.PrefixSale),
		CustomerID:  customerID,
		Items:       items,
		TotalAmount: cart.Total(),
		Date:        now,
	}
	return sale, updated, nil
}

// RecordPurchase records a supplier invoice and increments stock for each
// resolvable line. Lines referencing an unknown medicine are kept on the
// purchase but skipped during the increment; they surface as "Unknown" at
// display time. Purchase quantities have no upper bound.
func RecordPurchase(medicines []domain.Medicine, supplierID string, items []domain.PurchaseItem, src ids.Source, now time.Time) (domain.Purchase, []domain.Medicine, error) {
	if supplierID == "" {
		return domain.Purchase{}, medicines, fmt.Errorf("supplier: %w", domain.ErrMissingRequiredField)
	}
	if len(items) == 0 {
		return domain.Purchase{}, medicines, fmt.Errorf("items: %w", domain.ErrMissingRequiredField)
	}
	for _, item := range items {
		if item.MedicineID == "" {
			return domain.Purchase{}, medicines, fmt.Errorf("item medicine: %w", domain.ErrMissingRequiredField)
		}
		if item.Quantity < 1 {
			return domain.Purchase{}, medicines, fmt.Errorf("item quantity must be at least 1: %w", domain.ErrMissingRequiredField)
		}
		if item.CostPrice < 0 {
			return domain.Purchase{}, medicines, fmt.Errorf("item cost price must not be negative: %w", domain.ErrMissingRequiredField)
		}
	}

	recorded := make([]domain.PurchaseItem, len(items))
	copy(recorded, items)

	var total float64
	for _, item := range recorded {
		total += item.Subtotal()
	}

	byID := indexMedicines(medicines)
	updated := make([]domain.Medicine, len(medicines))
	copy(updated, medicines)
	for _, item := range recorded {
		if idx, ok := byID[item.MedicineID]; ok {
			updated[idx].Quantity += item.Quantity
		}
	}

	purchase := domain.Purchase{
		ID:         src.Next(ids.PrefixPurchase),
		SupplierID: supplierID,
		Items:      recorded,
		TotalCost:  total,
		Date:       now,
	}
	return purchase, updated, nil
}

func indexMedicines(medicines []domain.Medicine) map[string]int {
	byID := make(map[string]int, len(medicines))
	for i, m := range medicines {
		byID[m.ID] = i
	}
	return byID
}
