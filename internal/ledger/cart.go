package ledger

import (
	"fmt"

	"pharmapos/m/domain"
)

// Cart is the in-progress list of sale items before RecordSale commits them.
// Each line is capped against the medicine's stock at the point of mutation,
// and the unit price is frozen when the line is first added.
type Cart struct {
	items []domain.SaleItem
}

// Add puts qty units of the medicine in the cart, accumulating into an
// existing line for the same medicine. The accumulated quantity may not
// exceed the medicine's current stock; a rejected addition leaves the cart
// unchanged.
func (c *Cart) Add(med domain.Medicine, qty int) error {
	if qty < 1 {
		return fmt.Errorf("cart quantity must be at least 1: %w", domain.ErrMissingRequiredField)
	}
	for i, item := range c.items {
		if item.MedicineID != med.ID {
			continue
		}
		if item.Quantity+qty > med.Quantity {
			return fmt.Errorf("%s: %w", med.ID, domain.ErrInsufficientStock)
		}
		c.items[i].Quantity += qty
		return nil
	}
	if qty > med.Quantity {
		return fmt.Errorf("%s: %w", med.ID, domain.ErrInsufficientStock)
	}
	c.items = append(c.items, domain.SaleItem{MedicineID: med.ID, Quantity: qty, UnitPrice: med.Price})
	return nil
}

// SetQuantity replaces the quantity of an existing line, keeping the frozen
// unit price. The new quantity must be between 1 and the medicine's stock.
func (c *Cart) SetQuantity(med domain.Medicine, qty int) error {
	if qty < 1 {
		return fmt.Errorf("cart quantity must be at least 1: %w", domain.ErrMissingRequiredField)
	}
	if qty > med.Quantity {
		return fmt.Errorf("%s: %w", med.ID, domain.ErrInsufficientStock)
	}
	for i, item := range c.items {
		if item.MedicineID == med.ID {
			c.items[i].Quantity = qty
			return nil
		}
	}
	return fmt.Errorf("medicine %s not in cart: %w", med.ID, domain.ErrUnknownReference)
}

// Remove drops the line for the medicine, if present.
func (c *Cart) Remove(medicineID string) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.MedicineID != medicineID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Total sums quantity times frozen unit price across all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []domain.SaleItem {
	out := make([]domain.SaleItem, len(c.items))
	copy(out, c.items)
	return out
}
