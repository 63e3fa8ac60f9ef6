package domain

import "time"

type SaleItem struct {
	MedicineID string  `json:"medicineId"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
}

// Subtotal is the line amount at the price frozen when the item entered the
// cart, independent of the medicine's live price.
func (i SaleItem) Subtotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

type Sale struct {
	ID          string     `json:"id"`
	CustomerID  string     `json:"customerId,omitempty"`
	Items       []SaleItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
	Date        time.Time  `json:"date"`
}
