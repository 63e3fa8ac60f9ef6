package domain

import "time"

type PurchaseItem struct {
	MedicineID string  `json:"medicineId"`
	Quantity   int     `json:"quantity"`
	CostPrice  float64 `json:"costPrice"`
}

func (i PurchaseItem) Subtotal() float64 {
	return float64(i.Quantity) * i.CostPrice
}

type Purchase struct {
	ID         string         `json:"id"`
	SupplierID string         `json:"supplierId"`
	Items      []PurchaseItem `json:"items"`
	TotalCost  float64        `json:"totalCost"`
	Date       time.Time      `json:"date"`
}
