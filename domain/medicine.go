package domain

import "fmt"

type Medicine struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ScientificName string  `json:"scientificName"`
	Manufacturer   string  `json:"manufacturer"`
	Category       string  `json:"category"`
	ExpiryDate     Date    `json:"expiryDate"`
	Quantity       int     `json:"quantity"`
	Price          float64 `json:"price"`
}

// NewMedicine validates and builds a medicine record. Quantity may not be
// negative and price is a non-negative unit sale price.
func NewMedicine(id, name, scientificName, manufacturer, category string, expiry Date, quantity int, price float64) (Medicine, error) {
	if id == "" {
		return Medicine{}, fmt.Errorf("medicine id: %w", ErrMissingRequiredField)
	}
	if name == "" {
		return Medicine{}, fmt.Errorf("medicine name: %w", ErrMissingRequiredField)
	}
	if quantity < 0 {
		return Medicine{}, fmt.Errorf("medicine quantity must not be negative: %w", ErrMissingRequiredField)
	}
	if price < 0 {
		return Medicine{}, fmt.Errorf("medicine price must not be negative: %w", ErrMissingRequiredField)
	}
	return Medicine{
		ID:             id,
		Name:           name,
		ScientificName: scientificName,
		Manufacturer:   manufacturer,
		Category:       category,
		ExpiryDate:     expiry,
		Quantity:       quantity,
		Price:          price,
	}, nil
}
