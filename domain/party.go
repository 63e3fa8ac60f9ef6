package domain

import "fmt"

type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Supplier struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

func NewCustomer(id, name, phone, address string) (Customer, error) {
	if id == "" {
		return Customer{}, fmt.Errorf("customer id: %w", ErrMissingRequiredField)
	}
	if name == "" {
		return Customer{}, fmt.Errorf("customer name: %w", ErrMissingRequiredField)
	}
	return Customer{ID: id, Name: name, Phone: phone, Address: address}, nil
}

func NewSupplier(id, name, contactPerson, phone, address string) (Supplier, error) {
	if id == "" {
		return Supplier{}, fmt.Errorf("supplier id: %w", ErrMissingRequiredField)
	}
	if name == "" {
		return Supplier{}, fmt.Errorf("supplier name: %w", ErrMissingRequiredField)
	}
	return Supplier{ID: id, Name: name, ContactPerson: contactPerson, Phone: phone, Address: address}, nil
}
