package store

import (
	"fmt"

	"pharmapos/m/domain"
	"pharmapos/m/internal/ids"
)

// Directory maintenance: medicines, customers and suppliers are created and
// edited by full-record replacement and deleted by id removal. Stock itself
// only moves through recorded sales and purchases.

// freshID re-mints until the id is not already taken, so a colliding id
// source cannot introduce two records sharing an id. Caller holds the lock.
func freshID(next func() string, taken func(string) bool) string {
	id := next()
	for taken(id) {
		id = next()
	}
	return id
}

func (s *Store) medicineIDTaken(id string) bool {
	_, ok := findMedicine(s.medicines, id)
	return ok
}

func (s *Store) customerIDTaken(id string) bool {
	for _, c := range s.customers {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) supplierIDTaken(id string) bool {
	for _, sup := range s.suppliers {
		if sup.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) CreateMedicine(name, scientificName, manufacturer, category string, expiry domain.Date, quantity int, price float64) (domain.Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := freshID(func() string { return s.src.Next(ids.PrefixMedicine) }, s.medicineIDTaken)
	med, err := domain.NewMedicine(id, name, scientificName, manufacturer, category, expiry, quantity, price)
	if err != nil {
		return domain.Medicine{}, err
	}
	s.medicines = append(s.medicines, med)
	return med, nil
}

// UpdateMedicine replaces the record with the same id.
func (s *Store) UpdateMedicine(med domain.Medicine) (domain.Medicine, error) {
	validated, err := domain.NewMedicine(med.ID, med.Name, med.ScientificName, med.Manufacturer, med.Category, med.ExpiryDate, med.Quantity, med.Price)
	if err != nil {
		return domain.Medicine{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.medicines {
		if m.ID == validated.ID {
			s.medicines[i] = validated
			return validated, nil
		}
	}
	return domain.Medicine{}, fmt.Errorf("medicine %s: %w", med.ID, domain.ErrUnknownReference)
}

func (s *Store) DeleteMedicine(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.medicines {
		if m.ID == id {
			s.medicines = append(s.medicines[:i], s.medicines[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) CreateCustomer(name, phone, address string) (domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := freshID(func() string { return s.src.Next(ids.PrefixCustomer) }, s.customerIDTaken)
	cust, err := domain.NewCustomer(id, name, phone, address)
	if err != nil {
		return domain.Customer{}, err
	}
	s.customers = append(s.customers, cust)
	return cust, nil
}

func (s *Store) UpdateCustomer(cust domain.Customer) (domain.Customer, error) {
	validated, err := domain.NewCustomer(cust.ID, cust.Name, cust.Phone, cust.Address)
	if err != nil {
		return domain.Customer{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.customers {
		if c.ID == validated.ID {
			s.customers[i] = validated
			return validated, nil
		}
	}
	return domain.Customer{}, fmt.Errorf("customer %s: %w", cust.ID, domain.ErrUnknownReference)
}

func (s *Store) DeleteCustomer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.customers {
		if c.ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) CreateSupplier(name, contactPerson, phone, address string) (domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := freshID(func() string { return s.src.Next(ids.PrefixSupplier) }, s.supplierIDTaken)
	sup, err := domain.NewSupplier(id, name, contactPerson, phone, address)
	if err != nil {
		return domain.Supplier{}, err
	}
	s.suppliers = append(s.suppliers, sup)
	return sup, nil
}

func (s *Store) UpdateSupplier(sup domain.Supplier) (domain.Supplier, error) {
	validated, err := domain.NewSupplier(sup.ID, sup.Name, sup.ContactPerson, sup.Phone, sup.Address)
	if err != nil {
		return domain.Supplier{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.suppliers {
		if existing.ID == validated.ID {
			s.suppliers[i] = validated
			return validated, nil
		}
	}
	return domain.Supplier{}, fmt.Errorf("supplier %s: %w", sup.ID, domain.ErrUnknownReference)
}

func (s *Store) DeleteSupplier(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.suppliers {
		if existing.ID == id {
			s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
			return true
		}
	}
	return false
}
