// Package seed builds the initial session state: a fixed demo dataset plus an
// optional CSV medicine catalog.
package seed

import (
	"time"

	"pharmapos/m/domain"
	"pharmapos/m/internal/store"
)

// Defaults returns the demo dataset the session starts from.
func Defaults() store.Snapshot {
	return store.Snapshot{
		Medicines: []domain.Medicine{
			{ID: "med1", Name: "بنادول أدفانس", ScientificName: "Paracetamol", Manufacturer: "GSK", Category: "مسكنات", ExpiryDate: domain.NewDate(2025, time.December, 31), Quantity: 150, Price: 15500},
			{ID: "med2", Name: "فولتارين 50 مجم", ScientificName: "Diclofenac Sodium", Manufacturer: "Novartis", Category: "مضادات التهاب", ExpiryDate: domain.NewDate(2028, time.August, 15), Quantity: 80, Price: 2500},
			{ID: "med3", Name: "أموكسيل 500 مجم", ScientificName: "Amoxicillin", Manufacturer: "Hikma", Category: "مضادات حيوية", ExpiryDate: domain.NewDate(2030, time.May, 20), Quantity: 45, Price: 3500},
			{ID: "med4", Name: "زيرتك", ScientificName: "Cetirizine", Manufacturer: "UCB", Category: "مضادات حساسية", ExpiryDate: domain.NewDate(2029, time.January, 10), Quantity: 120, Price: 22000},
			{ID: "med5", Name: "جلوكوفاج 850 مجم", ScientificName: "Metformin", Manufacturer: "Merck", Category: "أدوية سكري", ExpiryDate: domain.NewDate(2024, time.November, 30), Quantity: 10, Price: 45000},
		},
		Customers: []domain.Customer{
			{ID: "cust1", Name: "أحمد القاطمي", Phone: "0501234567", Address: "الرياض, حي الغدير"},
			{ID: "cust2", Name: "سعود القحطاني", Phone: "0501260817", Address: "الرياض, حي الوادي"},
			{ID: "cust3", Name: "فاطمة علي", Phone: "09437535411", Address: "حمص, حي المحطة"},
		},
		Suppliers: []domain.Supplier{
			{ID: "sup1", Name: "الشركة السورية للأدوية", ContactPerson: "محمد إياد الدروبي", Phone: "0951264556", Address: "دمشق, الصناعية الأولى"},
			{ID: "sup2", Name: "مستودع أدوية دار الدواء", ContactPerson: "عبد الله الشمالي", Phone: "0932165892", Address: "حمص, المنطقة الصناعية"},
		},
		Sales: []domain.Sale{
			{
				ID:         "sale1",
				CustomerID: "cust1",
				Items: []domain.SaleItem{
					{MedicineID: "med1", Quantity: 2, UnitPrice: 15500},
				},
				TotalAmount: 31000,
				Date:        time.Date(2025, time.October, 26, 10, 0, 0, 0, time.UTC),
			},
			{
				ID: "sale2",
				Items: []domain.SaleItem{
					{MedicineID: "med2", Quantity: 1, UnitPrice: 25000},
					{MedicineID: "med4", Quantity: 1, UnitPrice: 22000},
				},
				TotalAmount: 47000,
				Date:        time.Date(2025, time.October, 27, 14, 30, 0, 0, time.UTC),
			},
		},
		Purchases: []domain.Purchase{
			{
				ID:         "pur1",
				SupplierID: "sup1",
				Items: []domain.PurchaseItem{
					{MedicineID: "med1", Quantity: 100, CostPrice: 10000},
				},
				TotalCost: 1000000,
				Date:      time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC),
			},
			{
				ID:         "pur2",
				SupplierID: "sup2",
				Items: []domain.PurchaseItem{
					{MedicineID: "med3", Quantity: 50, CostPrice: 25000},
				},
				TotalCost: 1250000,
				Date:      time.Date(2025, time.September, 15, 11, 0, 0, 0, time.UTC),
			},
		},
	}
}
