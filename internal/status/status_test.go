package status

import (
	"testing"
	"time"

	"pharmapos/m/domain"
)

var now = time.Date(2025, time.November, 1, 9, 0, 0, 0, time.UTC)

func med(id string, expiry domain.Date, quantity int) domain.Medicine {
	return domain.Medicine{ID: id, Name: id, ExpiryDate: expiry, Quantity: quantity, Price: 100}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		medicine domain.Medicine
		want     MedicineStatus
	}{
		{"expired", med("m", domain.NewDate(2025, time.October, 31), 100), Expired},
		{"expired wins over low stock", med("m", domain.NewDate(2024, time.January, 1), 0), Expired},
		{"near expiry inside window", med("m", domain.NewDate(2026, time.January, 15), 100), NearExpiry},
		{"near expiry wins over low stock", med("m", domain.NewDate(2026, time.January, 15), 2), NearExpiry},
		{"midnight expiry earlier today is expired", med("m", domain.NewDate(2025, time.November, 1), 100), Expired},
		{"window boundary inclusive", med("m", domain.NewDate(2026, time.February, 1), 100), NearExpiry},
		{"beyond window with stock", med("m", domain.NewDate(2026, time.March, 1), 100), Available},
		{"low stock at threshold", med("m", domain.NewDate(2030, time.January, 1), 20), LowStock},
		{"just above threshold", med("m", domain.NewDate(2030, time.January, 1), 21), Available},
	}
	for _, tc := range cases {
		if got := Classify(tc.medicine, now); got != tc.want {
			t.Errorf("%s: Classify = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestClassifyWindowCarriesOverMonthEnd(t *testing.T) {
	// Three months from Nov 30 falls on the nonexistent Feb 30, which
	// AddDate normalizes to Mar 2 in a non-leap year. The window end
	// carries with it.
	endOfNov := time.Date(2025, time.November, 30, 9, 0, 0, 0, time.UTC)

	if got := Classify(med("m", domain.NewDate(2026, time.March, 2), 100), endOfNov); got != NearExpiry {
		t.Fatalf("Mar 2 = %s, want %s", got, NearExpiry)
	}
	if got := Classify(med("m", domain.NewDate(2026, time.March, 3), 100), endOfNov); got != Available {
		t.Fatalf("Mar 3 = %s, want %s", got, Available)
	}
}

func TestClassifyIsPure(t *testing.T) {
	m := med("m", domain.NewDate(2026, time.January, 15), 5)
	before := m

	first := Classify(m, now)
	second := Classify(m, now)
	if first != second {
		t.Fatalf("classification not stable: %s then %s", first, second)
	}
	if m != before {
		t.Fatalf("input mutated: %+v", m)
	}
}

func TestSummarizeCounts(t *testing.T) {
	medicines := []domain.Medicine{
		med("m1", domain.NewDate(2024, time.January, 1), 5),    // expired, also low stock
		med("m2", domain.NewDate(2026, time.January, 15), 100), // expiring soon
		med("m3", domain.NewDate(2030, time.January, 1), 20),   // low stock only
		med("m4", domain.NewDate(2030, time.January, 1), 200),  // healthy
	}

	s := Summarize(medicines, nil, now)
	if s.TotalMedicines != 4 {
		t.Fatalf("total = %d, want 4", s.TotalMedicines)
	}
	// Raw threshold count: the expired medicine still counts as low stock.
	if s.LowStockCount != 2 {
		t.Fatalf("low stock = %d, want 2", s.LowStockCount)
	}
	// Strictly future expiry: the expired medicine is excluded.
	if s.ExpiringSoonCount != 1 {
		t.Fatalf("expiring soon = %d, want 1", s.ExpiringSoonCount)
	}
}

func TestSummarizeTodaysRevenue(t *testing.T) {
	today := func(hour int, amount float64) domain.Sale {
		return domain.Sale{
			ID:          "s",
			TotalAmount: amount,
			Date:        time.Date(2025, time.November, 1, hour, 0, 0, 0, time.UTC),
		}
	}
	sales := []domain.Sale{
		today(8, 300),
		today(16, 200),
		{ID: "old", TotalAmount: 1000, Date: time.Date(2025, time.October, 31, 23, 59, 0, 0, time.UTC)},
	}

	s := Summarize(nil, sales, now)
	if s.TotalSalesToday != 500 {
		t.Fatalf("today's revenue = %v, want 500", s.TotalSalesToday)
	}
}

func TestSummarizeRecentSales(t *testing.T) {
	base := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	var sales []domain.Sale
	for i := 0; i < 7; i++ {
		sales = append(sales, domain.Sale{
			ID:   "s" + string(rune('a'+i)),
			Date: base.Add(time.Duration(i) * time.Hour),
		})
	}
	// Two sales share a timestamp; stable sort keeps their input order.
	sales = append(sales, domain.Sale{ID: "tie", Date: base.Add(6 * time.Hour)})

	s := Summarize(nil, sales, now)
	if len(s.RecentSales) != 5 {
		t.Fatalf("recent = %d, want 5", len(s.RecentSales))
	}
	if s.RecentSales[0].ID != "sg" || s.RecentSales[1].ID != "tie" {
		t.Fatalf("unexpected order: %s then %s", s.RecentSales[0].ID, s.RecentSales[1].ID)
	}
	for i := 1; i < len(s.RecentSales); i++ {
		if s.RecentSales[i].Date.After(s.RecentSales[i-1].Date) {
			t.Fatalf("recent sales not descending at %d", i)
		}
	}
	// Input order preserved.
	if sales[0].ID != "sa" {
		t.Fatalf("input slice reordered")
	}
}
