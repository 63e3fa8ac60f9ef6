// Package ids supplies unique identifiers for new records. The source is
// injected wherever ids are minted so tests can control the values.
package ids

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Invoice and record prefixes kept from the original numbering scheme.
const (
	PrefixSale     = "S"
	PrefixPurchase = "P"
	PrefixMedicine = "med"
	PrefixCustomer = "cust"
	PrefixSupplier = "sup"
)

type Source interface {
	// Next returns a fresh unique id carrying the given prefix.
	Next(prefix string) string
}

// UUIDSource mints prefix-tagged UUIDs. Timestamp-derived ids collide under
// rapid successive calls; UUIDs do not.
type UUIDSource struct{}

func (UUIDSource) Next(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Sequence is a deterministic source for tests: prefix1, prefix2, ...
type Sequence struct {
	mu sync.Mutex
	n  uint64
}

func (s *Sequence) Next(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s%d", prefix, s.n)
}
