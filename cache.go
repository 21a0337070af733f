package planilla

import (
	"crypto/sha1"
	"fmt"
	"io"
	"sync"
)

// Key identifies the full input tuple: every item, the master data, every
// modification and every penalty, at full precision. Two inputs with the same
// key produce the same report.
func (in Input) Key() string {
	h := sha1.New()
	in.writeKey(h)
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (in Input) writeKey(w io.Writer) {
	fmt.Fprintf(w, "origin %s\n", in.Origin)
	for _, it := range in.Items {
		fmt.Fprintf(w, "item %q %q %q %q %s %s %s %s %s %q\n", it.Module, it.Code, it.Description, it.Unit,
			it.Start, it.End, it.OriginalQty.value, it.CurrentQty.value, it.UnitPrice.value, it.UnitPrice.cur)
		for _, p := range it.Periods() {
			fmt.Fprintf(w, "  p%d %s\n", p, it.Executed[p].value)
		}
	}
	m := in.Master
	fmt.Fprintf(w, "master %q %q %q %q %q %q %q %q %q %q %q\n", m.Name, m.ContractNumber, m.Entity,
		m.Contractor, m.ContractorRep, m.Supervisor, m.SupervisorRep, m.Fiscal, m.FiscalRep, m.SurfaceArea, m.Currency)
	fmt.Fprintf(w, "master %s %s %s %d %s %q %s %q %v\n", m.SigningDate, m.StartDate, m.OriginalEndDate,
		m.OriginalDuration, m.OriginalAmount.value, m.OriginalAmount.cur, m.AdvanceAmount.value, m.AdvanceAmount.cur, float64(m.AdvancePercent))
	for _, mod := range in.Modifications {
		fmt.Fprintf(w, "mod %q %q %q %s %d %s %q %q %t\n", mod.ID, mod.Name, mod.Type, mod.Date, mod.Days,
			mod.Amount.value, mod.Amount.cur, mod.Description, mod.Active)
	}
	for _, p := range in.Penalties {
		fmt.Fprintf(w, "penalty %d %s %q %q\n", p.Period, p.Amount.value, p.Amount.cur, p.Reason)
	}
}

// Cache memoises Compute by input key. It holds at most Size reports and
// evicts the oldest first. It is safe for concurrent use.
type Cache struct {
	Size int

	mu      sync.Mutex
	reports map[string]*Report
	order   []string
	hits    int
	misses  int
}

// NewCache returns a cache holding at most size reports.
func NewCache(size int) *Cache {
	return &Cache{Size: max(size, 1), reports: make(map[string]*Report)}
}

// Compute returns the cached report for in, computing it on a miss.
// ErrNoData is not cached.
func (c *Cache) Compute(in Input) (*Report, error) {
	key := in.Key()
	c.mu.Lock()
	if r, ok := c.reports[key]; ok {
		c.hits++
		c.mu.Unlock()
		return r, nil
	}
	c.misses++
	c.mu.Unlock()

	r, err := Compute(in)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reports == nil {
		c.reports = make(map[string]*Report)
	}
	if _, ok := c.reports[key]; !ok {
		c.reports[key] = r
		c.order = append(c.order, key)
		for len(c.order) > max(c.Size, 1) {
			delete(c.reports, c.order[0])
			c.order = c.order[1:]
		}
	}
	return r, nil
}

// Stats returns the number of hits and misses so far.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Len returns the number of cached reports.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.reports)
}
