package cycles

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/midbel/slices"
)

var (
	ErrEmpty        = errors.New("no cycles")
	ErrInvalidCycle = errors.New("invalid cycle")
)

// Cycle is an event bounded by a start and an end. Arrival classifies how the
// cycle ended and selects the color used to draw it.
type Cycle struct {
	Start   time.Time
	End     time.Time
	Arrival string
}

func (c Cycle) Duration() time.Duration {
	return c.End.Sub(c.Start)
}

func (c Cycle) Validate() error {
	if c.Start.IsZero() || c.End.IsZero() {
		return fmt.Errorf("%w: missing start or end", ErrInvalidCycle)
	}
	if c.End.Before(c.Start) {
		return fmt.Errorf("%w: end %s before start %s", ErrInvalidCycle, c.End.Format(time.RFC3339), c.Start.Format(time.RFC3339))
	}
	return nil
}

type Cycles []Cycle

// Sort orders the cycles by start, then by end.
func (cs Cycles) Sort() {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].Start.Equal(cs[j].Start) {
			return cs[i].End.Before(cs[j].End)
		}
		return cs[i].Start.Before(cs[j].Start)
	})
}

// Extent gives the domain going from the earliest start to the latest end.
func (cs Cycles) Extent() (Domain[time.Time], error) {
	if len(cs) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDomain, ErrEmpty)
	}
	fst, lst := slices.Fst(cs).Start, slices.Lst(cs).End
	for _, c := range cs {
		if c.Start.Before(fst) {
			fst = c.Start
		}
		if c.End.After(lst) {
			lst = c.End
		}
	}
	dom := TimeDomain(fst, lst)
	if err := CheckDomain(dom); err != nil {
		return nil, err
	}
	return dom, nil
}

// Arrivals lists the distinct arrival categories in order of first appearance.
func (cs Cycles) Arrivals() []string {
	var (
		list []string
		seen = make(map[string]struct{})
	)
	for _, c := range cs {
		if _, ok := seen[c.Arrival]; ok {
			continue
		}
		seen[c.Arrival] = struct{}{}
		list = append(list, c.Arrival)
	}
	return list
}

// Find returns the cycle starting at t.
func (cs Cycles) Find(t time.Time) (Cycle, bool) {
	for _, c := range cs {
		if c.Start.Equal(t) {
			return c, true
		}
	}
	return Cycle{}, false
}
