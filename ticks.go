package cycles

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const Day = 24 * time.Hour

var units = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    Day,
	"week":   7 * Day,
}

// ParseStep understands "every <unit>", "every <n> <unit>s" and the syntax
// of time.ParseDuration.
func ParseStep(str string) (time.Duration, error) {
	str = strings.TrimSpace(strings.ToLower(str))
	if !strings.HasPrefix(str, "every") {
		d, err := time.ParseDuration(str)
		if err != nil {
			return 0, err
		}
		if d <= 0 {
			return 0, fmt.Errorf("%s: step should be positive", str)
		}
		return d, nil
	}
	parts := strings.Fields(strings.TrimPrefix(str, "every"))
	count := 1
	switch len(parts) {
	case 1:
	case 2:
		n, err := strconv.Atoi(parts[0])
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("%s: invalid step count", str)
		}
		count = n
		parts = parts[1:]
	default:
		return 0, fmt.Errorf("%s: invalid step", str)
	}
	unit, ok := units[strings.TrimSuffix(parts[0], "s")]
	if !ok {
		return 0, fmt.Errorf("%s: unknown unit", str)
	}
	return time.Duration(count) * unit, nil
}

// EveryStep gives the instants aligned on step (in UTC) that fall inside dom.
func EveryStep(dom Domain[time.Time], step time.Duration) []time.Time {
	if dom == nil || step <= 0 {
		return nil
	}
	fst, lst := dom.Bounds()
	if lst.Before(fst) {
		return nil
	}
	var (
		list []time.Time
		curr = fst.UTC().Truncate(step)
	)
	if curr.Before(fst) {
		curr = curr.Add(step)
	}
	for !curr.After(lst) {
		list = append(list, curr)
		curr = curr.Add(step)
	}
	return list
}
