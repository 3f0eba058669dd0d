package cycles

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDomain is returned when the lower bound of a domain is not strictly
// before its upper bound.
var ErrInvalidDomain = errors.New("invalid domain")

type ScalerConstraint interface {
	~float64 | time.Time
}

type Domain[T ScalerConstraint] interface {
	Diff(T) float64
	Extend() float64
	Values(int) []T
	Bounds() (T, T)
}

type numberDomain struct {
	fst float64
	lst float64
}

// NumberDomain creates a domain from f to t. f greater than t gives a reversed
// domain, used by vertical axis growing upward.
func NumberDomain(f, t float64) Domain[float64] {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Bounds() (float64, float64) {
	return n.fst, n.lst
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

func (n numberDomain) Values(c int) []float64 {
	if c <= 0 {
		return []float64{n.fst, n.lst}
	}
	var (
		all  = make([]float64, c)
		step = n.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = n.fst + float64(i)*step
	}
	all = append(all, n.lst)
	return all
}

type timeDomain struct {
	fst time.Time
	lst time.Time
}

func TimeDomain(f, t time.Time) Domain[time.Time] {
	return timeDomain{
		fst: f,
		lst: t,
	}
}

func (t timeDomain) Bounds() (time.Time, time.Time) {
	return t.fst, t.lst
}

// Diff gives the nanoseconds elapsed between the lower bound and v. Seconds
// and nanoseconds are subtracted apart so that the result does not saturate
// like time.Duration does past 292 years.
func (t timeDomain) Diff(v time.Time) float64 {
	return elapsed(t.fst, v)
}

func (t timeDomain) Extend() float64 {
	return elapsed(t.fst, t.lst)
}

func elapsed(from, to time.Time) float64 {
	var (
		sec = to.Unix() - from.Unix()
		ns  = to.Nanosecond() - from.Nanosecond()
	)
	return float64(sec)*float64(time.Second) + float64(ns)
}

func (t timeDomain) Values(c int) []time.Time {
	if c <= 0 {
		return []time.Time{t.fst, t.lst}
	}
	var (
		all  = make([]time.Time, c)
		step = t.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = t.fst.Add(time.Duration(float64(i) * step))
	}
	all = append(all, t.lst)
	return all
}

// CheckDomain reports ErrInvalidDomain when dom does not span a strictly
// increasing interval of time.
func CheckDomain(dom Domain[time.Time]) error {
	if dom == nil {
		return ErrInvalidDomain
	}
	fst, lst := dom.Bounds()
	if !fst.Before(lst) {
		return fmt.Errorf("%w: %s not before %s", ErrInvalidDomain, fst.Format(time.RFC3339), lst.Format(time.RFC3339))
	}
	return nil
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Space() float64
	Values(int) []T
	Max() float64
	Min() float64
}

// interpolate gives the value at t of the linear interpolation between the
// bounds of rg. t equal to 0 and 1 give exactly rg.F and rg.T.
func interpolate(rg Range, t float64) float64 {
	return rg.F*(1-t) + rg.T*t
}

type numberScaler struct {
	Range
	Domain[float64]
}

func NumberScaler(dom Domain[float64], rg Range) Scaler[float64] {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (n numberScaler) Scale(v float64) float64 {
	return interpolate(n.Range, n.Diff(v)/n.Extend())
}

func (n numberScaler) Space() float64 {
	return n.Len() / n.Extend()
}

type timeScaler struct {
	Range
	Domain[time.Time]
}

func TimeScaler(dom Domain[time.Time], rg Range) Scaler[time.Time] {
	return timeScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (s timeScaler) Scale(v time.Time) float64 {
	return interpolate(s.Range, s.Diff(v)/s.Extend())
}

// Space gives the number of pixels covered by one nanosecond.
func (s timeScaler) Space() float64 {
	return s.Len() / s.Extend()
}

// MapDuration gives the pixel positions of start and end on the linear time
// scale mapping dom onto rg. Positions outside of the domain are extrapolated,
// never clamped.
func MapDuration(dom Domain[time.Time], rg Range, start, end time.Time) (float64, float64, error) {
	if err := CheckDomain(dom); err != nil {
		return 0, 0, err
	}
	s := TimeScaler(dom, rg)
	return s.Scale(start), s.Scale(end), nil
}
