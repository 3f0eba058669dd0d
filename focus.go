package cycles

import (
	"time"
)

const (
	FullOpacity   = 1.0
	DimmedOpacity = 0.4
)

// Focus holds the start of the cycle currently under the pointer. The zero
// value has no focus.
//
// Focus is not safe for concurrent use.
type Focus struct {
	at  time.Time
	set bool
}

// Update moves the focus to t. It reports false and leaves the focus as it is
// when t is already focused, which is the common case when the pointer moves
// over the same cycle.
func (f *Focus) Update(t time.Time) bool {
	if f.set && f.at.Equal(t) {
		return false
	}
	f.at = t
	f.set = true
	return true
}

// Clear removes the focus. It reports whether a focus was set.
func (f *Focus) Clear() bool {
	was := f.set
	f.at = time.Time{}
	f.set = false
	return was
}

func (f *Focus) Current() (time.Time, bool) {
	if f == nil {
		return time.Time{}, false
	}
	return f.at, f.set
}

// Focused reports whether the cycle starting at t is the focused one.
func (f *Focus) Focused(t time.Time) bool {
	if f == nil || !f.set {
		return false
	}
	return f.at.Equal(t)
}

// Opacity gives the opacity of the cycle starting at t given dim as the opacity
// of cycles left in the background.
func (f *Focus) Opacity(t time.Time, dim float64) float64 {
	if f == nil || !f.set || f.at.Equal(t) {
		return FullOpacity
	}
	return dim
}
