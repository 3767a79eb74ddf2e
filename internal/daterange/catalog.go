package daterange

import (
	"errors"
	"fmt"
	"time"

	dom "Calendar/internal/domain"
)

var (
	ErrUnknownRange     = errors.New("unknown range")
	ErrRangeUnavailable = errors.New("range unavailable until data is loaded")
)

type resolveFunc func(now time.Time, extent *dom.DatasetExtent) (dom.Boundary, bool)

// Preset is one named range in the catalog.
type Preset struct {
	Key   dom.RangeKey
	Label string

	resolve resolveFunc
}

// Resolve computes the preset's boundary anchored at now. It reports false when
// the preset cannot be resolved yet (allTime without a dataset extent).
func (p Preset) Resolve(now time.Time, extent *dom.DatasetExtent) (dom.Boundary, bool) {
	return p.resolve(now, extent)
}

// Catalog is the fixed, ordered list of range presets.
type Catalog struct {
	presets []Preset
}

// NewCatalog returns the catalog in display order.
func NewCatalog() *Catalog {
	return &Catalog{presets: []Preset{
		{Key: dom.RangeToday, Label: "Today", resolve: daysBack(dom.RangeToday, 0)},
		{Key: dom.RangeYesterday, Label: "Yesterday", resolve: resolveYesterday},
		{Key: dom.RangeLast7Days, Label: "Last 7 Days", resolve: daysBack(dom.RangeLast7Days, 6)},
		{Key: dom.RangeLast30Days, Label: "Last 30 Days", resolve: daysBack(dom.RangeLast30Days, 29)},
		{Key: dom.RangeLast12Months, Label: "Last 12 Months", resolve: resolveLast12Months},
		{Key: dom.RangeAllTime, Label: "All Time", resolve: resolveAllTime},
		{Key: dom.RangeCustom, Label: "Custom Range", resolve: resolveCustom},
	}}
}

// Presets returns a copy of the catalog entries in display order.
func (c *Catalog) Presets() []Preset {
	out := make([]Preset, len(c.presets))
	copy(out, c.presets)
	return out
}

// Lookup returns the preset for key.
func (c *Catalog) Lookup(key dom.RangeKey) (Preset, bool) {
	for _, p := range c.presets {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}

// Resolve returns the boundary for key at now.
func (c *Catalog) Resolve(key dom.RangeKey, now time.Time, extent *dom.DatasetExtent) (dom.Boundary, error) {
	p, ok := c.Lookup(key)
	if !ok {
		return dom.Boundary{}, fmt.Errorf("%w: %q", ErrUnknownRange, key)
	}
	b, ok := p.Resolve(now, extent)
	if !ok {
		return dom.Boundary{}, fmt.Errorf("%w: %s", ErrRangeUnavailable, key)
	}
	return b, nil
}

// Available reports whether key can be resolved with the given extent.
func (c *Catalog) Available(key dom.RangeKey, extent *dom.DatasetExtent) bool {
	if _, ok := c.Lookup(key); !ok {
		return false
	}
	return key != dom.RangeAllTime || extent != nil
}

// Matches reports whether candidate is what key would select at now.
// Preset dates are compared by calendar day, not by instant.
func (c *Catalog) Matches(key dom.RangeKey, candidate dom.Boundary, now time.Time, extent *dom.DatasetExtent) bool {
	if candidate.Key != key {
		return false
	}
	if key == dom.RangeCustom {
		return !candidate.Empty()
	}
	if !candidate.Complete() {
		return false
	}
	want, err := c.Resolve(key, now, extent)
	if err != nil {
		return false
	}
	return SameDay(*candidate.StartDate, *want.StartDate) && SameDay(*candidate.EndDate, *want.EndDate)
}

// Active returns the key whose preset matches candidate. It reports false when
// no preset should be highlighted.
func (c *Catalog) Active(candidate dom.Boundary, now time.Time, extent *dom.DatasetExtent) (dom.RangeKey, bool) {
	for _, p := range c.presets {
		if c.Matches(p.Key, candidate, now, extent) {
			return p.Key, true
		}
	}
	return "", false
}

// daysBack covers today and the previous n days, ending at now.
func daysBack(key dom.RangeKey, n int) resolveFunc {
	return func(now time.Time, _ *dom.DatasetExtent) (dom.Boundary, bool) {
		return dom.NewBoundary(key, StartOfDay(now.AddDate(0, 0, -n)), now), true
	}
}

func resolveYesterday(now time.Time, _ *dom.DatasetExtent) (dom.Boundary, bool) {
	y := now.AddDate(0, 0, -1)
	return dom.NewBoundary(dom.RangeYesterday, StartOfDay(y), EndOfDay(y)), true
}

func resolveLast12Months(now time.Time, _ *dom.DatasetExtent) (dom.Boundary, bool) {
	return dom.NewBoundary(dom.RangeLast12Months, StartOfDay(now.AddDate(-1, 0, 0)), now), true
}

func resolveAllTime(now time.Time, extent *dom.DatasetExtent) (dom.Boundary, bool) {
	if extent == nil {
		return dom.Boundary{}, false
	}
	start := extent.Earliest
	// records stamped in the future must not invert the range
	if start.After(now) {
		start = StartOfDay(now)
	}
	return dom.NewBoundary(dom.RangeAllTime, start, now), true
}

func resolveCustom(time.Time, *dom.DatasetExtent) (dom.Boundary, bool) {
	return dom.Boundary{Key: dom.RangeCustom}, true
}
