// Package engine holds the active range selection for one view and derives the
// filtered record set from it.
package engine

import (
	"fmt"
	"slices"
	"time"

	"Calendar/internal/daterange"
	dom "Calendar/internal/domain"
)

// Endpoint names one side of a custom range.
type Endpoint string

const (
	EndpointStart Endpoint = "start"
	EndpointEnd   Endpoint = "end"
)

// ParseEndpoint accepts "start" or "end".
func ParseEndpoint(s string) (Endpoint, bool) {
	switch Endpoint(s) {
	case EndpointStart, EndpointEnd:
		return Endpoint(s), true
	}
	return "", false
}

// State is the part of an Engine that outlives a single request.
type State struct {
	Boundary dom.Boundary
	// Applied is the last complete boundary used to filter. It differs from
	// Boundary while a custom range is pending.
	Applied dom.Boundary
}

// Engine is not safe for concurrent use. Every mutation recomputes the view in
// full before returning.
type Engine struct {
	catalog *daterange.Catalog

	boundary dom.Boundary
	applied  dom.Boundary
	records  []dom.Record
	extent   *dom.DatasetExtent
	view     []dom.Record
}

// New returns an engine selecting today at now, with no records.
func New(catalog *daterange.Catalog, now time.Time) *Engine {
	b, err := catalog.Resolve(dom.RangeToday, now, nil)
	if err != nil {
		panic(fmt.Sprintf("engine: default range: %v", err))
	}
	e := &Engine{catalog: catalog, view: []dom.Record{}}
	e.SetBoundary(b)
	return e
}

// SetBoundary makes b the active boundary. Preset boundaries are applied at
// once. Custom boundaries are applied only when both dates are set and in order;
// until then the current view is kept.
func (e *Engine) SetBoundary(b dom.Boundary) {
	if b.Key != dom.RangeCustom {
		if !b.Complete() || b.Inverted() {
			panic(fmt.Sprintf("engine: invalid %s boundary %s", b.Key, describe(b)))
		}
		e.boundary = b
		e.apply(b)
		return
	}
	e.boundary = b
	if b.Complete() && !b.Inverted() {
		e.apply(b)
	}
}

// SetRecords replaces the full record collection, recomputes the dataset
// extent and re-filters with the applied boundary.
func (e *Engine) SetRecords(records []dom.Record) {
	e.records = records
	e.extent = daterange.ExtentOf(records)
	e.recompute()
}

// SelectPreset resolves key at now and makes it the active boundary. On error
// the engine is unchanged.
func (e *Engine) SelectPreset(key dom.RangeKey, now time.Time) error {
	b, err := e.catalog.Resolve(key, now, e.extent)
	if err != nil {
		return err
	}
	e.SetBoundary(b)
	return nil
}

// SelectCustomEndpoint sets one end of the custom range. A nil value clears it.
// If a preset is active, the other end starts out unset.
func (e *Engine) SelectCustomEndpoint(which Endpoint, value *time.Time) {
	b := dom.Boundary{Key: dom.RangeCustom}
	if e.boundary.Key == dom.RangeCustom {
		b = e.boundary
	}
	if value != nil {
		v := *value
		value = &v
	}
	switch which {
	case EndpointStart:
		b.StartDate = value
	case EndpointEnd:
		b.EndDate = value
	default:
		return
	}
	e.SetBoundary(b)
}

// CurrentView returns the records inside the applied boundary.
func (e *Engine) CurrentView() []dom.Record {
	return slices.Clone(e.view)
}

// ActivePresetKey returns the catalog entry matching the active boundary at now.
func (e *Engine) ActivePresetKey(now time.Time) (dom.RangeKey, bool) {
	return e.catalog.Active(e.boundary, now, e.extent)
}

// IsAllTimeAvailable reports whether records with timestamps have been loaded.
func (e *Engine) IsAllTimeAvailable() bool {
	return e.catalog.Available(dom.RangeAllTime, e.extent)
}

// PendingCustom reports whether a custom range is selected but filtering is
// withheld because an endpoint is missing or the range ends before it starts.
func (e *Engine) PendingCustom() bool {
	return e.boundary.Key == dom.RangeCustom && (!e.boundary.Complete() || e.boundary.Inverted())
}

func (e *Engine) Boundary() dom.Boundary { return e.boundary }

// Extent returns the dataset extent of the loaded records.
func (e *Engine) Extent() (dom.DatasetExtent, bool) {
	if e.extent == nil {
		return dom.DatasetExtent{}, false
	}
	return *e.extent, true
}

func (e *Engine) State() State {
	return State{Boundary: e.boundary, Applied: e.applied}
}

// Restore replaces the selection with s and re-filters the loaded records.
// An applied boundary that cannot filter is ignored.
func (e *Engine) Restore(s State) {
	e.boundary = s.Boundary
	if s.Applied.Complete() && !s.Applied.Inverted() {
		e.applied = s.Applied
	}
	e.recompute()
}

func (e *Engine) apply(b dom.Boundary) {
	e.applied = b
	e.recompute()
}

func (e *Engine) recompute() {
	e.view = daterange.Filter(e.applied, e.records)
}

func describe(b dom.Boundary) string {
	f := func(t *time.Time) string {
		if t == nil {
			return "nil"
		}
		return t.Format(time.RFC3339)
	}
	return "[" + f(b.StartDate) + ", " + f(b.EndDate) + "]"
}
