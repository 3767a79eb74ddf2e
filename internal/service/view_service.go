package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"Calendar/internal/cache"
	"Calendar/internal/daterange"
	dom "Calendar/internal/domain"
	"Calendar/internal/engine"
	"Calendar/internal/repo"
	"Calendar/internal/utils"

	"golang.org/x/sync/singleflight"
)

var (
	ErrUnknownRange     = daterange.ErrUnknownRange
	ErrRangeUnavailable = daterange.ErrRangeUnavailable
	ErrInvalidEndpoint  = errors.New("endpoint must be start or end")
	ErrSourceFailed     = errors.New("record source unavailable")
	ErrReadOnlySource   = errors.New("record source is read-only")
	ErrDuplicateRecord  = errors.New("record id already exists")
	ErrInvalidRecord    = errors.New("record needs a name and a timestamp")
)

// StateStore persists engine state per session.
type StateStore interface {
	Load(ctx context.Context, id string) (engine.State, bool, error)
	Save(ctx context.Context, id string, state engine.State) error
	Reset(ctx context.Context, id string) error
}

// Snapshot is what a client needs to render the current selection.
type Snapshot struct {
	Boundary         dom.Boundary
	ActivePreset     dom.RangeKey // empty when nothing is highlighted
	PendingCustom    bool
	AllTimeAvailable bool
	Extent           *dom.DatasetExtent
	Items            []dom.Record
}

// RangeOption is one catalog entry as seen from a session.
type RangeOption struct {
	Key       dom.RangeKey
	Label     string
	Available bool
	Selected  bool
	// Boundary is what selecting the preset would apply now. Nil when unavailable.
	Boundary *dom.Boundary
}

type ViewService struct {
	catalog  *daterange.Catalog
	source   repo.RecordSource
	cache    *cache.RecordCache
	sessions StateStore
	now      func() time.Time
	sf       singleflight.Group
}

// NewViewService creates a ViewService. If c is nil, caching is disabled.
// now defaults to time.Now.
func NewViewService(catalog *daterange.Catalog, src repo.RecordSource, c *cache.RecordCache, sessions StateStore, now func() time.Time) *ViewService {
	if now == nil {
		now = time.Now
	}
	return &ViewService{catalog: catalog, source: src, cache: c, sessions: sessions, now: now}
}

// View returns the session's current selection and filtered records.
func (s *ViewService) View(ctx context.Context, sessionID string) (Snapshot, error) {
	e, now, err := s.open(ctx, sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(e, now), nil
}

// SelectPreset applies a named range. Unknown and unavailable ranges leave the
// session unchanged.
func (s *ViewService) SelectPreset(ctx context.Context, sessionID, key string) (Snapshot, error) {
	k, ok := dom.ParseRangeKey(strings.TrimSpace(key))
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownRange, key)
	}
	e, now, err := s.open(ctx, sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	if err := e.SelectPreset(k, now); err != nil {
		return Snapshot{}, err
	}
	if err := s.sessions.Save(ctx, sessionID, e.State()); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(e, now), nil
}

// SelectCustomEndpoint sets or clears one end of the custom range.
func (s *ViewService) SelectCustomEndpoint(ctx context.Context, sessionID, which string, value *time.Time) (Snapshot, error) {
	w, ok := engine.ParseEndpoint(which)
	if !ok {
		return Snapshot{}, ErrInvalidEndpoint
	}
	e, now, err := s.open(ctx, sessionID)
	if err != nil {
		return Snapshot{}, err
	}
	e.SelectCustomEndpoint(w, value)
	if err := s.sessions.Save(ctx, sessionID, e.State()); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(e, now), nil
}

// Reset forgets the session's selection; the next view starts at today.
func (s *ViewService) Reset(ctx context.Context, sessionID string) error {
	return s.sessions.Reset(ctx, sessionID)
}

// Ranges lists the catalog with availability and selection for the session.
func (s *ViewService) Ranges(ctx context.Context, sessionID string) ([]RangeOption, error) {
	e, now, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	var extent *dom.DatasetExtent
	if ext, ok := e.Extent(); ok {
		extent = &ext
	}
	active, hasActive := e.ActivePresetKey(now)

	presets := s.catalog.Presets()
	out := make([]RangeOption, 0, len(presets))
	for _, p := range presets {
		opt := RangeOption{
			Key:       p.Key,
			Label:     p.Label,
			Available: s.catalog.Available(p.Key, extent),
			Selected:  hasActive && active == p.Key,
		}
		if b, ok := p.Resolve(now, extent); ok && b.Complete() {
			opt.Boundary = &b
		}
		out = append(out, opt)
	}
	return out, nil
}

// Reload drops cached records so the next request reads the source again.
func (s *ViewService) Reload(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx)
}

// CreateRecord adds a record when the source accepts writes.
func (s *ViewService) CreateRecord(ctx context.Context, id, name string, createdAt time.Time) (dom.Record, error) {
	w, ok := s.source.(repo.RecordWriter)
	if !ok {
		return dom.Record{}, ErrReadOnlySource
	}
	name = strings.TrimSpace(name)
	if name == "" || createdAt.IsZero() {
		return dom.Record{}, ErrInvalidRecord
	}
	r, err := w.Create(ctx, dom.Record{ID: strings.TrimSpace(id), Name: name, CreatedAt: createdAt})
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Record{}, ErrDuplicateRecord
		}
		return dom.Record{}, err
	}
	if err := s.Reload(ctx); err != nil {
		log.Printf("records cache invalidate: %v", err)
	}
	return r, nil
}

// open rebuilds the session's engine on top of the current record collection.
func (s *ViewService) open(ctx context.Context, sessionID string) (*engine.Engine, time.Time, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}
	state, ok, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, time.Time{}, err
	}

	now := s.now()
	e := engine.New(s.catalog, now)
	e.SetRecords(records)
	if ok {
		e.Restore(state)
	}
	return e, now, nil
}

func (s *ViewService) records(ctx context.Context) ([]dom.Record, error) {
	if s.cache == nil {
		return s.load(ctx)
	}
	v, err, _ := s.sf.Do("records", func() (interface{}, error) {
		// shared by every waiting caller, so one cancelled request must not fail the rest
		ctx := context.WithoutCancel(ctx)
		list, ok, err := s.cache.GetList(ctx)
		if err != nil {
			log.Printf("records cache read: %v", err)
		}
		if ok {
			return list, nil
		}
		list, err = s.load(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetList(ctx, list); err != nil {
			log.Printf("records cache write: %v", err)
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Record), nil
}

func (s *ViewService) load(ctx context.Context) ([]dom.Record, error) {
	list, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceFailed, err)
	}
	return list, nil
}

func (s *ViewService) snapshot(e *engine.Engine, now time.Time) Snapshot {
	snap := Snapshot{
		Boundary:         e.Boundary(),
		PendingCustom:    e.PendingCustom(),
		AllTimeAvailable: e.IsAllTimeAvailable(),
		Items:            e.CurrentView(),
	}
	if key, ok := e.ActivePresetKey(now); ok {
		snap.ActivePreset = key
	}
	if ext, ok := e.Extent(); ok {
		snap.Extent = &ext
	}
	return snap
}
