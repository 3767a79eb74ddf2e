package dto

import (
	"encoding/json"
	"strings"
	"time"

	"Calendar/internal/utils"
)

// Timestamp parses a JSON date ("2006-01-02") or RFC3339 datetime. null or ""
// leaves it unset. Zone-less values are resolved by In.
type Timestamp struct {
	raw string
	set bool
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		*t = Timestamp{}
		return nil
	}
	if _, _, err := utils.ParseTimestamp(*raw, time.UTC); err != nil {
		return err
	}
	*t = Timestamp{raw: *raw, set: true}
	return nil
}

// IsSet reports whether a value was given.
func (t Timestamp) IsSet() bool { return t.set }

// In resolves the timestamp in loc. A date-only value means the start of that
// day, or its last instant when endOfDay is true. Nil when unset.
func (t Timestamp) In(loc *time.Location, endOfDay bool) *time.Time {
	if !t.set {
		return nil
	}
	v, dateOnly, err := utils.ParseTimestamp(t.raw, loc)
	if err != nil {
		return nil
	}
	if dateOnly && endOfDay {
		v = v.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &v
}
