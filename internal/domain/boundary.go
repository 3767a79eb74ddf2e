package domain

import "time"

// RangeKey identifies which preset produced a Boundary.
type RangeKey string

const (
	RangeToday        RangeKey = "today"
	RangeYesterday    RangeKey = "yesterday"
	RangeLast7Days    RangeKey = "last7Days"
	RangeLast30Days   RangeKey = "last30Days"
	RangeLast12Months RangeKey = "last12Months"
	RangeAllTime      RangeKey = "allTime"
	RangeCustom       RangeKey = "custom"
)

var rangeKeys = []RangeKey{
	RangeToday, RangeYesterday, RangeLast7Days, RangeLast30Days,
	RangeLast12Months, RangeAllTime, RangeCustom,
}

// ParseRangeKey returns the RangeKey named by s. Matching is exact.
func ParseRangeKey(s string) (RangeKey, bool) {
	for _, k := range rangeKeys {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

func (k RangeKey) String() string { return string(k) }

// Boundary is the active [StartDate, EndDate] pair plus its provenance.
// Preset boundaries always have both dates set; custom ones may not.
type Boundary struct {
	StartDate *time.Time
	EndDate   *time.Time
	Key       RangeKey
}

// NewBoundary returns a boundary with both dates set.
func NewBoundary(key RangeKey, start, end time.Time) Boundary {
	return Boundary{StartDate: &start, EndDate: &end, Key: key}
}

// Complete reports whether both endpoints are set.
func (b Boundary) Complete() bool { return b.StartDate != nil && b.EndDate != nil }

// Empty reports whether neither endpoint is set.
func (b Boundary) Empty() bool { return b.StartDate == nil && b.EndDate == nil }

// Inverted reports whether a complete boundary ends before it starts.
func (b Boundary) Inverted() bool {
	return b.Complete() && b.StartDate.After(*b.EndDate)
}

// Contains reports whether t lies in [StartDate, EndDate], inclusive, at full
// precision. An incomplete boundary contains nothing.
func (b Boundary) Contains(t time.Time) bool {
	if !b.Complete() {
		return false
	}
	return !t.Before(*b.StartDate) && !t.After(*b.EndDate)
}
