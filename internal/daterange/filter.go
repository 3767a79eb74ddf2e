package daterange

import dom "Calendar/internal/domain"

// Filter returns the records whose CreatedAt lies inside b, inclusive on both
// ends, in input order. The input slice is never modified.
func Filter(b dom.Boundary, records []dom.Record) []dom.Record {
	out := make([]dom.Record, 0, len(records))
	if !b.Complete() {
		return out
	}
	for _, r := range records {
		if r.HasTimestamp() && b.Contains(r.CreatedAt) {
			out = append(out, r)
		}
	}
	return out
}

// ExtentOf returns the earliest and latest CreatedAt, or nil when no record
// carries a timestamp.
func ExtentOf(records []dom.Record) *dom.DatasetExtent {
	var ext *dom.DatasetExtent
	for _, r := range records {
		if !r.HasTimestamp() {
			continue
		}
		if ext == nil {
			ext = &dom.DatasetExtent{Earliest: r.CreatedAt, Latest: r.CreatedAt}
			continue
		}
		if r.CreatedAt.Before(ext.Earliest) {
			ext.Earliest = r.CreatedAt
		}
		if r.CreatedAt.After(ext.Latest) {
			ext.Latest = r.CreatedAt
		}
	}
	return ext
}
