package domain

import "time"

// Record is a single row of the dataset shown to the user.
// Owned by the data source; never modified after it is loaded.
type Record struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// HasTimestamp reports whether CreatedAt was parsed. Records without one are
// left out of every extent and view.
func (r Record) HasTimestamp() bool { return !r.CreatedAt.IsZero() }

// DatasetExtent is the min/max CreatedAt over a loaded record collection.
type DatasetExtent struct {
	Earliest time.Time
	Latest   time.Time
}
