package dto

import "time"

type SelectPresetRequest struct {
	Key string `json:"key" binding:"required"`
}

// SelectCustomRequest sets one end of the custom range. A null value clears it.
type SelectCustomRequest struct {
	Which string    `json:"which" binding:"required,oneof=start end"`
	Value Timestamp `json:"value"` // "2024-06-15" or RFC3339; null = clear
}

type BoundaryResponse struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	Key       string     `json:"key"`
}

type ExtentResponse struct {
	Earliest time.Time `json:"earliest"`
	Latest   time.Time `json:"latest"`
}

type RecordResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Date      string    `json:"date"` // YYYY-MM-DD in the service time zone
}

type ViewResponse struct {
	Boundary         BoundaryResponse `json:"boundary"`
	ActivePreset     *string          `json:"activePreset"`
	PendingCustom    bool             `json:"pendingCustom"`
	AllTimeAvailable bool             `json:"allTimeAvailable"`
	Extent           *ExtentResponse  `json:"extent"`
	Count            int              `json:"count"`
	Items            []RecordResponse `json:"items"`
}

type RangeResponse struct {
	Key       string     `json:"key"`
	Label     string     `json:"label"`
	Available bool       `json:"available"`
	Selected  bool       `json:"selected"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

type ListRangesResponse struct {
	Items []RangeResponse `json:"items"`
}
