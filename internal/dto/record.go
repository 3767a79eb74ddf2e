package dto

// CreateRecordRequest is the JSON body for POST /records.
type CreateRecordRequest struct {
	ID        string    `json:"id" binding:"max=64"` // optional; assigned when empty
	Name      string    `json:"name" binding:"required,min=1,max=200"`
	CreatedAt Timestamp `json:"createdAt"`
}
