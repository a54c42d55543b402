package model

// Record is implemented by every persisted entity. Collection names the
// backing collection; SetID attaches the generated identifier after a query
// so it surfaces as a plain "id" field in responses.
type Record interface {
	Collection() string
	SetID(id string)
}

// Base contains common fields for all records. The ID is empty until the
// store attaches one; omitempty keeps it out of the stored document.
type Base struct {
	ID string `json:"id,omitempty"`
}

func (b *Base) SetID(id string) { b.ID = id }
