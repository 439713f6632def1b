package models

// Entity is a record stored in an array document and identified by an integer id.
type Entity[T any] interface {
	GetID() int64
	WithID(id int64) T
}

// Audit holds the free-form bookkeeping fields every collection record carries.
// Clients fill them (typically "01/01/2025, 00:00:00" style timestamps and a username);
// the service stores them untouched.
type Audit struct {
	CreatedAt string `json:"createdAt"`
	CreatedBy string `json:"createdBy"`
	UpdatedAt string `json:"updatedAt"`
	UpdatedBy string `json:"updatedBy"`
}
