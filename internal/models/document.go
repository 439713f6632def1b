package models

import "time"

// StoredDocument is one whole JSON document (a collection or the personal info record)
// kept as a single row by the SQL store.
type StoredDocument struct {
	DocumentID      uint64 `gorm:"primaryKey;autoIncrement"`
	DocumentName    string `gorm:"uniqueIndex;size:255;not null"`
	DocumentVersion uint64 `gorm:"not null;default:0"`
	Body            JSON   `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the table name for StoredDocument
func (StoredDocument) TableName() string {
	return "stored_documents"
}
