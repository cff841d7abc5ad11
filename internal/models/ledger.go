package models

import (
	"time"

	"github.com/google/uuid"
)

// Ledger rows are append-only audit records. Nothing in the application
// updates or deletes them once written.

type Upload struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"userId,omitempty"`
	FileID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"fileId"`
	UploadDate time.Time  `gorm:"not null" json:"uploadDate"`
}

type Download struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID       *uuid.UUID `gorm:"type:uuid;index" json:"userId,omitempty"`
	FileID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"fileId"`
	DownloadDate time.Time  `gorm:"not null" json:"downloadDate"`
}

// Deletion records an admin removing a file. The repository enforces that
// DeletedBy refers to an admin account.
type Deletion struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DeletedBy     uuid.UUID `gorm:"type:uuid;not null;index" json:"deletedBy"`
	FileID        uuid.UUID `gorm:"type:uuid;not null;index" json:"fileId"`
	DeletionDate  time.Time `gorm:"not null" json:"deletionDate"`
	ReasonDeleted *string   `gorm:"size:1000" json:"reasonDeleted,omitempty"`
}
