package events

import (
	"time"

	"github.com/google/uuid"
)

// ResourceEvent describes a create/update/delete on a note, file,
// bookmark or group. ActionBy is empty for anonymous actors.
type ResourceEvent struct {
	EventType    string    `json:"eventType"`
	ResourceType string    `json:"resourceType"`
	ResourceID   string    `json:"resourceId"`
	OwnerID      string    `json:"ownerId,omitempty"`
	ActionBy     string    `json:"actionBy,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// FileActivityEvent mirrors a ledger append: an upload, download or
// admin deletion of a file.
type FileActivityEvent struct {
	EventType string    `json:"eventType"`
	FileID    string    `json:"fileId"`
	FileName  string    `json:"fileName"`
	ActionBy  string    `json:"actionBy,omitempty"`
	Reason    *string   `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewResourceEvent creates a new resource event
func NewResourceEvent(eventType, resourceType string, resourceID uuid.UUID, ownerID, actionBy *uuid.UUID) *ResourceEvent {
	event := &ResourceEvent{
		EventType:    eventType,
		ResourceType: resourceType,
		ResourceID:   resourceID.String(),
		Timestamp:    time.Now(),
	}
	if ownerID != nil {
		event.OwnerID = ownerID.String()
	}
	if actionBy != nil {
		event.ActionBy = actionBy.String()
	}
	return event
}

// NewFileActivityEvent creates a new file activity event
func NewFileActivityEvent(eventType string, fileID uuid.UUID, fileName string, actionBy *uuid.UUID) *FileActivityEvent {
	event := &FileActivityEvent{
		EventType: eventType,
		FileID:    fileID.String(),
		FileName:  fileName,
		Timestamp: time.Now(),
	}
	if actionBy != nil {
		event.ActionBy = actionBy.String()
	}
	return event
}
