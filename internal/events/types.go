package events

// Resource Event Types
const (
	NoteCreated = "NOTE_CREATED"
	NoteUpdated = "NOTE_UPDATED"
	NoteDeleted = "NOTE_DELETED"

	BookmarkCreated = "BOOKMARK_CREATED"
	BookmarkUpdated = "BOOKMARK_UPDATED"
	BookmarkDeleted = "BOOKMARK_DELETED"

	GroupCreated = "GROUP_CREATED"
	GroupUpdated = "GROUP_UPDATED"
	GroupDeleted = "GROUP_DELETED"

	FileUploaded = "FILE_UPLOADED"
	FileUpdated  = "FILE_UPDATED"
)

// File Activity Event Types (mirror of the ledger rows)
const (
	FileDownloaded = "FILE_DOWNLOADED"
	FileDeleted    = "FILE_DELETED"
)

// Kafka Topics
const (
	ResourceChangesTopic = "resource.changes"
	FileActivityTopic    = "file.activity"
)

// Resource Types
const (
	ResourceTypeNote     = "note"
	ResourceTypeFile     = "file"
	ResourceTypeBookmark = "bookmark"
	ResourceTypeGroup    = "group"
)
