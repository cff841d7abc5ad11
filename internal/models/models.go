package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username     string    `gorm:"size:20;not null;unique" json:"username"`
	Email        *string   `gorm:"size:120;unique" json:"email,omitempty"`
	PasswordHash string    `gorm:"size:120;not null" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Note struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title     string     `gorm:"size:100;not null" json:"title"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	OwnerID   *uuid.UUID `gorm:"type:uuid;index" json:"ownerId,omitempty"`
	Private   bool       `gorm:"not null" json:"private"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type File struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	FileName       string     `gorm:"size:100;not null;index" json:"fileName"`
	OwnerID        *uuid.UUID `gorm:"type:uuid;index" json:"ownerId,omitempty"`
	Private        bool       `gorm:"not null;default:false" json:"private"`
	Details        string     `gorm:"size:200" json:"details,omitempty"`
	Size           string     `gorm:"size:50" json:"size,omitempty"`
	FileType       string     `gorm:"size:100" json:"fileType,omitempty"`
	Deleted        bool       `gorm:"not null;default:false" json:"deleted"`
	DateDeleted    *time.Time `json:"dateDeleted,omitempty"`
	LastDownloaded *time.Time `json:"lastDownloaded,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type Group struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name      string     `gorm:"size:100;not null;uniqueIndex:idx_group_owner_name" json:"name"`
	OwnerID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_group_owner_name" json:"ownerId,omitempty"`
	Private   bool       `gorm:"not null;default:false" json:"private"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	Bookmarks []Bookmark `gorm:"foreignKey:GroupID" json:"bookmarks,omitempty"`
}

type Bookmark struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title     string     `gorm:"size:100;not null" json:"title"`
	Href      string     `gorm:"type:text;not null" json:"href"`
	OwnerID   *uuid.UUID `gorm:"type:uuid;index" json:"ownerId,omitempty"`
	GroupID   *uuid.UUID `gorm:"type:uuid;index" json:"groupId,omitempty"`
	Private   bool       `gorm:"not null;default:false" json:"private"`
	Details   string     `gorm:"size:100" json:"details,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ResourceOwnerID implements policy.Ownable.
func (n *Note) ResourceOwnerID() *uuid.UUID     { return n.OwnerID }
func (n *Note) ResourcePrivate() bool           { return n.Private }
func (f *File) ResourceOwnerID() *uuid.UUID     { return f.OwnerID }
func (f *File) ResourcePrivate() bool           { return f.Private }
func (g *Group) ResourceOwnerID() *uuid.UUID    { return g.OwnerID }
func (g *Group) ResourcePrivate() bool          { return g.Private }
func (b *Bookmark) ResourceOwnerID() *uuid.UUID { return b.OwnerID }
func (b *Bookmark) ResourcePrivate() bool       { return b.Private }
