package repositories

import (
	"testing"

	"infohub/internal/apperrors"
	"infohub/internal/models"
	"infohub/internal/policy"

	"github.com/google/uuid"
)

func TestGroupDeleteOrphansBookmarks(t *testing.T) {
	db := openTestDB(t, "grouprepo_orphan")
	groups := NewGroupRepository(db)
	bookmarks := NewBookmarkRepository(db)

	alice := newTestUser(t, db, "alice", false)

	group := &models.Group{ID: uuid.New(), Name: "reading", OwnerID: &alice.ID}
	if err := groups.Create(group); err != nil {
		t.Fatalf("create group: %v", err)
	}

	bm := &models.Bookmark{
		ID:      uuid.New(),
		Title:   "go blog",
		Href:    "https://go.dev/blog",
		OwnerID: &alice.ID,
		GroupID: &group.ID,
	}
	if err := bookmarks.Create(bm); err != nil {
		t.Fatalf("create bookmark: %v", err)
	}

	if err := groups.DeleteAndOrphanBookmarks(group); err != nil {
		t.Fatalf("delete group: %v", err)
	}

	// The bookmark survives, detached from the group.
	got, err := bookmarks.FindByID(bm.ID)
	if err != nil {
		t.Fatalf("bookmark should survive group deletion: %v", err)
	}
	if got.GroupID != nil {
		t.Fatalf("bookmark still references deleted group: %+v", got)
	}

	if _, err := groups.FindByID(group.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("expected group gone, got %v", err)
	}
}

func TestGroupNameUniquePerOwner(t *testing.T) {
	db := openTestDB(t, "grouprepo_unique")
	repo := NewGroupRepository(db)

	alice := newTestUser(t, db, "alice", false)
	bob := newTestUser(t, db, "bob", false)

	if err := repo.Create(&models.Group{ID: uuid.New(), Name: "work", OwnerID: &alice.ID}); err != nil {
		t.Fatalf("create: %v", err)
	}
	// Same name, same owner: rejected.
	err := repo.Create(&models.Group{ID: uuid.New(), Name: "work", OwnerID: &alice.ID})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	// Same name, different owner: fine.
	if err := repo.Create(&models.Group{ID: uuid.New(), Name: "work", OwnerID: &bob.ID}); err != nil {
		t.Fatalf("same name other owner: %v", err)
	}
}

func TestGroupListPreloadsBookmarks(t *testing.T) {
	db := openTestDB(t, "grouprepo_list")
	groups := NewGroupRepository(db)
	bookmarks := NewBookmarkRepository(db)

	alice := newTestUser(t, db, "alice", false)
	group := &models.Group{ID: uuid.New(), Name: "tools", OwnerID: &alice.ID}
	if err := groups.Create(group); err != nil {
		t.Fatalf("create group: %v", err)
	}
	if err := bookmarks.Create(&models.Bookmark{
		ID: uuid.New(), Title: "pkg.go.dev", Href: "https://pkg.go.dev",
		OwnerID: &alice.ID, GroupID: &group.ID,
	}); err != nil {
		t.Fatalf("create bookmark: %v", err)
	}

	list, err := groups.ListForViewer(policy.Authenticated(alice.ID, false), 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || len(list[0].Bookmarks) != 1 {
		t.Fatalf("listing = %+v", list)
	}

	// Another user sees nothing of alice's groups.
	list, err = groups.ListForViewer(policy.Authenticated(uuid.New(), false), 0, 0)
	if err != nil || len(list) != 0 {
		t.Fatalf("stranger listing: %v %+v", err, list)
	}
}
