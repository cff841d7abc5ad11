package repositories

import (
	"testing"

	"infohub/internal/apperrors"
	"infohub/internal/models"
	"infohub/internal/policy"

	"github.com/google/uuid"
)

func TestFileRepositoryRejectsDuplicateName(t *testing.T) {
	db := openTestDB(t, "filerepo_dup")
	repo := NewFileRepository(db)

	alice := newTestUser(t, db, "alice", false)
	first := newTestFile(t, db, "report.pdf", &alice.ID, false)

	dup := *first
	dup.ID = first.ID
	if err := repo.Create(&dup); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error for duplicate name, got %v", err)
	}

	// A soft-deleted row frees the name for a fresh upload.
	if err := repo.SoftDelete(first); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	fresh := newTestFile(t, db, "other.pdf", &alice.ID, false)
	fresh.FileName = "report.pdf"
	if err := repo.Update(fresh); err != nil {
		t.Fatalf("reuse name after soft delete: %v", err)
	}
	if err := repo.SoftDelete(fresh); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if err := repo.Create(&models.File{ID: uuid.New(), FileName: "report.pdf", OwnerID: &alice.ID}); err != nil {
		t.Fatalf("re-upload of freed name: %v", err)
	}
}

func TestFileRepositorySoftDeleteExcludesFromListings(t *testing.T) {
	db := openTestDB(t, "filerepo_softdel")
	repo := NewFileRepository(db)

	file := newTestFile(t, db, "public.txt", nil, false)

	files, err := repo.ListForViewer(policy.Anonymous(), 0, 0)
	if err != nil || len(files) != 1 {
		t.Fatalf("before delete: %v len=%d", err, len(files))
	}

	if err := repo.SoftDelete(file); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	// Gone from listings and search, but the row survives for audit.
	files, err = repo.ListForViewer(policy.Anonymous(), 0, 0)
	if err != nil || len(files) != 0 {
		t.Fatalf("after delete listing: %v len=%d", err, len(files))
	}
	files, err = repo.Search("public", policy.Anonymous())
	if err != nil || len(files) != 0 {
		t.Fatalf("after delete search: %v len=%d", err, len(files))
	}

	kept, err := repo.FindByID(file.ID)
	if err != nil {
		t.Fatalf("row should survive soft delete: %v", err)
	}
	if !kept.Deleted || kept.DateDeleted == nil {
		t.Fatalf("row not marked deleted: %+v", kept)
	}
}

func TestFileRepositoryVisibility(t *testing.T) {
	db := openTestDB(t, "filerepo_vis")
	repo := NewFileRepository(db)

	alice := newTestUser(t, db, "alice", false)
	bob := newTestUser(t, db, "bob", false)

	newTestFile(t, db, "anon.txt", nil, false)
	secret := newTestFile(t, db, "secret.txt", &alice.ID, true)

	// Bob can't see alice's private file.
	files, err := repo.ListForViewer(policy.Authenticated(bob.ID, false), 0, 0)
	if err != nil {
		t.Fatalf("list bob: %v", err)
	}
	for _, f := range files {
		if f.ID == secret.ID {
			t.Fatal("bob's listing leaked alice's private file")
		}
	}

	// Alice and the admin can.
	files, err = repo.ListForViewer(policy.Authenticated(alice.ID, false), 0, 0)
	if err != nil || len(files) != 2 {
		t.Fatalf("list alice: %v len=%d", err, len(files))
	}
	files, err = repo.ListForViewer(policy.Authenticated(bob.ID, true), 0, 0)
	if err != nil || len(files) != 2 {
		t.Fatalf("list admin: %v len=%d", err, len(files))
	}
}

func TestFileRepositoryFindByName(t *testing.T) {
	db := openTestDB(t, "filerepo_name")
	repo := NewFileRepository(db)

	newTestFile(t, db, "notes.md", nil, false)

	file, err := repo.FindByName("notes.md")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if file.FileName != "notes.md" {
		t.Fatalf("wrong file: %+v", file)
	}

	if _, err := repo.FindByName("missing.md"); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}

	// Soft-deleted rows are audit records, never resolved by name.
	if err := repo.SoftDelete(file); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if _, err := repo.FindByName("notes.md"); !apperrors.IsNotFound(err) {
		t.Fatalf("deleted row resolved by name: %v", err)
	}
}
