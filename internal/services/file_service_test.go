package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"infohub/internal/apperrors"
	"infohub/internal/models"
	"infohub/internal/policy"
	"infohub/internal/repositories"
	"infohub/internal/storage"

	"gorm.io/gorm"
)

func newFileService(t *testing.T, name string) (*FileService, *gorm.DB, string) {
	t.Helper()
	db := openTestDB(t, name)
	dir := t.TempDir()
	reconciler, err := storage.NewReconciler(dir, repositories.NewFileRepository(db))
	if err != nil {
		t.Fatalf("new reconciler: %v", err)
	}
	return NewFileService(db, reconciler, nil, nil), db, dir
}

func TestUploadBackfillsMetadataAndLedger(t *testing.T) {
	svc, db, dir := newFileService(t, "svc_file_upload")
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", false)
	viewer := policy.Authenticated(alice.ID, false)

	content := strings.Repeat("x", 2048)
	file, err := svc.Upload(ctx, "report final.pdf", strings.NewReader(content), true, "quarterly numbers", viewer)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if file.FileName != "report_final.pdf" {
		t.Fatalf("file name not sanitized: %q", file.FileName)
	}
	if file.Size != "2.00 KB" || file.FileType != "pdf" {
		t.Fatalf("metadata not backfilled: size=%q type=%q", file.Size, file.FileType)
	}
	if data, err := os.ReadFile(filepath.Join(dir, file.FileName)); err != nil || len(data) != 2048 {
		t.Fatalf("bytes not on disk: err=%v len=%d", err, len(data))
	}

	var uploads []models.Upload
	if err := db.Where("file_id = ?", file.ID).Find(&uploads).Error; err != nil {
		t.Fatalf("read upload ledger: %v", err)
	}
	if len(uploads) != 1 || uploads[0].UserID == nil || *uploads[0].UserID != alice.ID {
		t.Fatalf("upload ledger row wrong: %+v", uploads)
	}
}

func TestAnonymousUploadMustBePublic(t *testing.T) {
	svc, _, _ := newFileService(t, "svc_file_anon")
	ctx := context.Background()

	_, err := svc.Upload(ctx, "leak.txt", strings.NewReader("data"), true, "", policy.Anonymous())
	if !apperrors.IsValidation(err) {
		t.Fatalf("anonymous private upload: expected validation error, got %v", err)
	}

	file, err := svc.Upload(ctx, "drop.txt", strings.NewReader("data"), false, "", policy.Anonymous())
	if err != nil {
		t.Fatalf("anonymous public upload: %v", err)
	}
	if file.OwnerID != nil {
		t.Fatal("anonymous upload should be unowned")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	svc, db, dir := newFileService(t, "svc_file_confirm")
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", false)
	viewer := policy.Authenticated(alice.ID, false)

	file, err := svc.Upload(ctx, "notes.txt", strings.NewReader("scratch"), false, "", viewer)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if err := svc.Delete(ctx, file.ID, false, nil, viewer); !apperrors.IsPermission(err) {
		t.Fatalf("unconfirmed delete: expected permission error, got %v", err)
	}
	if err := svc.Delete(ctx, file.ID, true, nil, viewer); err != nil {
		t.Fatalf("confirmed delete: %v", err)
	}

	// Soft delete: row stays for audit, bytes and visibility are gone.
	var row models.File
	if err := db.First(&row, "id = ?", file.ID).Error; err != nil {
		t.Fatalf("deleted row should survive: %v", err)
	}
	if !row.Deleted || row.DateDeleted == nil {
		t.Fatalf("row not marked deleted: %+v", row)
	}
	if _, err := os.Stat(filepath.Join(dir, file.FileName)); !os.IsNotExist(err) {
		t.Fatalf("bytes should be removed, stat err=%v", err)
	}
	if _, err := svc.Get(ctx, file.ID, viewer); !apperrors.IsNotFound(err) {
		t.Fatalf("deleted file should read as missing, got %v", err)
	}
}

func TestAdminDeleteAppendsDeletionRecord(t *testing.T) {
	svc, db, _ := newFileService(t, "svc_file_admin_delete")
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", false)
	admin := newTestUser(t, db, "root", true)

	file, err := svc.Upload(ctx, "spam.txt", strings.NewReader("junk"), false, "", policy.Authenticated(alice.ID, false))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	reason := "terms violation"
	if err := svc.Delete(ctx, file.ID, true, &reason, policy.Authenticated(admin.ID, true)); err != nil {
		t.Fatalf("admin delete: %v", err)
	}

	var deletions []models.Deletion
	if err := db.Where("file_id = ?", file.ID).Find(&deletions).Error; err != nil {
		t.Fatalf("read deletion ledger: %v", err)
	}
	if len(deletions) != 1 || deletions[0].DeletedBy != admin.ID {
		t.Fatalf("deletion ledger row wrong: %+v", deletions)
	}
	if deletions[0].ReasonDeleted == nil || *deletions[0].ReasonDeleted != reason {
		t.Fatalf("reason not recorded: %+v", deletions[0])
	}
}

func TestOwnerDeleteLeavesNoDeletionRecord(t *testing.T) {
	svc, db, _ := newFileService(t, "svc_file_owner_delete")
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", false)
	viewer := policy.Authenticated(alice.ID, false)

	file, err := svc.Upload(ctx, "old.txt", strings.NewReader("stale"), false, "", viewer)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := svc.Delete(ctx, file.ID, true, nil, viewer); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	if err := db.Model(&models.Deletion{}).Where("file_id = ?", file.ID).Count(&count).Error; err != nil {
		t.Fatalf("count deletions: %v", err)
	}
	if count != 0 {
		t.Fatal("owner deletion must not write a deletion record")
	}
}

func TestDownloadRecordsActivity(t *testing.T) {
	svc, db, _ := newFileService(t, "svc_file_download")
	ctx := context.Background()

	// Unowned public files are the only ones the public can pull.
	file, err := svc.Upload(ctx, "public.txt", strings.NewReader("shared"), false, "", policy.Anonymous())
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	got, path, err := svc.Download(ctx, file.ID, policy.Anonymous())
	if err != nil {
		t.Fatalf("anonymous download of public file: %v", err)
	}
	if got.LastDownloaded == nil {
		t.Fatal("LastDownloaded not stamped")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("download path unreadable: %v", err)
	}

	var downloads []models.Download
	if err := db.Where("file_id = ?", file.ID).Find(&downloads).Error; err != nil {
		t.Fatalf("read download ledger: %v", err)
	}
	if len(downloads) != 1 || downloads[0].UserID != nil {
		t.Fatalf("download ledger row wrong: %+v", downloads)
	}
}

func TestDownloadFollowsVisibility(t *testing.T) {
	svc, db, _ := newFileService(t, "svc_file_dl_vis")
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", false)
	bob := newTestUser(t, db, "bob", false)

	file, err := svc.Upload(ctx, "secret.txt", strings.NewReader("mine"), true, "", policy.Authenticated(alice.ID, false))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if _, _, err := svc.Download(ctx, file.ID, policy.Authenticated(bob.ID, false)); !apperrors.IsPermission(err) {
		t.Fatalf("stranger download of private file: expected permission error, got %v", err)
	}
	if _, _, err := svc.Download(ctx, file.ID, policy.Anonymous()); !apperrors.IsPermission(err) {
		t.Fatalf("anonymous download of private file: expected permission error, got %v", err)
	}
}

func TestRenameMovesBytes(t *testing.T) {
	svc, db, dir := newFileService(t, "svc_file_rename")
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", false)
	viewer := policy.Authenticated(alice.ID, false)

	file, err := svc.Upload(ctx, "draft.txt", strings.NewReader("v1"), false, "", viewer)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	renamed, err := svc.Update(ctx, file.ID, "final.txt", nil, nil, viewer)
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.FileName != "final.txt" {
		t.Fatalf("rename did not stick: %q", renamed.FileName)
	}
	if _, err := os.Stat(filepath.Join(dir, "final.txt")); err != nil {
		t.Fatalf("renamed bytes missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "draft.txt")); !os.IsNotExist(err) {
		t.Fatalf("old bytes should be gone, stat err=%v", err)
	}
}
