package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"infohub/internal/apperrors"
	"infohub/internal/events"
	"infohub/internal/kafka"
	"infohub/internal/models"
	"infohub/internal/policy"
	"infohub/internal/rediscache"
	"infohub/internal/repositories"
	"infohub/internal/storage"
	"infohub/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FileService struct {
	files      repositories.FileRepository
	ledger     repositories.LedgerRepository
	users      repositories.UserRepository
	reconciler *storage.Reconciler
	producer   *kafka.Producer
	cache      *rediscache.Cache
}

func NewFileService(db *gorm.DB, reconciler *storage.Reconciler, producer *kafka.Producer, cache *rediscache.Cache) *FileService {
	return &FileService{
		files:      repositories.NewFileRepository(db),
		ledger:     repositories.NewLedgerRepository(db),
		users:      repositories.NewUserRepository(db),
		reconciler: reconciler,
		producer:   producer,
		cache:      cache,
	}
}

// Upload stores a new file: metadata row first, then the bytes. The two
// steps have no transactional link; if the byte write fails the row is
// left with empty size/type and the reconciler reports it as an orphan
// on its next pass instead of the inconsistency being silently hidden.
func (s *FileService) Upload(ctx context.Context, clientName string, src io.Reader, private bool, details string, v policy.Viewer) (*models.File, error) {
	name := storage.SanitizeFileName(clientName)
	if name == "" {
		return nil, fmt.Errorf("%w: file name is required", apperrors.ErrValidation)
	}

	var ownerID *uuid.UUID
	if id, ok := v.UserID(); ok {
		owner := id
		ownerID = &owner
	}
	if !policy.ValidOwnership(ownerID, private) {
		return nil, fmt.Errorf("%w: anonymous uploads cannot be private", apperrors.ErrValidation)
	}

	file := &models.File{
		ID:       uuid.New(),
		FileName: name,
		OwnerID:  ownerID,
		Private:  private,
		Details:  details,
	}
	if err := s.files.Create(file); err != nil {
		return nil, err
	}

	dst, err := os.Create(filepath.Join(s.reconciler.Dir(), name))
	if err == nil {
		_, err = io.Copy(dst, src)
		if cerr := dst.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		logger.Log.Error().Err(err).Str("file", name).
			Msg("file bytes not persisted, row left for reconciliation")
		return nil, fmt.Errorf("store file %q: %w", name, err)
	}

	if _, err := s.ledger.RecordUpload(ownerID, file.ID); err != nil {
		return nil, err
	}
	s.publishActivity(ctx, events.FileUploaded, file, ownerID, nil)

	// Backfill size/type immediately so the row is complete without
	// waiting for the next index render.
	if err := s.reconciler.Reconcile(); err != nil {
		logger.Log.Warn().Err(err).Msg("post-upload reconcile failed")
	}
	return s.files.FindByID(file.ID)
}

// Get returns a file the viewer may read, trying the cache first.
// Soft-deleted files are reported as missing.
func (s *FileService) Get(ctx context.Context, id uuid.UUID, v policy.Viewer) (*models.File, error) {
	file, err := s.cache.GetFile(ctx, id)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("file cache read failed")
	}
	if file == nil {
		file, err = s.files.FindByID(id)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetFile(ctx, file); err != nil {
			logger.Log.Warn().Err(err).Msg("file cache write failed")
		}
	}

	if file.Deleted {
		return nil, fmt.Errorf("%w: file %s", apperrors.ErrNotFound, id)
	}
	if !policy.CanView(file, v) {
		return nil, fmt.Errorf("%w: file %s", apperrors.ErrPermission, id)
	}
	return file, nil
}

// Update applies metadata changes. Renames move the bytes on disk as well.
func (s *FileService) Update(ctx context.Context, id uuid.UUID, newName string, private *bool, details *string, v policy.Viewer) (*models.File, error) {
	file, err := s.files.FindByID(id)
	if err != nil {
		return nil, err
	}
	if file.Deleted {
		return nil, fmt.Errorf("%w: file %s", apperrors.ErrNotFound, id)
	}
	if !policy.CanModify(file, v) {
		return nil, fmt.Errorf("%w: file %s", apperrors.ErrPermission, id)
	}

	if private != nil {
		if !policy.ValidOwnership(file.OwnerID, *private) {
			return nil, fmt.Errorf("%w: anonymous files cannot be private", apperrors.ErrValidation)
		}
		file.Private = *private
	}
	if details != nil {
		file.Details = *details
	}

	oldName := file.FileName
	if newName != "" {
		name := storage.SanitizeFileName(newName)
		if name == "" {
			return nil, fmt.Errorf("%w: invalid file name", apperrors.ErrValidation)
		}
		if name != oldName {
			if _, err := s.files.FindByName(name); err == nil {
				return nil, fmt.Errorf("%w: file %q already exists", apperrors.ErrValidation, name)
			} else if !apperrors.IsNotFound(err) {
				return nil, err
			}
			file.FileName = name
			file.FileType = "" // re-inferred from the new name
		}
	}

	if err := s.files.Update(file); err != nil {
		return nil, err
	}
	if file.FileName != oldName {
		oldPath := filepath.Join(s.reconciler.Dir(), oldName)
		newPath := filepath.Join(s.reconciler.Dir(), file.FileName)
		if err := os.Rename(oldPath, newPath); err != nil {
			logger.Log.Warn().Err(err).Str("from", oldName).Str("to", file.FileName).
				Msg("rename on disk failed, row left for reconciliation")
		}
		if err := s.reconciler.Reconcile(); err != nil {
			logger.Log.Warn().Err(err).Msg("post-rename reconcile failed")
		}
	}

	if err := s.cache.InvalidateFile(ctx, id); err != nil {
		logger.Log.Warn().Err(err).Msg("file cache invalidation failed")
	}
	s.publishResource(ctx, events.FileUpdated, file, v)
	return file, nil
}

// Delete soft-deletes the row and removes the bytes from disk. It is a
// two-step destructive action: the caller must pass confirm=true on top
// of holding delete permission. An admin deletion is additionally
// recorded in the deletion ledger.
func (s *FileService) Delete(ctx context.Context, id uuid.UUID, confirm bool, reason *string, v policy.Viewer) error {
	file, err := s.files.FindByID(id)
	if err != nil {
		return err
	}
	if file.Deleted {
		return fmt.Errorf("%w: file %s", apperrors.ErrNotFound, id)
	}
	if !policy.CanDelete(file, v) {
		return fmt.Errorf("%w: file %s", apperrors.ErrPermission, id)
	}
	if !confirm {
		return fmt.Errorf("%w: file deletion requires confirmation", apperrors.ErrPermission)
	}

	if err := os.Remove(filepath.Join(s.reconciler.Dir(), file.FileName)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file bytes: %w", err)
	}

	if err := s.files.SoftDelete(file); err != nil {
		return err
	}

	var actionBy *uuid.UUID
	if actorID, ok := v.UserID(); ok {
		actor := actorID
		actionBy = &actor
	}
	if v.IsAdmin() && actionBy != nil {
		actor, err := s.users.FindByID(*actionBy)
		if err != nil {
			return err
		}
		if _, err := s.ledger.RecordDeletion(actor, file.ID, reason); err != nil {
			return err
		}
	}

	if err := s.cache.InvalidateFile(ctx, id); err != nil {
		logger.Log.Warn().Err(err).Msg("file cache invalidation failed")
	}
	event := events.NewFileActivityEvent(events.FileDeleted, file.ID, file.FileName, actionBy)
	event.Reason = reason
	s.publishActivityEvent(ctx, event)
	return nil
}

// Download resolves the on-disk path for a readable file and records
// the download in the ledger.
func (s *FileService) Download(ctx context.Context, id uuid.UUID, v policy.Viewer) (*models.File, string, error) {
	file, err := s.Get(ctx, id, v)
	if err != nil {
		return nil, "", err
	}

	path := filepath.Join(s.reconciler.Dir(), file.FileName)
	if _, err := os.Stat(path); err != nil {
		return nil, "", fmt.Errorf("%w: file %q has no backing bytes", apperrors.ErrNotFound, file.FileName)
	}

	var userID *uuid.UUID
	if id, ok := v.UserID(); ok {
		uid := id
		userID = &uid
	}
	if _, err := s.ledger.RecordDownload(userID, file.ID); err != nil {
		return nil, "", err
	}

	stamp := time.Now().UTC()
	file.LastDownloaded = &stamp
	if err := s.files.Update(file); err != nil {
		return nil, "", err
	}
	if err := s.cache.InvalidateFile(ctx, id); err != nil {
		logger.Log.Warn().Err(err).Msg("file cache invalidation failed")
	}

	s.publishActivityEvent(ctx, events.NewFileActivityEvent(events.FileDownloaded, file.ID, file.FileName, userID))
	return file, path, nil
}

// List returns the viewer's visible files, reconciling metadata first so
// sizes and types are current.
func (s *FileService) List(v policy.Viewer, limit, offset int) ([]models.File, error) {
	if err := s.reconciler.Reconcile(); err != nil {
		return nil, err
	}
	return s.files.ListForViewer(v, limit, offset)
}

// ListOwn returns the viewer's own files regardless of privacy.
func (s *FileService) ListOwn(v policy.Viewer, limit, offset int) ([]models.File, error) {
	id, ok := v.UserID()
	if !ok {
		return nil, fmt.Errorf("%w: login required", apperrors.ErrPermission)
	}
	return s.files.ListByOwner(id, limit, offset)
}

// Search finds visible files matching the term.
func (s *FileService) Search(term string, v policy.Viewer) ([]models.File, error) {
	return s.files.Search(term, v)
}

func (s *FileService) publishResource(ctx context.Context, eventType string, file *models.File, v policy.Viewer) {
	if s.producer == nil {
		return
	}
	var actionBy *uuid.UUID
	if id, ok := v.UserID(); ok {
		actor := id
		actionBy = &actor
	}
	event := events.NewResourceEvent(eventType, events.ResourceTypeFile, file.ID, file.OwnerID, actionBy)
	if err := s.producer.PublishResourceEvent(ctx, event); err != nil {
		logger.Log.Warn().Err(err).Str("eventType", eventType).Msg("file event not published")
	}
}

func (s *FileService) publishActivity(ctx context.Context, eventType string, file *models.File, actionBy *uuid.UUID, reason *string) {
	event := events.NewFileActivityEvent(eventType, file.ID, file.FileName, actionBy)
	event.Reason = reason
	s.publishActivityEvent(ctx, event)
}

func (s *FileService) publishActivityEvent(ctx context.Context, event *events.FileActivityEvent) {
	if s.producer == nil {
		return
	}
	if err := s.producer.PublishFileActivityEvent(ctx, event); err != nil {
		logger.Log.Warn().Err(err).Str("eventType", event.EventType).Msg("file activity not published")
	}
}
