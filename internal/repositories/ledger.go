package repositories

import (
	"fmt"
	"time"

	"infohub/internal/apperrors"
	"infohub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerRepository appends audit rows for uploads, downloads and admin
// deletions. It exposes no update or delete operations: once written, a
// ledger row is immutable.
type LedgerRepository interface {
	RecordUpload(userID *uuid.UUID, fileID uuid.UUID) (*models.Upload, error)
	RecordDownload(userID *uuid.UUID, fileID uuid.UUID) (*models.Download, error)
	RecordDeletion(actor *models.User, fileID uuid.UUID, reason *string) (*models.Deletion, error)
	DownloadsForFile(fileID uuid.UUID) ([]models.Download, error)
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) RecordUpload(userID *uuid.UUID, fileID uuid.UUID) (*models.Upload, error) {
	row := &models.Upload{
		ID:         uuid.New(),
		UserID:     userID,
		FileID:     fileID,
		UploadDate: time.Now().UTC(),
	}
	if err := r.db.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *ledgerRepository) RecordDownload(userID *uuid.UUID, fileID uuid.UUID) (*models.Download, error) {
	row := &models.Download{
		ID:           uuid.New(),
		UserID:       userID,
		FileID:       fileID,
		DownloadDate: time.Now().UTC(),
	}
	if err := r.db.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// RecordDeletion requires the acting user to be an admin.
func (r *ledgerRepository) RecordDeletion(actor *models.User, fileID uuid.UUID, reason *string) (*models.Deletion, error) {
	if actor == nil || !actor.IsAdmin {
		return nil, fmt.Errorf("%w: deletion records require an admin actor", apperrors.ErrPermission)
	}
	row := &models.Deletion{
		ID:            uuid.New(),
		DeletedBy:     actor.ID,
		FileID:        fileID,
		DeletionDate:  time.Now().UTC(),
		ReasonDeleted: reason,
	}
	if err := r.db.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *ledgerRepository) DownloadsForFile(fileID uuid.UUID) ([]models.Download, error) {
	var rows []models.Download
	err := r.db.Where("file_id = ?", fileID).Order("download_date DESC").Find(&rows).Error
	return rows, err
}
