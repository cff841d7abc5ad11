package repositories

import (
	"errors"
	"fmt"
	"time"

	"infohub/internal/apperrors"
	"infohub/internal/models"
	"infohub/internal/policy"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileRepository defines data access for file metadata rows. Soft-deleted
// rows are kept for audit but excluded from every listing and search.
type FileRepository interface {
	Create(file *models.File) error
	FindByID(id uuid.UUID) (*models.File, error)
	FindByName(fileName string) (*models.File, error)
	Update(file *models.File) error
	SoftDelete(file *models.File) error
	ListForViewer(v policy.Viewer, limit, offset int) ([]models.File, error)
	ListByOwner(ownerID uuid.UUID, limit, offset int) ([]models.File, error)
	Search(term string, v policy.Viewer) ([]models.File, error)
	ListLive() ([]models.File, error)
}

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(file *models.File) error {
	var count int64
	if err := r.db.Model(&models.File{}).
		Where("file_name = ? AND deleted = ?", file.FileName, false).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: file %q already exists", apperrors.ErrValidation, file.FileName)
	}
	return r.db.Create(file).Error
}

func (r *fileRepository) FindByID(id uuid.UUID) (*models.File, error) {
	var file models.File
	if err := r.db.First(&file, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: file %s", apperrors.ErrNotFound, id)
		}
		return nil, err
	}
	return &file, nil
}

// FindByName looks up a live row only. Soft-deleted rows have freed their
// name and stay untouched audit records.
func (r *fileRepository) FindByName(fileName string) (*models.File, error) {
	var file models.File
	if err := r.db.First(&file, "file_name = ? AND deleted = ?", fileName, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: file %q", apperrors.ErrNotFound, fileName)
		}
		return nil, err
	}
	return &file, nil
}

func (r *fileRepository) Update(file *models.File) error {
	return r.db.Save(file).Error
}

// SoftDelete marks the row deleted and timestamps it. The row itself is
// retained for the audit trail.
func (r *fileRepository) SoftDelete(file *models.File) error {
	now := time.Now().UTC()
	file.Deleted = true
	file.DateDeleted = &now
	return r.db.Save(file).Error
}

func (r *fileRepository) ListForViewer(v policy.Viewer, limit, offset int) ([]models.File, error) {
	limit, offset = Normalize(limit, offset)
	var files []models.File
	err := r.db.Scopes(visibleTo(v)).
		Where("deleted = ?", false).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&files).Error
	return files, err
}

func (r *fileRepository) ListByOwner(ownerID uuid.UUID, limit, offset int) ([]models.File, error) {
	limit, offset = Normalize(limit, offset)
	var files []models.File
	err := r.db.Where("owner_id = ? AND deleted = ?", ownerID, false).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&files).Error
	return files, err
}

func (r *fileRepository) Search(term string, v policy.Viewer) ([]models.File, error) {
	if term == "" {
		return []models.File{}, nil
	}
	pattern := containsPattern(term)
	var files []models.File
	err := r.db.Scopes(visibleTo(v)).
		Where("deleted = ?", false).
		Where(`LOWER(file_name) LIKE ? ESCAPE '\' OR LOWER(details) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("created_at DESC").
		Find(&files).Error
	return files, err
}

// ListLive returns every non-deleted row; the reconciler walks this to
// spot rows with no backing file on disk.
func (r *fileRepository) ListLive() ([]models.File, error) {
	var files []models.File
	err := r.db.Where("deleted = ?", false).Find(&files).Error
	return files, err
}
