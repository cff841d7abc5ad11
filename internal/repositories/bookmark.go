package repositories

import (
	"errors"
	"fmt"

	"infohub/internal/apperrors"
	"infohub/internal/models"
	"infohub/internal/policy"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookmarkRepository defines data access for bookmarks.
type BookmarkRepository interface {
	Create(bookmark *models.Bookmark) error
	FindByID(id uuid.UUID) (*models.Bookmark, error)
	Update(bookmark *models.Bookmark) error
	Delete(bookmark *models.Bookmark) error
	ListForViewer(v policy.Viewer, limit, offset int) ([]models.Bookmark, error)
	ListByGroup(groupID uuid.UUID) ([]models.Bookmark, error)
	Search(term string, v policy.Viewer) ([]models.Bookmark, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Create(bookmark *models.Bookmark) error {
	return r.db.Create(bookmark).Error
}

func (r *bookmarkRepository) FindByID(id uuid.UUID) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	if err := r.db.First(&bookmark, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: bookmark %s", apperrors.ErrNotFound, id)
		}
		return nil, err
	}
	return &bookmark, nil
}

func (r *bookmarkRepository) Update(bookmark *models.Bookmark) error {
	return r.db.Save(bookmark).Error
}

func (r *bookmarkRepository) Delete(bookmark *models.Bookmark) error {
	return r.db.Delete(bookmark).Error
}

func (r *bookmarkRepository) ListForViewer(v policy.Viewer, limit, offset int) ([]models.Bookmark, error) {
	limit, offset = Normalize(limit, offset)
	var bookmarks []models.Bookmark
	err := r.db.Scopes(visibleTo(v)).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *bookmarkRepository) ListByGroup(groupID uuid.UUID) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := r.db.Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *bookmarkRepository) Search(term string, v policy.Viewer) ([]models.Bookmark, error) {
	if term == "" {
		return []models.Bookmark{}, nil
	}
	pattern := containsPattern(term)
	var bookmarks []models.Bookmark
	err := r.db.Scopes(visibleTo(v)).
		Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(href) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("created_at DESC").
		Find(&bookmarks).Error
	return bookmarks, err
}
