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

// GroupRepository defines data access for bookmark groups.
type GroupRepository interface {
	Create(group *models.Group) error
	FindByID(id uuid.UUID) (*models.Group, error)
	NameTaken(name string, ownerID *uuid.UUID) (bool, error)
	Update(group *models.Group) error
	// DeleteAndOrphanBookmarks removes the group and nullifies the group
	// reference on its bookmarks. Bookmarks themselves are never deleted
	// with their group.
	DeleteAndOrphanBookmarks(group *models.Group) error
	ListForViewer(v policy.Viewer, limit, offset int) ([]models.Group, error)
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(group *models.Group) error {
	taken, err := r.NameTaken(group.Name, group.OwnerID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: group %q already exists", apperrors.ErrValidation, group.Name)
	}
	return r.db.Create(group).Error
}

func (r *groupRepository) FindByID(id uuid.UUID) (*models.Group, error) {
	var group models.Group
	if err := r.db.First(&group, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: group %s", apperrors.ErrNotFound, id)
		}
		return nil, err
	}
	return &group, nil
}

func (r *groupRepository) NameTaken(name string, ownerID *uuid.UUID) (bool, error) {
	var count int64
	q := r.db.Model(&models.Group{}).Where("name = ?", name)
	if ownerID != nil {
		q = q.Where("owner_id = ?", *ownerID)
	} else {
		q = q.Where("owner_id IS NULL")
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *groupRepository) Update(group *models.Group) error {
	return r.db.Save(group).Error
}

func (r *groupRepository) DeleteAndOrphanBookmarks(group *models.Group) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Bookmark{}).
			Where("group_id = ?", group.ID).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(group).Error
	})
}

func (r *groupRepository) ListForViewer(v policy.Viewer, limit, offset int) ([]models.Group, error) {
	limit, offset = Normalize(limit, offset)
	var groups []models.Group
	err := r.db.Scopes(visibleTo(v)).
		Preload("Bookmarks").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&groups).Error
	return groups, err
}
