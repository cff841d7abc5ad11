package services

import (
	"context"
	"fmt"

	"infohub/internal/apperrors"
	"infohub/internal/events"
	"infohub/internal/kafka"
	"infohub/internal/models"
	"infohub/internal/policy"
	"infohub/internal/repositories"
	"infohub/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GroupService struct {
	groups   repositories.GroupRepository
	producer *kafka.Producer
}

func NewGroupService(db *gorm.DB, producer *kafka.Producer) *GroupService {
	return &GroupService{
		groups:   repositories.NewGroupRepository(db),
		producer: producer,
	}
}

// Create stores a group owned by the viewer. Group names are unique per
// owner.
func (s *GroupService) Create(ctx context.Context, name string, private bool, v policy.Viewer) (*models.Group, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	ownerID, ok := v.UserID()
	if !ok {
		return nil, fmt.Errorf("%w: login required", apperrors.ErrPermission)
	}

	group := &models.Group{
		ID:      uuid.New(),
		Name:    name,
		OwnerID: &ownerID,
		Private: private,
	}
	if err := s.groups.Create(group); err != nil {
		return nil, err
	}

	s.publish(ctx, events.GroupCreated, group, v)
	return group, nil
}

// Update renames or re-flags a group for viewers allowed to modify it.
func (s *GroupService) Update(ctx context.Context, id uuid.UUID, name string, private *bool, v policy.Viewer) (*models.Group, error) {
	group, err := s.groups.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(group, v) {
		return nil, fmt.Errorf("%w: group %s", apperrors.ErrPermission, id)
	}

	if name != "" && name != group.Name {
		taken, err := s.groups.NameTaken(name, group.OwnerID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: group %q already exists", apperrors.ErrValidation, name)
		}
		group.Name = name
	}
	if private != nil {
		group.Private = *private
	}

	if err := s.groups.Update(group); err != nil {
		return nil, err
	}
	s.publish(ctx, events.GroupUpdated, group, v)
	return group, nil
}

// Delete removes a group. Its bookmarks are detached, never deleted
// with it.
func (s *GroupService) Delete(ctx context.Context, id uuid.UUID, v policy.Viewer) error {
	group, err := s.groups.FindByID(id)
	if err != nil {
		return err
	}
	if !policy.CanDelete(group, v) {
		return fmt.Errorf("%w: group %s", apperrors.ErrPermission, id)
	}
	if err := s.groups.DeleteAndOrphanBookmarks(group); err != nil {
		return err
	}
	s.publish(ctx, events.GroupDeleted, group, v)
	return nil
}

// List returns the viewer's visible groups with their bookmarks.
func (s *GroupService) List(v policy.Viewer, limit, offset int) ([]models.Group, error) {
	return s.groups.ListForViewer(v, limit, offset)
}

func (s *GroupService) publish(ctx context.Context, eventType string, group *models.Group, v policy.Viewer) {
	if s.producer == nil {
		return
	}
	var actionBy *uuid.UUID
	if id, ok := v.UserID(); ok {
		actor := id
		actionBy = &actor
	}
	event := events.NewResourceEvent(eventType, events.ResourceTypeGroup, group.ID, group.OwnerID, actionBy)
	if err := s.producer.PublishResourceEvent(ctx, event); err != nil {
		logger.Log.Warn().Err(err).Str("eventType", eventType).Msg("group event not published")
	}
}
