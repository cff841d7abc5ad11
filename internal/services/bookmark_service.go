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

type BookmarkService struct {
	bookmarks repositories.BookmarkRepository
	groups    repositories.GroupRepository
	producer  *kafka.Producer
}

func NewBookmarkService(db *gorm.DB, producer *kafka.Producer) *BookmarkService {
	return &BookmarkService{
		bookmarks: repositories.NewBookmarkRepository(db),
		groups:    repositories.NewGroupRepository(db),
		producer:  producer,
	}
}

// Create stores a bookmark owned by the viewer, optionally inside one of
// the viewer's groups.
func (s *BookmarkService) Create(ctx context.Context, title, href string, groupID *uuid.UUID, private bool, details string, v policy.Viewer) (*models.Bookmark, error) {
	if title == "" || href == "" {
		return nil, fmt.Errorf("%w: title and href are required", apperrors.ErrValidation)
	}
	ownerID, ok := v.UserID()
	if !ok {
		return nil, fmt.Errorf("%w: login required", apperrors.ErrPermission)
	}

	if groupID != nil {
		group, err := s.groups.FindByID(*groupID)
		if err != nil {
			return nil, err
		}
		if !policy.CanModify(group, v) {
			return nil, fmt.Errorf("%w: group %s", apperrors.ErrPermission, *groupID)
		}
	}

	bookmark := &models.Bookmark{
		ID:      uuid.New(),
		Title:   title,
		Href:    href,
		OwnerID: &ownerID,
		GroupID: groupID,
		Private: private,
		Details: details,
	}
	if err := s.bookmarks.Create(bookmark); err != nil {
		return nil, err
	}

	s.publish(ctx, events.BookmarkCreated, bookmark, v)
	return bookmark, nil
}

// Get returns a bookmark the viewer may read.
func (s *BookmarkService) Get(id uuid.UUID, v policy.Viewer) (*models.Bookmark, error) {
	bookmark, err := s.bookmarks.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(bookmark, v) {
		return nil, fmt.Errorf("%w: bookmark %s", apperrors.ErrPermission, id)
	}
	return bookmark, nil
}

// Update applies field changes for viewers allowed to modify.
func (s *BookmarkService) Update(ctx context.Context, id uuid.UUID, title, href string, groupID *uuid.UUID, private *bool, details *string, v policy.Viewer) (*models.Bookmark, error) {
	bookmark, err := s.bookmarks.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(bookmark, v) {
		return nil, fmt.Errorf("%w: bookmark %s", apperrors.ErrPermission, id)
	}

	if title != "" {
		bookmark.Title = title
	}
	if href != "" {
		bookmark.Href = href
	}
	if groupID != nil {
		group, err := s.groups.FindByID(*groupID)
		if err != nil {
			return nil, err
		}
		if !policy.CanModify(group, v) {
			return nil, fmt.Errorf("%w: group %s", apperrors.ErrPermission, *groupID)
		}
		bookmark.GroupID = groupID
	}
	if private != nil {
		bookmark.Private = *private
	}
	if details != nil {
		bookmark.Details = *details
	}

	if err := s.bookmarks.Update(bookmark); err != nil {
		return nil, err
	}
	s.publish(ctx, events.BookmarkUpdated, bookmark, v)
	return bookmark, nil
}

// Delete removes a bookmark for viewers allowed to delete it.
func (s *BookmarkService) Delete(ctx context.Context, id uuid.UUID, v policy.Viewer) error {
	bookmark, err := s.bookmarks.FindByID(id)
	if err != nil {
		return err
	}
	if !policy.CanDelete(bookmark, v) {
		return fmt.Errorf("%w: bookmark %s", apperrors.ErrPermission, id)
	}
	if err := s.bookmarks.Delete(bookmark); err != nil {
		return err
	}
	s.publish(ctx, events.BookmarkDeleted, bookmark, v)
	return nil
}

// List returns the viewer's visible bookmarks, newest first.
func (s *BookmarkService) List(v policy.Viewer, limit, offset int) ([]models.Bookmark, error) {
	return s.bookmarks.ListForViewer(v, limit, offset)
}

// Search finds visible bookmarks matching the term.
func (s *BookmarkService) Search(term string, v policy.Viewer) ([]models.Bookmark, error) {
	return s.bookmarks.Search(term, v)
}

func (s *BookmarkService) publish(ctx context.Context, eventType string, bookmark *models.Bookmark, v policy.Viewer) {
	if s.producer == nil {
		return
	}
	var actionBy *uuid.UUID
	if id, ok := v.UserID(); ok {
		actor := id
		actionBy = &actor
	}
	event := events.NewResourceEvent(eventType, events.ResourceTypeBookmark, bookmark.ID, bookmark.OwnerID, actionBy)
	if err := s.producer.PublishResourceEvent(ctx, event); err != nil {
		logger.Log.Warn().Err(err).Str("eventType", eventType).Msg("bookmark event not published")
	}
}
