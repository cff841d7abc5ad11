package services

import (
	"context"
	"fmt"

	"infohub/internal/apperrors"
	"infohub/internal/events"
	"infohub/internal/kafka"
	"infohub/internal/models"
	"infohub/internal/policy"
	"infohub/internal/rediscache"
	"infohub/internal/repositories"
	"infohub/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteService struct {
	notes    repositories.NoteRepository
	producer *kafka.Producer
	cache    *rediscache.Cache
}

func NewNoteService(db *gorm.DB, producer *kafka.Producer, cache *rediscache.Cache) *NoteService {
	return &NoteService{
		notes:    repositories.NewNoteRepository(db),
		producer: producer,
		cache:    cache,
	}
}

// Create stores a new note owned by the viewer, or an anonymous-origin
// note when the viewer is not logged in. Notes default to private for
// logged-in authors; anonymous notes are always public, and asking for
// an anonymous private note is rejected outright.
func (s *NoteService) Create(ctx context.Context, title, content string, private *bool, v policy.Viewer) (*models.Note, error) {
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", apperrors.ErrValidation)
	}

	var ownerID *uuid.UUID
	if id, ok := v.UserID(); ok {
		owner := id
		ownerID = &owner
	}

	isPrivate := ownerID != nil // default: own notes private, anonymous public
	if private != nil {
		isPrivate = *private
	}
	if !policy.ValidOwnership(ownerID, isPrivate) {
		return nil, fmt.Errorf("%w: anonymous notes cannot be private", apperrors.ErrValidation)
	}

	note := &models.Note{
		ID:      uuid.New(),
		Title:   title,
		Content: content,
		OwnerID: ownerID,
		Private: isPrivate,
	}

	if err := s.notes.Create(note); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NoteCreated, note, v)
	return note, nil
}

// Get returns a note the viewer may read, trying the cache first.
func (s *NoteService) Get(ctx context.Context, id uuid.UUID, v policy.Viewer) (*models.Note, error) {
	note, err := s.cache.GetNote(ctx, id)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("note cache read failed")
	}
	if note == nil {
		note, err = s.notes.FindByID(id)
		if err != nil {
			return nil, err
		}
		if err := s.cache.SetNote(ctx, note); err != nil {
			logger.Log.Warn().Err(err).Msg("note cache write failed")
		}
	}

	if !policy.CanView(note, v) {
		return nil, fmt.Errorf("%w: note %s", apperrors.ErrPermission, id)
	}
	return note, nil
}

// Update applies field changes for viewers allowed to modify the note.
func (s *NoteService) Update(ctx context.Context, id uuid.UUID, title, content string, private *bool, v policy.Viewer) (*models.Note, error) {
	note, err := s.notes.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !policy.CanModify(note, v) {
		return nil, fmt.Errorf("%w: note %s", apperrors.ErrPermission, id)
	}

	if title != "" {
		note.Title = title
	}
	if content != "" {
		note.Content = content
	}
	if private != nil {
		if !policy.ValidOwnership(note.OwnerID, *private) {
			return nil, fmt.Errorf("%w: anonymous notes cannot be private", apperrors.ErrValidation)
		}
		note.Private = *private
	}

	if err := s.notes.Update(note); err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateNote(ctx, id); err != nil {
		logger.Log.Warn().Err(err).Msg("note cache invalidation failed")
	}
	s.publish(ctx, events.NoteUpdated, note, v)
	return note, nil
}

// Delete removes a note for viewers allowed to delete it. Notes are
// hard-deleted; only files keep audit rows behind.
func (s *NoteService) Delete(ctx context.Context, id uuid.UUID, v policy.Viewer) error {
	note, err := s.notes.FindByID(id)
	if err != nil {
		return err
	}

	if !policy.CanDelete(note, v) {
		return fmt.Errorf("%w: note %s", apperrors.ErrPermission, id)
	}

	if err := s.notes.Delete(note); err != nil {
		return err
	}

	if err := s.cache.InvalidateNote(ctx, id); err != nil {
		logger.Log.Warn().Err(err).Msg("note cache invalidation failed")
	}
	s.publish(ctx, events.NoteDeleted, note, v)
	return nil
}

// List returns the viewer's visible notes, newest first.
func (s *NoteService) List(v policy.Viewer, limit, offset int) ([]models.Note, error) {
	return s.notes.ListForViewer(v, limit, offset)
}

// ListOwn returns the viewer's own notes regardless of privacy.
func (s *NoteService) ListOwn(v policy.Viewer, limit, offset int) ([]models.Note, error) {
	id, ok := v.UserID()
	if !ok {
		return nil, fmt.Errorf("%w: login required", apperrors.ErrPermission)
	}
	return s.notes.ListByOwner(id, limit, offset)
}

// Search finds visible notes matching the term.
func (s *NoteService) Search(term string, v policy.Viewer) ([]models.Note, error) {
	return s.notes.Search(term, v)
}

// publish emits a resource event; failures are logged, never surfaced,
// since the store write already succeeded.
func (s *NoteService) publish(ctx context.Context, eventType string, note *models.Note, v policy.Viewer) {
	if s.producer == nil {
		return
	}
	var actionBy *uuid.UUID
	if id, ok := v.UserID(); ok {
		actor := id
		actionBy = &actor
	}
	event := events.NewResourceEvent(eventType, events.ResourceTypeNote, note.ID, note.OwnerID, actionBy)
	if err := s.producer.PublishResourceEvent(ctx, event); err != nil {
		logger.Log.Warn().Err(err).Str("eventType", eventType).Msg("note event not published")
	}
}
