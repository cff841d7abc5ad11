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

// NoteRepository defines data access for notes.
type NoteRepository interface {
	Create(note *models.Note) error
	FindByID(id uuid.UUID) (*models.Note, error)
	Update(note *models.Note) error
	Delete(note *models.Note) error
	ListForViewer(v policy.Viewer, limit, offset int) ([]models.Note, error)
	ListByOwner(ownerID uuid.UUID, limit, offset int) ([]models.Note, error)
	Search(term string, v policy.Viewer) ([]models.Note, error)
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

func (r *noteRepository) FindByID(id uuid.UUID) (*models.Note, error) {
	var note models.Note
	if err := r.db.First(&note, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: note %s", apperrors.ErrNotFound, id)
		}
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) Update(note *models.Note) error {
	return r.db.Save(note).Error
}

func (r *noteRepository) Delete(note *models.Note) error {
	return r.db.Delete(note).Error
}

func (r *noteRepository) ListForViewer(v policy.Viewer, limit, offset int) ([]models.Note, error) {
	limit, offset = Normalize(limit, offset)
	var notes []models.Note
	err := r.db.Scopes(visibleTo(v)).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&notes).Error
	return notes, err
}

func (r *noteRepository) ListByOwner(ownerID uuid.UUID, limit, offset int) ([]models.Note, error) {
	limit, offset = Normalize(limit, offset)
	var notes []models.Note
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&notes).Error
	return notes, err
}

// Search matches the term case-insensitively against title and content,
// restricted to the viewer's visible set. An empty term matches nothing.
func (r *noteRepository) Search(term string, v policy.Viewer) ([]models.Note, error) {
	if term == "" {
		return []models.Note{}, nil
	}
	pattern := containsPattern(term)
	var notes []models.Note
	err := r.db.Scopes(visibleTo(v)).
		Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}
