package services

import (
	"infohub/internal/models"
	"infohub/internal/policy"
)

// IndexService composes the visibility policy with the store to build
// the mixed note/file index page and cross-entity search.
type IndexService struct {
	notes *NoteService
	files *FileService
}

func NewIndexService(notes *NoteService, files *FileService) *IndexService {
	return &IndexService{notes: notes, files: files}
}

// IndexListing is the per-entity result set shown on the index page:
// anonymous-origin public items plus everything the viewer owns.
type IndexListing struct {
	Notes []models.Note `json:"notes"`
	Files []models.File `json:"files"`
}

// Listing builds the index page. The file service reconciles upload
// metadata before reading, so displayed sizes and types are current.
func (s *IndexService) Listing(v policy.Viewer, limit, offset int) (*IndexListing, error) {
	files, err := s.files.List(v, limit, offset)
	if err != nil {
		return nil, err
	}
	notes, err := s.notes.List(v, limit, offset)
	if err != nil {
		return nil, err
	}
	return &IndexListing{Notes: notes, Files: files}, nil
}

// SearchResults keys each result set by entity type.
type SearchResults struct {
	Notes []models.Note `json:"notes"`
	Files []models.File `json:"files"`
}

// Search runs the same substring search over notes and files
// independently, constrained to the viewer's visible set.
func (s *IndexService) Search(term string, v policy.Viewer) (*SearchResults, error) {
	notes, err := s.notes.Search(term, v)
	if err != nil {
		return nil, err
	}
	files, err := s.files.Search(term, v)
	if err != nil {
		return nil, err
	}
	return &SearchResults{Notes: notes, Files: files}, nil
}
