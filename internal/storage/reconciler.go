// Package storage keeps File metadata rows consistent with the physical
// upload directory.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"infohub/internal/apperrors"
	"infohub/internal/repositories"
	"infohub/pkg/logger"
)

// PlaceholderEntry keeps the upload directory in version control; the
// scanner never treats it as an upload.
const PlaceholderEntry = ".gitkeep"

type Reconciler struct {
	dir   string
	files repositories.FileRepository
}

// NewReconciler validates the upload directory up front. A missing
// directory is a configuration error at startup, not a per-request one.
func NewReconciler(dir string, files repositories.FileRepository) (*Reconciler, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: upload directory %q: %v", apperrors.ErrConfiguration, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: upload directory %q is not a directory", apperrors.ErrConfiguration, dir)
	}
	return &Reconciler{dir: dir, files: files}, nil
}

// Dir returns the directory the reconciler watches.
func (r *Reconciler) Dir() string { return r.dir }

// Scan lists the current upload file names, skipping subdirectories and
// the placeholder entry. Re-scanning is cheap and safe on every call.
func (r *Reconciler) Scan() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("scan upload directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == PlaceholderEntry {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Reconcile backfills missing size/type metadata from disk. It is
// idempotent: a second pass over an unchanged directory writes nothing.
// Orphans on either side (a disk entry with no row, or a live row with
// no disk entry) are logged and skipped, never auto-deleted. A stat
// failure on a single entry skips that entry and continues.
func (r *Reconciler) Reconcile() error {
	names, err := r.Scan()
	if err != nil {
		return err
	}

	onDisk := make(map[string]bool, len(names))
	for _, name := range names {
		onDisk[name] = true

		file, err := r.files.FindByName(name)
		if err != nil {
			if apperrors.IsNotFound(err) {
				logger.Log.Warn().Str("file", name).Msg("disk entry has no metadata row, skipping")
				continue
			}
			return err
		}

		changed := false
		if file.Size == "" {
			info, err := os.Stat(filepath.Join(r.dir, name))
			if err != nil {
				logger.Log.Warn().Err(err).Str("file", name).Msg("unreadable upload entry, skipping")
				continue
			}
			file.Size = FormatSize(info.Size())
			changed = true
		}
		if ft := TypeFromName(name); file.FileType == "" && ft != "" {
			file.FileType = ft
			changed = true
		}
		if changed {
			if err := r.files.Update(file); err != nil {
				return fmt.Errorf("backfill metadata for %q: %w", name, err)
			}
		}
	}

	// Rows whose bytes never made it to disk (or vanished from it).
	rows, err := r.files.ListLive()
	if err != nil {
		return err
	}
	for _, row := range rows {
		if !onDisk[row.FileName] {
			logger.Log.Warn().Str("file", row.FileName).Msg("metadata row has no backing file")
		}
	}

	return nil
}

// FormatSize renders a byte count in kilobytes with a consistent label.
func FormatSize(bytes int64) string {
	return fmt.Sprintf("%.2f KB", float64(bytes)/1024)
}

// TypeFromName infers the file type from the name's extension.
func TypeFromName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimPrefix(ext, ".")
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFileName reduces a client-supplied name to a safe stored name:
// base name only, restricted charset, no hidden-file prefix.
func SanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	return name
}
