package repositories

import (
	"strings"

	"infohub/internal/policy"

	"gorm.io/gorm"
)

// Pagination defaults used by every listing query.
const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// Normalize clamps limit/offset to sane values.
func Normalize(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = DefaultOffset
	}
	return limit, offset
}

// visibleTo restricts a query to rows the viewer may read, mirroring
// policy.CanView: anonymous-origin public rows for everyone, plus the
// viewer's own rows. Admins see everything.
func visibleTo(v policy.Viewer) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if v.IsAdmin() {
			return db
		}
		if id, ok := v.UserID(); ok {
			return db.Where("(owner_id IS NULL AND private = ?) OR owner_id = ?", false, id)
		}
		return db.Where("owner_id IS NULL AND private = ?", false)
	}
}

// containsPattern builds a case-folded LIKE pattern for substring search.
func containsPattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(term))
	return "%" + escaped + "%"
}
