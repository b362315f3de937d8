// Package query builds the filtered, paginated views over case, hearing and
// form records that the public endpoints serve. All reads enforce the
// visibility rule: case-derived rows are only returned when the owning case
// is public.
package query

import (
	"errors"
	"fmt"
	"time"

	"github.com/ruimv/tribunal-backend/internal/database"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no matching entity exists
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the entity exists but is not public
	ErrForbidden = errors.New("access denied")
	// ErrBadDate is returned for unparsable date filter values
	ErrBadDate = errors.New("invalid date")
)

// Pagination describes one page of a result set
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// parseDate accepts plain dates and full timestamps
func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, value)
}

// usernamesByID resolves a set of user IDs to usernames in one query
func usernamesByID(db *gorm.DB, ids []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var users []database.User
	if err := db.Select("id", "username").Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve usernames: %w", err)
	}
	for _, u := range users {
		names[u.ID] = u.Username
	}
	return names, nil
}

func lookupName(names map[uint]string, id *uint) *string {
	if id == nil {
		return nil
	}
	if name, ok := names[*id]; ok {
		return &name
	}
	return nil
}
