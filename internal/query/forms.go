package query

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ruimv/tribunal-backend/internal/database"
	"gorm.io/gorm"
)

// ListForms returns the active forms matching the optional category and title
// filters, grouped by category, plus the total match count. Categories with
// no matching forms are absent from the map.
func ListForms(db *gorm.DB, category, search string) (map[string][]database.Form, int, error) {
	q := db.Model(&database.Form{}).Where("is_active = ?", true)

	if category != "" {
		q = q.Where("category = ?", category)
	}
	if search != "" {
		q = q.Where("LOWER(title) LIKE ?", contains(search))
	}

	var forms []database.Form
	if err := q.Order("category ASC, title ASC").Find(&forms).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch forms: %w", err)
	}

	grouped := make(map[string][]database.Form)
	for _, f := range forms {
		grouped[f.Category] = append(grouped[f.Category], f)
	}

	return grouped, len(forms), nil
}

// GetFormByID returns an active form; inactive and missing forms both fail
// with ErrNotFound
func GetFormByID(db *gorm.DB, id uint) (*database.Form, error) {
	var form database.Form
	if err := db.First(&form, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load form: %w", err)
	}

	if !form.IsActive {
		return nil, ErrNotFound
	}
	return &form, nil
}

// ResolveFormFile maps a stored form path to a file on disk. The result is
// confined to the forms root: stored values that escape it, or that point at
// anything but an existing regular file, fail with ErrNotFound.
func ResolveFormFile(formsDir, stored string) (string, error) {
	if stored == "" {
		return "", ErrNotFound
	}

	root, err := filepath.Abs(formsDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve forms directory: %w", err)
	}

	path := stored
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	path, err = filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve form path: %w", err)
	}

	if path != root && !strings.HasPrefix(path, root+string(filepath.Separator)) {
		return "", ErrNotFound
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", ErrNotFound
	}

	return path, nil
}
