package query

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruimv/tribunal-backend/internal/database"
	"gorm.io/gorm"
)

func seedForms(t *testing.T, db *gorm.DB) {
	t.Helper()

	forms := []database.Form{
		{Title: "Divorce Petition", Category: database.TypeFamily, Version: "1.0", IsActive: true},
		{Title: "Civil Claim Form", Category: database.TypeCivil, Version: "2.1", IsActive: true},
		{Title: "Appeal Notice", Category: database.TypeCivil, Version: "1.0", IsActive: true},
		{Title: "Old Probate Form", Category: database.TypeProbate, Version: "0.9", IsActive: false},
	}
	for i := range forms {
		if err := db.Create(&forms[i]).Error; err != nil {
			t.Fatalf("Failed to seed form: %v", err)
		}
	}
}

func TestListFormsGrouping(t *testing.T) {
	db := setupTestDB(t)
	seedForms(t, db)

	grouped, total, err := ListForms(db, "", "")
	if err != nil {
		t.Fatalf("ListForms failed: %v", err)
	}

	if total != 3 {
		t.Errorf("Expected total 3 active forms, got %d", total)
	}

	// Inactive probate form excluded, so its category key is absent
	if _, ok := grouped[database.TypeProbate]; ok {
		t.Error("Expected no probate group")
	}

	// Every form sits under its own category key
	for category, forms := range grouped {
		for _, f := range forms {
			if f.Category != category {
				t.Errorf("Form %q grouped under %q but has category %q", f.Title, category, f.Category)
			}
		}
	}

	// Titles ordered ascending within the category
	civil := grouped[database.TypeCivil]
	if len(civil) != 2 {
		t.Fatalf("Expected 2 civil forms, got %d", len(civil))
	}
	if civil[0].Title != "Appeal Notice" || civil[1].Title != "Civil Claim Form" {
		t.Errorf("Expected title order [Appeal Notice, Civil Claim Form], got [%s, %s]",
			civil[0].Title, civil[1].Title)
	}
}

func TestListFormsFilters(t *testing.T) {
	db := setupTestDB(t)
	seedForms(t, db)

	grouped, total, err := ListForms(db, database.TypeCivil, "")
	if err != nil {
		t.Fatalf("ListForms failed: %v", err)
	}
	if total != 2 || len(grouped) != 1 {
		t.Errorf("Expected 2 civil forms in 1 group, got %d in %d", total, len(grouped))
	}

	grouped, total, err = ListForms(db, "", "DIVORCE")
	if err != nil {
		t.Fatalf("ListForms failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("Expected 1 match for title search, got %d", total)
	}
	if grouped[database.TypeFamily][0].Title != "Divorce Petition" {
		t.Errorf("Unexpected search result: %+v", grouped)
	}
}

func TestGetFormByID(t *testing.T) {
	db := setupTestDB(t)
	seedForms(t, db)

	var active, inactive database.Form
	if err := db.Where("title = ?", "Divorce Petition").First(&active).Error; err != nil {
		t.Fatalf("Failed to load seeded form: %v", err)
	}
	if err := db.Where("is_active = ?", false).First(&inactive).Error; err != nil {
		t.Fatalf("Failed to load seeded form: %v", err)
	}

	form, err := GetFormByID(db, active.ID)
	if err != nil {
		t.Fatalf("GetFormByID failed: %v", err)
	}
	if form.Title != "Divorce Petition" {
		t.Errorf("Expected Divorce Petition, got %s", form.Title)
	}

	if _, err := GetFormByID(db, inactive.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for inactive form, got %v", err)
	}
	if _, err := GetFormByID(db, 99999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing form, got %v", err)
	}
}

func TestResolveFormFile(t *testing.T) {
	root := t.TempDir()

	if err := os.WriteFile(filepath.Join(root, "petition.pdf"), []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if err := os.Mkdir(filepath.Join(root, "civil"), 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "civil", "claim.pdf"), []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	// A real file outside the forms root
	outside := filepath.Join(t.TempDir(), "secret.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0644); err != nil {
		t.Fatalf("Failed to write outside file: %v", err)
	}

	tests := []struct {
		name    string
		stored  string
		wantErr bool
	}{
		{name: "Relative path", stored: "petition.pdf"},
		{name: "Nested relative path", stored: "civil/claim.pdf"},
		{name: "Absolute path under root", stored: filepath.Join(root, "petition.pdf")},
		{name: "Empty path", stored: "", wantErr: true},
		{name: "Missing file", stored: "missing.pdf", wantErr: true},
		{name: "Directory, not a file", stored: "civil", wantErr: true},
		{name: "Traversal out of root", stored: "../../../etc/passwd", wantErr: true},
		{name: "Absolute path outside root", stored: outside, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := ResolveFormFile(root, tt.stored)
			if tt.wantErr {
				if !errors.Is(err, ErrNotFound) {
					t.Errorf("Expected ErrNotFound, got %v (path %q)", err, path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveFormFile failed: %v", err)
			}
			if !filepath.IsAbs(path) {
				t.Errorf("Expected absolute path, got %q", path)
			}
		})
	}
}
