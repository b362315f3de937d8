package query

import (
	"errors"
	"testing"

	"github.com/ruimv/tribunal-backend/internal/database"
	"gorm.io/gorm"
)

func seedHearings(t *testing.T, db *gorm.DB) {
	t.Helper()
	seedCases(t, db)

	var public, private database.Case
	if err := db.Where("case_number = ?", "CV-2024-001").First(&public).Error; err != nil {
		t.Fatalf("Failed to load seeded case: %v", err)
	}
	if err := db.Where("case_number = ?", "CV-2024-002").First(&private).Error; err != nil {
		t.Fatalf("Failed to load seeded case: %v", err)
	}

	hearings := []database.Hearing{
		{
			CaseID:      public.ID,
			HearingDate: date("2024-06-10"),
			HearingType: "trial",
			Courtroom:   "Sala 2",
			JudgeID:     public.JudgeID,
			Status:      "scheduled",
		},
		{
			CaseID:      public.ID,
			HearingDate: date("2024-05-01"),
			HearingType: "preliminary",
			Courtroom:   "Sala 1",
			Status:      "completed",
		},
		{
			// Belongs to a private case, must never be listed
			CaseID:      private.ID,
			HearingDate: date("2024-05-15"),
			HearingType: "preliminary",
			Courtroom:   "Sala 2",
			Status:      "scheduled",
		},
	}
	for i := range hearings {
		if err := db.Create(&hearings[i]).Error; err != nil {
			t.Fatalf("Failed to seed hearing: %v", err)
		}
	}
}

func TestListHearingsVisibilityAndOrder(t *testing.T) {
	db := setupTestDB(t)
	seedHearings(t, db)

	hearings, err := ListHearings(db, HearingFilters{})
	if err != nil {
		t.Fatalf("ListHearings failed: %v", err)
	}

	// Private-case hearing excluded, soonest first
	if len(hearings) != 2 {
		t.Fatalf("Expected 2 hearings, got %d", len(hearings))
	}
	if hearings[0].HearingType != "preliminary" || hearings[1].HearingType != "trial" {
		t.Errorf("Expected ascending date order, got %s then %s",
			hearings[0].HearingType, hearings[1].HearingType)
	}
	if hearings[0].CaseNumber != "CV-2024-001" {
		t.Errorf("Expected case number CV-2024-001, got %s", hearings[0].CaseNumber)
	}
	if hearings[1].Judge == nil || *hearings[1].Judge != "jsilva" {
		t.Errorf("Expected judge jsilva on trial hearing, got %v", hearings[1].Judge)
	}
}

func TestListHearingsFilters(t *testing.T) {
	db := setupTestDB(t)
	seedHearings(t, db)

	tests := []struct {
		name    string
		filters HearingFilters
		want    int
	}{
		{
			name:    "Courtroom substring",
			filters: HearingFilters{Courtroom: "sala 2"},
			want:    1, // the private-case hearing in Sala 2 stays hidden
		},
		{
			name:    "Date from",
			filters: HearingFilters{DateFrom: "2024-06-01"},
			want:    1,
		},
		{
			name:    "Date range excludes everything",
			filters: HearingFilters{DateFrom: "2025-01-01", DateTo: "2025-02-01"},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hearings, err := ListHearings(db, tt.filters)
			if err != nil {
				t.Fatalf("ListHearings failed: %v", err)
			}
			if len(hearings) != tt.want {
				t.Errorf("Expected %d hearings, got %d", tt.want, len(hearings))
			}
		})
	}
}

func TestListHearingsBadDate(t *testing.T) {
	db := setupTestDB(t)
	seedHearings(t, db)

	_, err := ListHearings(db, HearingFilters{DateFrom: "junho"})
	if !errors.Is(err, ErrBadDate) {
		t.Errorf("Expected ErrBadDate, got %v", err)
	}
}
