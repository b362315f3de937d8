package query

import (
	"fmt"
	"time"

	"github.com/ruimv/tribunal-backend/internal/database"
	"gorm.io/gorm"
)

// HearingFilters are the optional filters for the hearing listing
type HearingFilters struct {
	DateFrom  string // hearing_date >=
	DateTo    string // hearing_date <=
	Courtroom string // substring, case-insensitive
}

// HearingView is the serialized representation of a hearing, carrying the
// owning case number and the judge's username
type HearingView struct {
	ID          uint      `json:"id"`
	CaseID      uint      `json:"case_id"`
	CaseNumber  string    `json:"case_number"`
	HearingDate time.Time `json:"hearing_date"`
	HearingType string    `json:"hearing_type"`
	Courtroom   string    `json:"courtroom"`
	Judge       *string   `json:"judge"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
}

// ListHearings returns the hearings of public cases, soonest first
func ListHearings(db *gorm.DB, filters HearingFilters) ([]HearingView, error) {
	q := db.Model(&database.Hearing{}).
		Joins("JOIN cases ON cases.id = hearings.case_id").
		Where("cases.is_public = ?", true)

	if filters.DateFrom != "" {
		from, err := parseDate(filters.DateFrom)
		if err != nil {
			return nil, err
		}
		q = q.Where("hearings.hearing_date >= ?", from)
	}
	if filters.DateTo != "" {
		to, err := parseDate(filters.DateTo)
		if err != nil {
			return nil, err
		}
		q = q.Where("hearings.hearing_date <= ?", to)
	}
	if filters.Courtroom != "" {
		q = q.Where("LOWER(hearings.courtroom) LIKE ?", contains(filters.Courtroom))
	}

	var hearings []database.Hearing
	if err := q.Order("hearings.hearing_date ASC").Find(&hearings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch hearings: %w", err)
	}

	return hearingViews(db, hearings)
}

func hearingViews(db *gorm.DB, hearings []database.Hearing) ([]HearingView, error) {
	judgeIDs := make([]uint, 0, len(hearings))
	caseIDs := make([]uint, 0, len(hearings))
	for _, h := range hearings {
		if h.JudgeID != nil {
			judgeIDs = append(judgeIDs, *h.JudgeID)
		}
		caseIDs = append(caseIDs, h.CaseID)
	}

	names, err := usernamesByID(db, judgeIDs)
	if err != nil {
		return nil, err
	}

	numbers := make(map[uint]string, len(caseIDs))
	if len(caseIDs) > 0 {
		var cases []database.Case
		if err := db.Select("id", "case_number").Where("id IN ?", caseIDs).Find(&cases).Error; err != nil {
			return nil, fmt.Errorf("failed to resolve case numbers: %w", err)
		}
		for _, c := range cases {
			numbers[c.ID] = c.CaseNumber
		}
	}

	views := make([]HearingView, 0, len(hearings))
	for _, h := range hearings {
		views = append(views, HearingView{
			ID:          h.ID,
			CaseID:      h.CaseID,
			CaseNumber:  numbers[h.CaseID],
			HearingDate: h.HearingDate,
			HearingType: h.HearingType,
			Courtroom:   h.Courtroom,
			Judge:       lookupName(names, h.JudgeID),
			Status:      h.Status,
			Notes:       h.Notes,
		})
	}
	return views, nil
}
