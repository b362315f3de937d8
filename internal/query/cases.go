package query

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ruimv/tribunal-backend/internal/database"
	"gorm.io/gorm"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// CaseSearchParams are the optional, AND-combined case search filters
type CaseSearchParams struct {
	CaseNumber string // substring, case-insensitive
	PartyName  string // substring against plaintiff or defendant
	CaseType   string // exact
	Status     string // exact
	DateFrom   string // filing_date >=
	DateTo     string // filing_date <=
	Page       int
	PerPage    int
}

// CaseView is the serialized representation of a case. Judge and lawyer are
// resolved to usernames; nil means no assignment.
type CaseView struct {
	ID          uint       `json:"id"`
	CaseNumber  string     `json:"case_number"`
	Title       string     `json:"title"`
	CaseType    string     `json:"case_type"`
	Status      string     `json:"status"`
	Plaintiff   string     `json:"plaintiff"`
	Defendant   string     `json:"defendant"`
	Judge       *string    `json:"judge"`
	Lawyer      *string    `json:"lawyer"`
	FilingDate  time.Time  `json:"filing_date"`
	NextHearing *time.Time `json:"next_hearing"`
	Description string     `json:"description"`
	IsPublic    bool       `json:"is_public"`
}

// SearchCases returns the public cases matching the given filters, newest
// filing first, together with pagination metadata
func SearchCases(db *gorm.DB, params CaseSearchParams) ([]CaseView, *Pagination, error) {
	q := db.Model(&database.Case{}).Where("is_public = ?", true)

	if params.CaseNumber != "" {
		q = q.Where("LOWER(case_number) LIKE ?", contains(params.CaseNumber))
	}
	if params.PartyName != "" {
		like := contains(params.PartyName)
		q = q.Where("LOWER(plaintiff) LIKE ? OR LOWER(defendant) LIKE ?", like, like)
	}
	if params.CaseType != "" {
		q = q.Where("case_type = ?", params.CaseType)
	}
	if params.Status != "" {
		q = q.Where("status = ?", params.Status)
	}
	if params.DateFrom != "" {
		from, err := parseDate(params.DateFrom)
		if err != nil {
			return nil, nil, err
		}
		q = q.Where("filing_date >= ?", from)
	}
	if params.DateTo != "" {
		to, err := parseDate(params.DateTo)
		if err != nil {
			return nil, nil, err
		}
		q = q.Where("filing_date <= ?", to)
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	perPage := params.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to count cases: %w", err)
	}

	var cases []database.Case
	if err := q.Order("filing_date DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&cases).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to fetch cases: %w", err)
	}

	views, err := caseViews(db, cases)
	if err != nil {
		return nil, nil, err
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))
	meta := &Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}

	return views, meta, nil
}

// GetCaseByID returns a single case. Missing cases fail with ErrNotFound,
// private ones with ErrForbidden.
func GetCaseByID(db *gorm.DB, id uint) (*CaseView, error) {
	var c database.Case
	if err := db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load case: %w", err)
	}

	if !c.IsPublic {
		return nil, ErrForbidden
	}

	views, err := caseViews(db, []database.Case{c})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// caseViews resolves judge/lawyer references and builds the serialized views
func caseViews(db *gorm.DB, cases []database.Case) ([]CaseView, error) {
	ids := make([]uint, 0, len(cases)*2)
	for _, c := range cases {
		if c.JudgeID != nil {
			ids = append(ids, *c.JudgeID)
		}
		if c.LawyerID != nil {
			ids = append(ids, *c.LawyerID)
		}
	}

	names, err := usernamesByID(db, ids)
	if err != nil {
		return nil, err
	}

	views := make([]CaseView, 0, len(cases))
	for _, c := range cases {
		views = append(views, CaseView{
			ID:          c.ID,
			CaseNumber:  c.CaseNumber,
			Title:       c.Title,
			CaseType:    c.CaseType,
			Status:      c.Status,
			Plaintiff:   c.Plaintiff,
			Defendant:   c.Defendant,
			Judge:       lookupName(names, c.JudgeID),
			Lawyer:      lookupName(names, c.LawyerID),
			FilingDate:  c.FilingDate,
			NextHearing: c.NextHearing,
			Description: c.Description,
			IsPublic:    c.IsPublic,
		})
	}
	return views, nil
}

func contains(value string) string {
	return "%" + strings.ToLower(value) + "%"
}
