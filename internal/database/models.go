package database

import (
	"time"
)

// User roles
const (
	RoleCitizen = "citizen"
	RoleLawyer  = "lawyer"
	RoleJudge   = "judge"
	RoleAdmin   = "admin"
)

// Case types and form categories share the same enumeration
const (
	TypeCivil    = "civil"
	TypeCriminal = "criminal"
	TypeFamily   = "family"
	TypeProbate  = "probate"
)

// Case statuses
const (
	StatusOpen      = "open"
	StatusPending   = "pending"
	StatusClosed    = "closed"
	StatusSuspended = "suspended"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:80;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Role         string    `json:"role" gorm:"size:50;default:citizen"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
}

type Case struct {
	ID          uint       `gorm:"primaryKey"`
	CaseNumber  string     `gorm:"size:50;uniqueIndex;not null"`
	Title       string     `gorm:"size:200;not null"`
	CaseType    string     `gorm:"size:50;not null"`
	Status      string     `gorm:"size:50;default:open"`
	Plaintiff   string     `gorm:"size:200;not null"`
	Defendant   string     `gorm:"size:200;not null"`
	JudgeID     *uint      // weak reference, resolved to a username on read
	LawyerID    *uint      // weak reference, resolved to a username on read
	FilingDate  time.Time
	NextHearing *time.Time
	Description string `gorm:"type:text"`
	IsPublic    bool   `gorm:"default:true"`
}

type Hearing struct {
	ID          uint   `gorm:"primaryKey"`
	CaseID      uint   `gorm:"not null;index"`
	HearingDate time.Time
	HearingType string `gorm:"size:50;not null"` // preliminary, trial, sentencing, ...
	Courtroom   string `gorm:"size:50"`
	JudgeID     *uint
	Status      string `gorm:"size:50;default:scheduled"`
	Notes       string `gorm:"type:text"`
}

type Document struct {
	ID           uint   `gorm:"primaryKey"`
	CaseID       uint   `gorm:"not null;index"`
	Title        string `gorm:"size:200;not null"`
	DocumentType string `gorm:"size:50;not null"` // petition, motion, order, judgment
	FilePath     string `gorm:"size:500"`
	UploadedByID *uint
	UploadDate   time.Time
	IsPublic     bool `gorm:"default:false"`
}

type Form struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Category    string    `json:"category" gorm:"size:50;not null"`
	Description string    `json:"description" gorm:"type:text"`
	FilePath    string    `json:"file_path" gorm:"size:500"`
	Version     string    `json:"version" gorm:"size:20;default:1.0"`
	CreatedDate time.Time `json:"created_date"`
	UpdatedDate time.Time `json:"updated_date"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
}

func (User) TableName() string {
	return "users"
}

func (Case) TableName() string {
	return "cases"
}

func (Hearing) TableName() string {
	return "hearings"
}

func (Document) TableName() string {
	return "documents"
}

func (Form) TableName() string {
	return "forms"
}

// ValidRole reports whether role is one of the known user roles
func ValidRole(role string) bool {
	switch role {
	case RoleCitizen, RoleLawyer, RoleJudge, RoleAdmin:
		return true
	}
	return false
}
