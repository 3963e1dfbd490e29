package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostingStatus string

const (
	// PostingPending is the initial state of every posting, awaiting admin review.
	PostingPending PostingStatus = "Pending"
	// PostingApproved is terminal and makes the posting visible to students.
	PostingApproved PostingStatus = "Approved"
)

type ApplicationStatus string

const (
	ApplicationPending ApplicationStatus = "Pending"
)

type JobPosting struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// EmployerID references Employer.UID and is immutable after creation.
	EmployerID  string `gorm:"not null;index" json:"employer_id"`
	CompanyName string `gorm:"not null" json:"company_name"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `json:"location"`

	// Ordered prompts the applicant must answer. Stored as JSON so the
	// postgres and sqlite drivers share one representation.
	Questions []string `gorm:"serializer:json" json:"questions"`

	// Applications only ever increases, once per persisted Application.
	Applications int           `gorm:"not null;default:0" json:"applications"`
	Status       PostingStatus `gorm:"not null;default:'Pending'" json:"status"`
	EndDate      time.Time     `gorm:"not null" json:"end_date"`
}

func (p *JobPosting) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type Application struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// JobID references JobPosting.ID and is immutable after creation.
	JobID string `gorm:"type:uuid;not null;index" json:"job_id"`

	ApplicantName  string `gorm:"not null" json:"applicant_name"`
	ApplicantEmail string `gorm:"not null" json:"applicant_email"`
	CoverLetterURL string `gorm:"not null" json:"cover_letter_url"`

	// Answers is index-aligned with the posting's questions at submission time.
	Answers []string          `gorm:"serializer:json" json:"answers"`
	Status  ApplicationStatus `gorm:"not null;default:'Pending'" json:"status"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Employer holds the contact record for a posting owner. UID is the subject
// reported by the identity provider.
type Employer struct {
	UID       string    `gorm:"primaryKey" json:"uid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Name  string `json:"name"`
}

// Student carries per-user portal state. The row is created lazily on the
// first favorite action.
type Student struct {
	UID       string    `gorm:"primaryKey" json:"uid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email string `json:"email"`

	// Favorites is the set of posting ids the student bookmarked.
	Favorites []string `gorm:"serializer:json" json:"favorites"`
}
