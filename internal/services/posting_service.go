package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/rooseveltjobs/jobboard/internal/apperr"
	"github.com/rooseveltjobs/jobboard/internal/dtos"
	"github.com/rooseveltjobs/jobboard/internal/models"
	"github.com/rooseveltjobs/jobboard/internal/notify"
)

// PostingService owns the posting lifecycle: Pending on creation, Approved
// by an admin, or denied (employer notified, then the posting is removed).
type PostingService struct {
	DB       *gorm.DB
	Notifier notify.Notifier
	Log      *logrus.Logger
}

func NewPostingService(db *gorm.DB, notifier notify.Notifier, log *logrus.Logger) *PostingService {
	return &PostingService{
		DB:       db,
		Notifier: notifier,
		Log:      log,
	}
}

// Create validates the required fields and persists a new posting with
// status Pending and a zero applications counter. Blank questions are
// dropped.
func (s *PostingService) Create(ctx context.Context, employerID string, req *dtos.CreatePostingRequest) (*models.JobPosting, error) {
	if employerID == "" {
		return nil, apperr.Validation("employer_id", "must not be empty")
	}
	if strings.TrimSpace(req.CompanyName) == "" {
		return nil, apperr.Validation("company_name", "must not be empty")
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperr.Validation("title", "must not be empty")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperr.Validation("description", "must not be empty")
	}
	if req.EndDate.IsZero() {
		return nil, apperr.Validation("end_date", "must be set")
	}

	questions := make([]string, 0, len(req.Questions))
	for _, q := range req.Questions {
		if strings.TrimSpace(q) != "" {
			questions = append(questions, q)
		}
	}

	posting := &models.JobPosting{
		EmployerID:   employerID,
		CompanyName:  req.CompanyName,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Questions:    questions,
		Applications: 0,
		Status:       models.PostingPending,
		EndDate:      req.EndDate,
	}
	if err := s.DB.WithContext(ctx).Create(posting).Error; err != nil {
		return nil, apperr.Store("create posting", err)
	}

	s.Log.WithFields(logrus.Fields{
		"posting_id":  posting.ID,
		"employer_id": employerID,
		"title":       posting.Title,
	}).Info("posting created")
	return posting, nil
}

// Approve transitions a Pending posting to Approved. The status precondition
// is part of the UPDATE itself, so a posting that was already decided cannot
// be approved again.
func (s *PostingService) Approve(ctx context.Context, jobID string) (*models.JobPosting, error) {
	res := s.DB.WithContext(ctx).Model(&models.JobPosting{}).
		Where("id = ? AND status = ?", jobID, models.PostingPending).
		Update("status", models.PostingApproved)
	if res.Error != nil {
		return nil, apperr.Store("approve posting", res.Error)
	}
	if res.RowsAffected == 0 {
		// Either the posting is gone or it is no longer Pending.
		var posting models.JobPosting
		err := s.DB.WithContext(ctx).First(&posting, "id = ?", jobID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrPostingNotFound
		}
		if err != nil {
			return nil, apperr.Store("approve posting", err)
		}
		return nil, apperr.ErrNotPending
	}

	s.Log.WithField("posting_id", jobID).Info("posting approved")
	return s.Get(ctx, jobID)
}

// Deny notifies the owning employer and then removes the posting. The
// sequence is strict: a missing employer record or a failed notification
// leaves the posting in place.
func (s *PostingService) Deny(ctx context.Context, jobID string) error {
	var posting models.JobPosting
	err := s.DB.WithContext(ctx).First(&posting, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrPostingNotFound
	}
	if err != nil {
		return apperr.Store("load posting", err)
	}

	var employer models.Employer
	err = s.DB.WithContext(ctx).First(&employer, "uid = ?", posting.EmployerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &apperr.DanglingReference{Collection: "employers", ID: posting.EmployerID}
	}
	if err != nil {
		return apperr.Store("load employer", err)
	}

	if err := s.Notifier.PostingDenied(ctx, employer.Email, posting.Title); err != nil {
		return err
	}

	if err := s.DB.WithContext(ctx).Delete(&posting).Error; err != nil {
		return apperr.Store("delete posting", err)
	}

	s.Log.WithFields(logrus.Fields{
		"posting_id":  posting.ID,
		"employer_id": posting.EmployerID,
	}).Info("posting denied and removed")
	return nil
}

// Get returns a single live posting.
func (s *PostingService) Get(ctx context.Context, jobID string) (*models.JobPosting, error) {
	var posting models.JobPosting
	err := s.DB.WithContext(ctx).First(&posting, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrPostingNotFound
	}
	if err != nil {
		return nil, apperr.Store("load posting", err)
	}
	return &posting, nil
}

// ListVisible returns the postings students may see: approved, with an end
// date of asOf or later. Ordered by end date then id so pagination is stable.
func (s *PostingService) ListVisible(ctx context.Context, asOf time.Time) ([]models.JobPosting, error) {
	var postings []models.JobPosting
	err := s.DB.WithContext(ctx).
		Where("status = ? AND end_date >= ?", models.PostingApproved, asOf).
		Order("end_date ASC, id ASC").
		Find(&postings).Error
	if err != nil {
		return nil, apperr.Store("list visible postings", err)
	}
	return postings, nil
}

// ListByEmployer returns every live posting owned by employerID, any status.
func (s *PostingService) ListByEmployer(ctx context.Context, employerID string) ([]models.JobPosting, error) {
	var postings []models.JobPosting
	err := s.DB.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at ASC, id ASC").
		Find(&postings).Error
	if err != nil {
		return nil, apperr.Store("list employer postings", err)
	}
	return postings, nil
}

// ListPending is the admin review queue.
func (s *PostingService) ListPending(ctx context.Context) ([]models.JobPosting, error) {
	var postings []models.JobPosting
	err := s.DB.WithContext(ctx).
		Where("status = ?", models.PostingPending).
		Order("created_at ASC, id ASC").
		Find(&postings).Error
	if err != nil {
		return nil, apperr.Store("list pending postings", err)
	}
	return postings, nil
}
