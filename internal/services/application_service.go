package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/rooseveltjobs/jobboard/internal/apperr"
	"github.com/rooseveltjobs/jobboard/internal/dtos"
	"github.com/rooseveltjobs/jobboard/internal/models"
)

// ApplicationService handles application submission and review.
type ApplicationService struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewApplicationService(db *gorm.DB, log *logrus.Logger) *ApplicationService {
	return &ApplicationService{
		DB:  db,
		Log: log,
	}
}

// Submit persists an application against a posting and bumps the posting's
// applications counter. Both writes run in one transaction, and the counter
// is an atomic SQL expression, so the counter can neither drift from the
// application rows nor undercount under concurrent submissions.
func (s *ApplicationService) Submit(ctx context.Context, jobID string, req *dtos.SubmitApplicationRequest) (*models.Application, error) {
	if strings.TrimSpace(req.ApplicantName) == "" {
		return nil, apperr.Validation("applicant_name", "must not be empty")
	}
	if strings.TrimSpace(req.ApplicantEmail) == "" {
		return nil, apperr.Validation("applicant_email", "must not be empty")
	}
	if strings.TrimSpace(req.CoverLetterURL) == "" {
		return nil, apperr.Validation("cover_letter_url", "must not be empty")
	}

	var app *models.Application
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var posting models.JobPosting
		err := tx.First(&posting, "id = ?", jobID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrPostingNotFound
		}
		if err != nil {
			return apperr.Store("load posting", err)
		}

		if len(req.Answers) != len(posting.Questions) {
			return apperr.Validation("answers",
				fmt.Sprintf("expected %d answers, got %d", len(posting.Questions), len(req.Answers)))
		}
		for i, a := range req.Answers {
			if strings.TrimSpace(a) == "" {
				return apperr.Validation("answers", fmt.Sprintf("answer %d must not be empty", i+1))
			}
		}

		app = &models.Application{
			JobID:          posting.ID,
			ApplicantName:  req.ApplicantName,
			ApplicantEmail: req.ApplicantEmail,
			CoverLetterURL: req.CoverLetterURL,
			Answers:        req.Answers,
			Status:         models.ApplicationPending,
		}
		if err := tx.Create(app).Error; err != nil {
			return apperr.Store("create application", err)
		}

		res := tx.Model(&models.JobPosting{}).
			Where("id = ?", posting.ID).
			UpdateColumn("applications", gorm.Expr("applications + ?", 1))
		if res.Error != nil {
			return apperr.Store("increment applications", res.Error)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Log.WithFields(logrus.Fields{
		"application_id": app.ID,
		"posting_id":     jobID,
	}).Info("application submitted")
	return app, nil
}

// ListForPosting returns every application referencing the posting.
func (s *ApplicationService) ListForPosting(ctx context.Context, jobID string) ([]models.Application, error) {
	var posting models.JobPosting
	err := s.DB.WithContext(ctx).Select("id").First(&posting, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrPostingNotFound
	}
	if err != nil {
		return nil, apperr.Store("load posting", err)
	}

	var apps []models.Application
	err = s.DB.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC, id ASC").
		Find(&apps).Error
	if err != nil {
		return nil, apperr.Store("list applications", err)
	}
	return apps, nil
}
