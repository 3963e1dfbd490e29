package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/rooseveltjobs/jobboard/internal/apperr"
	"github.com/rooseveltjobs/jobboard/internal/models"
)

// FavoritesService maintains each student's set of bookmarked postings.
type FavoritesService struct {
	DB  *gorm.DB
	Log *logrus.Logger
}

func NewFavoritesService(db *gorm.DB, log *logrus.Logger) *FavoritesService {
	return &FavoritesService{
		DB:  db,
		Log: log,
	}
}

// Toggle flips jobID's membership in the student's favorites set and reports
// the resulting membership. Only the favorites column is written; other
// student fields are untouched. Two identical toggles restore the original
// set.
func (s *FavoritesService) Toggle(ctx context.Context, userID, jobID string) (bool, []string, error) {
	if userID == "" {
		return false, nil, apperr.Validation("user_id", "must not be empty")
	}
	if jobID == "" {
		return false, nil, apperr.Validation("job_id", "must not be empty")
	}

	var student models.Student
	err := s.DB.WithContext(ctx).
		Where(models.Student{UID: userID}).
		FirstOrCreate(&student).Error
	if err != nil {
		return false, nil, apperr.Store("load favorites", err)
	}

	next := make([]string, 0, len(student.Favorites)+1)
	removed := false
	for _, id := range student.Favorites {
		if id == jobID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, jobID)
	}

	err = s.DB.WithContext(ctx).Model(&student).Update("favorites", next).Error
	if err != nil {
		return false, nil, apperr.Store("update favorites", err)
	}

	s.Log.WithFields(logrus.Fields{
		"user_id":   userID,
		"job_id":    jobID,
		"favorited": !removed,
	}).Debug("favorite toggled")
	return !removed, next, nil
}

// List returns the student's current favorites set. Unknown users have an
// empty set.
func (s *FavoritesService) List(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, apperr.Validation("user_id", "must not be empty")
	}

	var student models.Student
	err := s.DB.WithContext(ctx).First(&student, "uid = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, apperr.Store("load favorites", err)
	}
	if student.Favorites == nil {
		return []string{}, nil
	}
	return student.Favorites, nil
}
