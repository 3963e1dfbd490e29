package services

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rooseveltjobs/jobboard/internal/database"
	"github.com/rooseveltjobs/jobboard/internal/dtos"
	"github.com/rooseveltjobs/jobboard/internal/models"
)

// newTestDB opens an isolated in-memory sqlite database and migrates the
// schema. The pool is pinned to one connection so every query sees the same
// in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedEmployer(t *testing.T, db *gorm.DB, uid, email string) *models.Employer {
	t.Helper()
	employer := &models.Employer{UID: uid, Email: email, Name: "Acme Recruiting"}
	if err := db.Create(employer).Error; err != nil {
		t.Fatalf("seed employer: %v", err)
	}
	return employer
}

func validPostingRequest() *dtos.CreatePostingRequest {
	return &dtos.CreatePostingRequest{
		CompanyName: "Acme",
		Title:       "Intern",
		Description: "Summer internship",
		Location:    "Chicago, IL",
		Questions:   []string{"Why us?"},
		EndDate:     time.Now().AddDate(0, 1, 0),
	}
}

type deniedCall struct {
	recipient string
	title     string
}

// fakeNotifier records denial notifications, or fails every send when err is
// set.
type fakeNotifier struct {
	calls []deniedCall
	err   error
}

func (f *fakeNotifier) PostingDenied(ctx context.Context, recipientEmail, jobTitle string) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, deniedCall{recipient: recipientEmail, title: jobTitle})
	return nil
}
