package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/rooseveltjobs/jobboard/internal/models"
)

func TestToggleFavorite(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoritesService(db, testLogger())
	ctx := context.Background()

	favorited, favorites, err := svc.Toggle(ctx, "stu_1", "job_a")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !favorited {
		t.Error("first toggle should favorite")
	}
	if !reflect.DeepEqual(favorites, []string{"job_a"}) {
		t.Errorf("favorites = %v, want [job_a]", favorites)
	}

	favorited, favorites, err = svc.Toggle(ctx, "stu_1", "job_b")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !favorited || len(favorites) != 2 {
		t.Errorf("favorites = %v, want two entries", favorites)
	}
}

// Two identical toggles cancel out and restore the original set.
func TestToggleFavorite_DoubleToggleRestores(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoritesService(db, testLogger())
	ctx := context.Background()

	if _, _, err := svc.Toggle(ctx, "stu_1", "job_a"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	before, err := svc.List(ctx, "stu_1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if _, _, err := svc.Toggle(ctx, "stu_1", "job_b"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	favorited, _, err := svc.Toggle(ctx, "stu_1", "job_b")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if favorited {
		t.Error("second toggle should unfavorite")
	}

	after, err := svc.List(ctx, "stu_1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("favorites = %v, want restored %v", after, before)
	}
}

// Toggle writes only the favorites column; other student fields survive.
func TestToggleFavorite_MergeSemantics(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoritesService(db, testLogger())
	ctx := context.Background()

	student := &models.Student{UID: "stu_1", Email: "jordan@student.test"}
	if err := db.Create(student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}

	if _, _, err := svc.Toggle(ctx, "stu_1", "job_a"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	var got models.Student
	if err := db.First(&got, "uid = ?", "stu_1").Error; err != nil {
		t.Fatalf("reload student: %v", err)
	}
	if got.Email != "jordan@student.test" {
		t.Errorf("Email = %q, want untouched %q", got.Email, "jordan@student.test")
	}
	if !reflect.DeepEqual(got.Favorites, []string{"job_a"}) {
		t.Errorf("Favorites = %v, want [job_a]", got.Favorites)
	}
}

func TestListFavorites_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoritesService(db, testLogger())

	favorites, err := svc.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("favorites = %v, want empty", favorites)
	}
}
