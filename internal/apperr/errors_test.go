package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidation(t *testing.T) {
	err := Validation("title", "must not be empty")

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if verr.Field != "title" {
		t.Errorf("Field = %q, want %q", verr.Field, "title")
	}
	if err.Error() != "jobboard: invalid title: must not be empty" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestStoreWrapping(t *testing.T) {
	if Store("load posting", nil) != nil {
		t.Error("Store(nil) should be nil")
	}

	cause := errors.New("connection refused")
	err := Store("load posting", cause)
	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}

	var serr *StoreError
	if !errors.As(err, &serr) {
		t.Fatalf("error = %v, want StoreError", err)
	}
	if serr.Op != "load posting" {
		t.Errorf("Op = %q, want %q", serr.Op, "load posting")
	}
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("deny: %w", ErrPostingNotFound)
	if !errors.Is(err, ErrPostingNotFound) {
		t.Error("wrapped sentinel not reachable via errors.Is")
	}
}
