package notify

import (
	"context"
	"errors"
)

// Notifier delivers employer-facing notifications. Denial treats delivery as
// a hard precondition of deleting the posting, so implementations must
// report failure instead of dropping messages.
type Notifier interface {
	PostingDenied(ctx context.Context, recipientEmail, jobTitle string) error
}

// Disabled is used when no mail client is configured. Every send fails, which
// blocks denials rather than deleting postings without notice.
type Disabled struct{}

func (Disabled) PostingDenied(ctx context.Context, recipientEmail, jobTitle string) error {
	return errors.New("jobboard: notifications disabled: gmail client not configured")
}
