package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	goauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/rooseveltjobs/jobboard/internal/apperr"
	"github.com/rooseveltjobs/jobboard/internal/models"
)

// GoogleProvider validates Google OAuth2 access tokens via the tokeninfo
// endpoint and maps the subject onto a portal role: admin if the email is on
// the configured list, employer if an Employer record exists for the uid,
// student otherwise.
type GoogleProvider struct {
	svc    *goauth.Service
	db     *gorm.DB
	admins map[string]struct{}
	log    *logrus.Logger
}

func NewGoogleProvider(ctx context.Context, db *gorm.DB, adminEmails []string, log *logrus.Logger) (*GoogleProvider, error) {
	// Tokeninfo takes the token as a request parameter, so the service
	// itself needs no credentials.
	svc, err := goauth.NewService(ctx, option.WithoutAuthentication())
	if err != nil {
		return nil, err
	}

	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		admins[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}

	return &GoogleProvider{svc: svc, db: db, admins: admins, log: log}, nil
}

func (p *GoogleProvider) Verify(ctx context.Context, accessToken string) (*Identity, error) {
	if accessToken == "" {
		return nil, apperr.ErrUnauthenticated
	}

	info, err := p.svc.Tokeninfo().AccessToken(accessToken).Context(ctx).Do()
	if err != nil {
		p.log.WithError(err).Debug("tokeninfo rejected access token")
		return nil, apperr.ErrUnauthenticated
	}
	if info.Email == "" || info.UserId == "" {
		return nil, apperr.ErrUnauthenticated
	}

	ident := &Identity{UID: info.UserId, Email: info.Email, Role: RoleStudent}

	if _, ok := p.admins[strings.ToLower(info.Email)]; ok {
		ident.Role = RoleAdmin
		return ident, nil
	}

	var employer models.Employer
	err = p.db.WithContext(ctx).First(&employer, "uid = ?", info.UserId).Error
	switch {
	case err == nil:
		ident.Role = RoleEmployer
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Not an employer, stays a student.
	default:
		return nil, apperr.Store("employer lookup", err)
	}
	return ident, nil
}
