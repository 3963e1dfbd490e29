package notify

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailNotifier sends notifications through the Gmail API.
type GmailNotifier struct {
	svc    *gmail.Service
	sender string
	log    *logrus.Logger
}

func NewGmailNotifier(svc *gmail.Service, sender string, log *logrus.Logger) *GmailNotifier {
	return &GmailNotifier{svc: svc, sender: sender, log: log}
}

func (n *GmailNotifier) PostingDenied(ctx context.Context, recipientEmail, jobTitle string) error {
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", n.sender)
	fmt.Fprintf(&msg, "To: %s\r\n", recipientEmail)
	fmt.Fprintf(&msg, "Subject: Job posting %q was not approved\r\n", jobTitle)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	fmt.Fprintf(&msg, "Your job posting %q was reviewed and was not approved for the student portal.\r\n", jobTitle)
	msg.WriteString("The posting has been removed. You are welcome to submit a revised posting.\r\n")

	raw := base64.URLEncoding.EncodeToString(msg.Bytes())
	_, err := n.svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("jobboard: send denial email: %w", err)
	}

	n.log.WithFields(logrus.Fields{
		"recipient": recipientEmail,
		"job_title": jobTitle,
	}).Info("denial notification sent")
	return nil
}

// NewGmailService builds an authenticated Gmail client from the OAuth client
// secret file and a previously granted token file.
func NewGmailService(ctx context.Context, credentialsFile, tokenFile string) (*gmail.Service, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read client secret file: %w", err)
	}

	config, err := google.ConfigFromJSON(b, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("parse client secret file: %w", err)
	}

	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("load token (run the authorization flow first): %w", err)
	}

	return gmail.NewService(ctx, option.WithHTTPClient(config.Client(ctx, tok)))
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}
