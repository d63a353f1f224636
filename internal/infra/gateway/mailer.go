// Package gateway wraps outbound collaborators. The only one today is the
// Resend email provider used for certificate delivery.
package gateway

import (
	"context"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
)

type ResendMailer struct {
	client *resend.Client
	from   string
}

// NewResendMailer returns a mailer backed by Resend. With an empty API key
// the mailer reports itself unconfigured and certificate email is disabled.
func NewResendMailer(apiKey, from string) *ResendMailer {
	m := &ResendMailer{from: from}
	if apiKey != "" {
		m.client = resend.NewClient(apiKey)
	}
	return m
}

func (m *ResendMailer) Configured() bool {
	return m.client != nil && m.from != ""
}

func (m *ResendMailer) SendCertificate(ctx context.Context, to, subject, filename string, pdf []byte) error {
	if !m.Configured() {
		return errors.New("mailer not configured")
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    "<p>Please find the requested certificate attached.</p>",
		Attachments: []*resend.Attachment{
			{
				Filename:    filename,
				Content:     pdf,
				ContentType: "application/pdf",
			},
		},
	}

	_, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return errors.Wrap(err, "gateway: send certificate email")
	}
	return nil
}
