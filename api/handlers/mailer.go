package handlers

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	templates "github.com/liberia-ecms/court-records-api/templates/html"
)

// Mailer sends notification emails through SendGrid. A Mailer with no API
// key drops messages silently so local setups work without credentials.
type Mailer struct {
	APIKey   string
	FromName string
	FromAddr string
}

// NewMailer builds a mailer from the SENDGRID_* environment
func NewMailer() *Mailer {
	return &Mailer{
		APIKey:   os.Getenv("SENDGRID_API_KEY"),
		FromName: "Judiciary of Liberia",
		FromAddr: "no-reply@judiciary.gov.lr",
	}
}

// Send delivers one email
func (m *Mailer) Send(toEmail, toName, subject, htmlContent, plainText string) error {
	if m == nil || m.APIKey == "" {
		zap.S().Debugw("mailer not configured, dropping email", "subject", subject)
		return nil
	}
	from := mail.NewEmail(m.FromName, m.FromAddr)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(m.APIKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
	return nil
}

// SendCredentials mails a newly created user their login details
func (m *Mailer) SendCredentials(toEmail, username, password string) error {
	subject := "Your Court Records Account"
	html := templates.RenderCredentialsEmail(username, password)
	plain := fmt.Sprintf("Your court records account has been created.\nUsername: %s\nPassword: %s\nPlease change your password after your first login.", username, password)
	return m.Send(toEmail, username, subject, html, plain)
}

// SendReportRejected mails a clerk that a reviewer sent a report back
func (m *Mailer) SendReportRejected(toEmail, username, kindTitle, reviewer, reason string) error {
	subject := fmt.Sprintf("%s Returned for Correction", kindTitle)
	html := templates.RenderReportRejectedEmail(kindTitle, reviewer, reason)
	plain := fmt.Sprintf("Your %s was returned by the %s.\nReason: %s\nPlease correct and resubmit it.", kindTitle, reviewer, reason)
	return m.Send(toEmail, username, subject, html, plain)
}
