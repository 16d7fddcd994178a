package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"go-marketplace-backend/config"
)

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	send      func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// ApplicationEmailData holds the data for the "new application" notification
type ApplicationEmailData struct {
	ContractorName  string
	ContractorEmail string
	JobTitle        string
	WorkerName      string
	CoverNote       string
	ProposedRate    string
	AvailableFrom   string
}

// NewEmailService creates a new email service from SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		send:      smtp.SendMail,
	}
}

const applicationEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New application received</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1f7a4d; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .note { background: white; padding: 15px; border-left: 4px solid #1f7a4d; margin-top: 10px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New application for {{.JobTitle}}</h1>
        </div>
        <div class="content">
            <p>Hi {{.ContractorName}},</p>
            <div class="field">
                <div class="label">Worker:</div>
                <div>{{.WorkerName}}</div>
            </div>
            {{if .ProposedRate}}<div class="field">
                <div class="label">Proposed rate:</div>
                <div>{{.ProposedRate}}</div>
            </div>{{end}}
            {{if .AvailableFrom}}<div class="field">
                <div class="label">Available from:</div>
                <div>{{.AvailableFrom}}</div>
            </div>{{end}}
            {{if .CoverNote}}<div class="field">
                <div class="label">Cover note:</div>
                <div class="note">{{.CoverNote}}</div>
            </div>{{end}}
        </div>
    </div>
</body>
</html>`

var applicationTmpl = template.Must(template.New("application").Parse(applicationEmailTemplate))

// BuildApplicationMessage renders the MIME message for an application notification.
func (s *EmailService) BuildApplicationMessage(data ApplicationEmailData) ([]byte, error) {
	var body bytes.Buffer
	if err := applicationTmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := fmt.Sprintf("New application: %s", data.JobTitle)

	return []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		data.ContractorEmail,
		subject,
		body.String(),
	)), nil
}

// SendApplicationReceived notifies a contractor that a worker applied to their job
func (s *EmailService) SendApplicationReceived(data ApplicationEmailData) error {
	if data.ContractorEmail == "" {
		return fmt.Errorf("missing recipient address")
	}

	msg, err := s.BuildApplicationMessage(data)
	if err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := s.send(addr, auth, s.fromEmail, []string{data.ContractorEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
