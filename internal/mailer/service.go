package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// Interface is the outbound-mail contract consumed by services.
type Interface interface {
	SendEmployeeWelcomeEmail(toEmail, toName, destination string) error
}

// Service handles email sending via SendGrid. Without an API key it runs
// in console-only mode and logs the mail instead of sending it.
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		logrus.Info("Email service initialized with SendGrid")
	} else {
		logrus.Warn("Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendEmployeeWelcomeEmail greets a newly provisioned employee and points
// them at the portal.
func (s *Service) SendEmployeeWelcomeEmail(toEmail, toName, destination string) error {
	subject := "Welcome to the Travloger back office"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome aboard!</h2>
			<p>Hi %s,</p>
			<p>Your employee account has been created. You will be handling inquiries for <strong>%s</strong>.</p>
			<p><a href="%s/login" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Sign in to the portal</a></p>
			<p>If you were not expecting this email, contact your administrator.</p>
			<p>Thanks,<br>The Travloger Team</p>
		</body>
		</html>
	`, toName, destination, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your employee account has been created. You will be handling inquiries for %s.

Sign in at: %s/login

If you were not expecting this email, contact your administrator.

Thanks,
The Travloger Team
	`, toName, destination, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, toName, subject)
}

// sendViaSendGrid sends email using the SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	logrus.WithFields(logrus.Fields{
		"to":     toEmail,
		"status": response.StatusCode,
	}).Info("Email sent")
	return nil
}

// logEmailToConsole logs email details instead of sending (development mode)
func (s *Service) logEmailToConsole(toEmail, toName, subject string) error {
	logrus.WithFields(logrus.Fields{
		"to":      fmt.Sprintf("%s <%s>", toName, toEmail),
		"from":    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		"subject": subject,
	}).Info("Email NOT sent (development mode)")
	return nil
}
