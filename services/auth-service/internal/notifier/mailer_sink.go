package notifier

import (
	"context"
	"fmt"

	"github.com/taskbridgehq/taskbridge-api/shared/mailer"
)

// MailerSink renders notification templates to HTML and delivers them over
// SMTP.
type MailerSink struct {
	mailer           *mailer.Mailer
	verifyEmailURL   string
	passwordResetURL string
}

func NewMailerSink(m *mailer.Mailer, verifyEmailURL, passwordResetURL string) *MailerSink {
	return &MailerSink{
		mailer:           m,
		verifyEmailURL:   verifyEmailURL,
		passwordResetURL: passwordResetURL,
	}
}

func (s *MailerSink) Send(_ context.Context, notification Notification) error {
	body, err := s.render(notification)
	if err != nil {
		return err
	}

	return s.mailer.SendHTML([]string{notification.To}, notification.Subject, body)
}

func (s *MailerSink) render(notification Notification) (string, error) {
	name := notification.Context["name"]

	switch notification.Template {
	case TemplateVerifyEmail:
		link := fmt.Sprintf("%s?token=%s", s.verifyEmailURL, notification.Context["token"])
		return fmt.Sprintf(`
			<p>Hi %s,</p>
			<p>Welcome to TaskBridge! Please confirm your email address by clicking the link below:</p>

			<p><a href="%s">%s</a></p>

			<p>If you did not create an account, you can safely ignore this email.</p>

			<p>Thank you,</p>
			<p>TaskBridge Team</p>
		`, name, link, link), nil

	case TemplateTwoFactorCode:
		return fmt.Sprintf(`
			<p>Hi %s,</p>
			<p>Your TaskBridge sign-in code is:</p>

			<p><strong>%s</strong></p>

			<p>This code expires in 5 minutes. If you did not try to sign in, please reset your password.</p>

			<p>Thank you,</p>
			<p>TaskBridge Team</p>
		`, name, notification.Context["code"]), nil

	case TemplateResetPassword:
		link := fmt.Sprintf("%s?token=%s", s.passwordResetURL, notification.Context["token"])
		return fmt.Sprintf(`
			<p>Hi %s,</p>
			<p>We received a request to reset the password for your account.</p>
			<p>If you made this request, please click the link below to create a new password:</p>

			<p><a href="%s">%s</a></p>

			<p>If you did not request a password reset, you can safely ignore this email.</p>

			<p>Thank you,</p>
			<p>TaskBridge Team</p>
		`, name, link, link), nil

	default:
		return "", fmt.Errorf("unknown notification template: %s", notification.Template)
	}
}
