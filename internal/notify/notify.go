// Package notify sends the results summary email over SMTP.
package notify

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// SMTPConfig holds mail delivery settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// ConfigFromEnv reads SMTP settings from the environment. Delivery is
// disabled when SMTP_HOST is unset.
func ConfigFromEnv() SMTPConfig {
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}
	return SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASS"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// Enabled reports whether delivery is configured.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

// Mailer delivers summary emails. Send failures are logged and swallowed;
// the assessment flow never blocks on email.
type Mailer struct {
	cfg    SMTPConfig
	logger *zap.Logger
}

// NewMailer creates a mailer. logger may be nil.
func NewMailer(cfg SMTPConfig, logger *zap.Logger) *Mailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mailer{cfg: cfg, logger: logger}
}

// SendSummary renders and delivers the results email. Returns without
// error when delivery is not configured.
func (m *Mailer) SendSummary(ctx context.Context, s Summary) {
	if !m.cfg.Enabled() {
		m.logger.Debug("email delivery not configured, skipping summary")
		return
	}

	body, err := renderSummary(s)
	if err != nil {
		m.logger.Warn("render summary email", zap.Error(err))
		return
	}

	if err := m.send(ctx, s.Email, fmt.Sprintf("Your %s results", s.Product), body); err != nil {
		m.logger.Warn("send summary email",
			zap.String("to", s.Email),
			zap.Error(err))
		return
	}

	m.logger.Info("summary email sent", zap.String("to", s.Email))
}

func (m *Mailer) send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("deliver: %w", err)
	}
	return nil
}
