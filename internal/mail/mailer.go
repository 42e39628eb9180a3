package mail

import (
	"bytes"
	"context"
	"fmt"
	"go-parking-management/config"
	"html/template"
	"time"
)

// Provider is the delivery backend. SendGrid in production, plain SMTP
// against Mailhog in development.
type Provider interface {
	Send(ctx context.Context, to, subject, body string, isHTML bool) error
}

// Receipt carries everything the parking receipt template renders.
type Receipt struct {
	TicketNumber string
	PlateNumber  string
	Vehicle      string // "Brand Model", empty when the plate is unregistered
	ParkingCode  string
	EntryTime    time.Time
	ExitTime     time.Time
	Duration     string // "XhYm"
	FeePerHour   float64
	Amount       float64
}

type Mailer struct {
	provider  Provider
	templates map[string]*template.Template
}

func NewMailer(cfg *config.MailConfig) (*Mailer, error) {
	var provider Provider

	switch cfg.Provider {
	case "sendgrid":
		if cfg.SendGridAPIKey == "" {
			return nil, fmt.Errorf("sendgrid api key is required")
		}
		provider = NewSendGridProvider(cfg.SendGridAPIKey, cfg.FromEmail, cfg.FromName)
	case "smtp":
		provider = NewSMTPProvider(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.FromEmail, cfg.FromName)
	default:
		return nil, fmt.Errorf("unknown mail provider: %s", cfg.Provider)
	}

	return NewMailerWithProvider(provider), nil
}

// NewMailerWithProvider wires an explicit provider; tests use it with a mock.
func NewMailerWithProvider(provider Provider) *Mailer {
	m := &Mailer{
		provider:  provider,
		templates: make(map[string]*template.Template),
	}
	m.templates["otp"] = template.Must(template.New("otp").Parse(otpTemplate))
	m.templates["receipt"] = template.Must(template.New("receipt").Parse(receiptTemplate))
	return m
}

func (m *Mailer) render(name string, data interface{}) (string, error) {
	tmpl, ok := m.templates[name]
	if !ok {
		return "", fmt.Errorf("template not found: %s", name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

// SendOTP emails a login verification code.
func (m *Mailer) SendOTP(ctx context.Context, to, code string) error {
	body, err := m.render("otp", map[string]interface{}{
		"Code":    code,
		"Minutes": 5,
	})
	if err != nil {
		return err
	}
	return m.provider.Send(ctx, to, "Your Verification Code", body, true)
}

// SendReceipt emails the parking receipt produced at exit.
func (m *Mailer) SendReceipt(ctx context.Context, to string, receipt Receipt) error {
	body, err := m.render("receipt", receipt)
	if err != nil {
		return err
	}
	return m.provider.Send(ctx, to, "Your Parking Receipt", body, true)
}
