package mail

import (
	"context"
	"testing"
	"time"

	"go-parking-management/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingProvider struct {
	to      string
	subject string
	body    string
	isHTML  bool
}

func (p *capturingProvider) Send(ctx context.Context, to, subject, body string, isHTML bool) error {
	p.to = to
	p.subject = subject
	p.body = body
	p.isHTML = isHTML
	return nil
}

func TestNewMailer(t *testing.T) {
	t.Run("smtp provider", func(t *testing.T) {
		m, err := NewMailer(&config.MailConfig{Provider: "smtp", SMTPHost: "localhost", SMTPPort: 1025, FromEmail: "noreply@parking.local"})
		require.NoError(t, err)
		assert.NotNil(t, m)
	})

	t.Run("sendgrid requires an api key", func(t *testing.T) {
		_, err := NewMailer(&config.MailConfig{Provider: "sendgrid"})
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewMailer(&config.MailConfig{Provider: "carrier-pigeon"})
		assert.Error(t, err)
	})
}

func TestSendOTP(t *testing.T) {
	provider := &capturingProvider{}
	mailer := NewMailerWithProvider(provider)

	err := mailer.SendOTP(context.Background(), "jane@example.com", "123456")

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", provider.to)
	assert.Equal(t, "Your Verification Code", provider.subject)
	assert.Contains(t, provider.body, "123456")
	assert.True(t, provider.isHTML)
}

func TestSendReceipt(t *testing.T) {
	provider := &capturingProvider{}
	mailer := NewMailerWithProvider(provider)

	entry := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	exit := entry.Add(2*time.Minute + 30*time.Second)

	err := mailer.SendReceipt(context.Background(), "owner@example.com", Receipt{
		TicketNumber: "TICKET-A1B2C3D4E",
		PlateNumber:  "RAD 123 B",
		Vehicle:      "Toyota Corolla",
		ParkingCode:  "PK-01",
		EntryTime:    entry,
		ExitTime:     exit,
		Duration:     "0h 2m",
		FeePerHour:   12000,
		Amount:       600,
	})

	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", provider.to)
	assert.Equal(t, "Your Parking Receipt", provider.subject)
	assert.Contains(t, provider.body, "TICKET-A1B2C3D4E")
	assert.Contains(t, provider.body, "RAD 123 B")
	assert.Contains(t, provider.body, "600")
}
