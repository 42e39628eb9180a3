package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-parking-management/internal/mail"
	"go-parking-management/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingProvider captures sends; fail counts down so the first N sends
// error out.
type recordingProvider struct {
	sent chan string
	fail int
}

func (p *recordingProvider) Send(ctx context.Context, to, subject, body string, isHTML bool) error {
	if p.fail > 0 {
		p.fail--
		return errors.New("provider unavailable")
	}
	p.sent <- to
	return nil
}

func TestMailWorker(t *testing.T) {
	t.Run("dispatches an OTP job to the mailer", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		provider := &recordingProvider{sent: make(chan string, 1)}
		mailer := mail.NewMailerWithProvider(provider)
		q := queue.NewMemoryMailQueue(8)

		w := NewMailWorker(mailer, q)
		require.NoError(t, w.Start(ctx))

		require.NoError(t, q.PublishEmail(ctx, &queue.EmailJob{To: "jane@example.com", Kind: queue.KindOTP, Code: "123456"}))

		select {
		case to := <-provider.sent:
			assert.Equal(t, "jane@example.com", to)
		case <-time.After(time.Second):
			t.Fatal("mail was never sent")
		}
	})

	t.Run("retries a failed send", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		provider := &recordingProvider{sent: make(chan string, 1), fail: 1}
		mailer := mail.NewMailerWithProvider(provider)
		q := queue.NewMemoryMailQueue(8)

		w := NewMailWorker(mailer, q)
		require.NoError(t, w.Start(ctx))

		require.NoError(t, q.PublishEmail(ctx, &queue.EmailJob{To: "jane@example.com", Kind: queue.KindOTP, Code: "123456"}))

		select {
		case to := <-provider.sent:
			assert.Equal(t, "jane@example.com", to)
		case <-time.After(2 * time.Second):
			t.Fatal("mail was never retried")
		}
	})

	t.Run("discards an unknown job kind without sending", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		provider := &recordingProvider{sent: make(chan string, 1)}
		mailer := mail.NewMailerWithProvider(provider)
		q := queue.NewMemoryMailQueue(8)

		w := NewMailWorker(mailer, q)
		require.NoError(t, w.Start(ctx))

		require.NoError(t, q.PublishEmail(ctx, &queue.EmailJob{To: "jane@example.com", Kind: "unknown"}))

		select {
		case to := <-provider.sent:
			t.Fatalf("unexpected send to %s", to)
		case <-time.After(200 * time.Millisecond):
		}
	})
}
