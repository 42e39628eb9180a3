package queue

import (
	"context"
)

// EmailJob is a queued mail dispatch request. Kind selects the template the
// worker renders; today the only queued kind is the login OTP (receipts are
// sent inline at exit so the response can report delivery).
type EmailJob struct {
	To   string `json:"to"`
	Kind string `json:"kind"`
	Code string `json:"code,omitempty"`
}

const KindOTP = "otp"

type Delivery struct {
	Data *EmailJob
	Ack  func()
	Nack func(requeue bool)
}

type MailQueue interface {
	// Publish a mail job to the queue.
	PublishEmail(ctx context.Context, job *EmailJob) error
	// Subscribe to the mail job queue.
	SubscribeEmails(ctx context.Context) (<-chan Delivery, error)
}

// MemoryMailQueue backs the queue with a Go channel; used in development and
// tests where no Redis Stream is available.
type MemoryMailQueue struct {
	ch chan *EmailJob
}

func NewMemoryMailQueue(bufferSize int) MailQueue {
	return &MemoryMailQueue{
		ch: make(chan *EmailJob, bufferSize),
	}
}

func (q *MemoryMailQueue) PublishEmail(ctx context.Context, job *EmailJob) error {
	select {
	case q.ch <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryMailQueue) SubscribeEmails(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case job, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: job,
					Ack:  func() { /* nothing to do for the in-memory queue */ },
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- job
						}
					},
				}
			}
		}
	}()

	return out, nil
}
