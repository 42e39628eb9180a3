package worker

import (
	"context"
	"go-parking-management/internal/mail"
	"go-parking-management/internal/queue"
	"go-parking-management/pkg/logger"

	"go.uber.org/zap"
)

// MailWorker drains the mail queue and hands jobs to the mailer. A failed
// send is nacked so the queue retries it later; an unknown job kind is
// discarded.
type MailWorker interface {
	Start(ctx context.Context) error
}

type MailWorkerImpl struct {
	mailer *mail.Mailer
	queue  queue.MailQueue
}

func NewMailWorker(mailer *mail.Mailer, queue queue.MailQueue) MailWorker {
	return &MailWorkerImpl{
		mailer: mailer,
		queue:  queue,
	}
}

func (w *MailWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeEmails(ctx)
	if err != nil {
		return err
	}

	go func() {
		log := logger.WithComponent("mail_worker")
		for msg := range msgs {
			if err := w.dispatch(ctx, msg.Data); err != nil {
				log.Warn("send failed, will retry",
					zap.String("to", msg.Data.To),
					zap.String("kind", msg.Data.Kind),
					zap.Error(err),
				)
				msg.Nack(true)
				continue
			}
			msg.Ack()
		}
	}()
	return nil
}

func (w *MailWorkerImpl) dispatch(ctx context.Context, job *queue.EmailJob) error {
	switch job.Kind {
	case queue.KindOTP:
		return w.mailer.SendOTP(ctx, job.To, job.Code)
	default:
		// never retry a job no dispatcher exists for
		logger.WithComponent("mail_worker").Warn("unknown email kind, discarding", zap.String("kind", job.Kind))
		return nil
	}
}
