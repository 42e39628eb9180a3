package queues

import (
	"context"
	"go-parking-management/internal/queue"

	"github.com/stretchr/testify/mock"
)

type MailQueueMock struct {
	mock.Mock
}

func NewMailQueueMock() *MailQueueMock {
	return &MailQueueMock{}
}

func (m *MailQueueMock) PublishEmail(ctx context.Context, job *queue.EmailJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MailQueueMock) SubscribeEmails(ctx context.Context) (<-chan queue.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan queue.Delivery), args.Error(1)
}
