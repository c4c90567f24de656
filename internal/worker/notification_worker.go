package worker

import (
	"context"
	"go-tour-booking/internal/queue"
)

type NotificationWorker interface {
	// 訂閱通知隊列
	Start(ctx context.Context) error
}

type NotificationWorkerImpl struct {
	notifier Notifier
	queue    queue.NotificationQueue
}

func NewNotificationWorker(notifier Notifier, queue queue.NotificationQueue) NotificationWorker {
	return &NotificationWorkerImpl{
		notifier: notifier,
		queue:    queue,
	}
}

func (w *NotificationWorkerImpl) Start(ctx context.Context) error {
	msgs, _ := w.queue.SubscribeNotifications(ctx)

	go func() {
		for msg := range msgs {
			// 把隊列裡的事件交給通知服務，失敗就重試
			err := w.notifier.Notify(ctx, msg.Data)

			if err != nil {
				msg.Nack(true)
			} else {
				msg.Ack()
			}
		}
	}()
	return nil
}
