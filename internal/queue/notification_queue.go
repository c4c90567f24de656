package queue

import (
	"context"
	"go-tour-booking/internal/model"
)

type Delivery struct {
	Data *model.BookingNotification
	Ack  func()
	Nack func(requeue bool)
}

type NotificationQueue interface {
	// 發送通知事件到隊列
	PublishNotification(ctx context.Context, notification *model.BookingNotification) error
	// 訂閱通知隊列
	SubscribeNotifications(ctx context.Context) (<-chan Delivery, error)
}

type NotificationQueueImpl struct {
	// 使用 Go channel 來模擬 MQ 隊列
	ch chan *model.BookingNotification
}

func NewNotificationQueue(bufferSize int) NotificationQueue {
	return &NotificationQueueImpl{
		ch: make(chan *model.BookingNotification, bufferSize),
	}
}

func (q *NotificationQueueImpl) PublishNotification(ctx context.Context, notification *model.BookingNotification) error {
	q.ch <- notification
	return nil
}

func (q *NotificationQueueImpl) SubscribeNotifications(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case notification, ok := <-q.ch:
				if !ok {
					return
				}

				// 將原始事件包裝成 Delivery 格式給 Worker
				out <- Delivery{
					Data: notification,
					Ack:  func() { /* 記憶體版不用做特別動作 */ },
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- notification // 簡單模擬重回隊列
						}
					},
				}
			}
		}
	}()

	return out, nil
}
