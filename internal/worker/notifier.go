package worker

import (
	"context"
	"go-tour-booking/internal/model"
	"go-tour-booking/pkg/logger"

	"go.uber.org/zap"
)

// Notifier 通知收件人的外部協作者，實際的 email/SMS 發送不在此核心範圍內
type Notifier interface {
	Notify(ctx context.Context, notification *model.BookingNotification) error
}

// LogNotifier 把通知事件記到 log，作為預設實作
type LogNotifier struct{}

func NewLogNotifier() Notifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(ctx context.Context, notification *model.BookingNotification) error {
	logger.WithComponent("notifier").Info("booking notification",
		zap.Int("booking_id", notification.BookingID),
		zap.Int("user_id", notification.UserID),
		zap.Int("tour_id", notification.TourID),
		zap.String("kind", string(notification.Kind)),
		zap.Int("travelers_count", notification.TravelersCount),
		zap.Float64("total_price", notification.TotalPrice),
	)
	return nil
}
