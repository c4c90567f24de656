package model

import "time"

// NotificationKind 通知事件種類
type NotificationKind string

const (
	NotificationBookingConfirmed NotificationKind = "booking_confirmed"
	NotificationBookingCancelled NotificationKind = "booking_cancelled"
)

// BookingNotification 預訂狀態變化後發給通知服務的事件
type BookingNotification struct {
	BookingID      int              `json:"booking_id"`
	UserID         int              `json:"user_id"`
	TourID         int              `json:"tour_id"`
	AvailabilityID int              `json:"availability_id"`
	TravelersCount int              `json:"travelers_count"`
	TotalPrice     float64          `json:"total_price"`
	Kind           NotificationKind `json:"kind"`
	OccurredAt     time.Time        `json:"occurred_at"`
}
