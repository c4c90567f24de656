package model

import "time"

// BookingStatus 預訂狀態類型
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid 驗證狀態是否有效
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	transitions := map[BookingStatus][]BookingStatus{
		BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
		BookingStatusConfirmed: {BookingStatusCancelled},
		BookingStatusCancelled: {}, // 終態，不能轉換到任何狀態
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// IsTerminal 終態的預訂不再消耗或歸還名額
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled
}

// Booking 預訂模型：一筆對某個出團日期名額的請求
type Booking struct {
	ID             int           `json:"id" db:"id"`
	UserID         int           `json:"user_id" db:"user_id"`
	TourID         int           `json:"tour_id" db:"tour_id"`
	AvailabilityID int           `json:"availability_id" db:"availability_id"`
	TravelersCount int           `json:"travelers_count" db:"travelers_count"`
	TotalPrice     float64       `json:"total_price" db:"total_price"`
	Status         BookingStatus `json:"status" db:"status"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`
	DeletedAt      *time.Time    `json:"deleted_at,omitempty" db:"deleted_at"`
}

// IsDeleted 檢查預訂是否已刪除
func (b *Booking) IsDeleted() bool {
	return b.DeletedAt != nil
}

// CreateBookingRequest 創建預訂請求
type CreateBookingRequest struct {
	UserID         int `json:"user_id" binding:"required"`
	TourID         int `json:"tour_id" binding:"required"`
	AvailabilityID int `json:"availability_id" binding:"required"`
	TravelersCount int `json:"travelers_count" binding:"required,min=1"`
}

// UpdateBookingStatusRequest 更新預訂狀態請求
type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" binding:"required"`
}

// BookingResponse 預訂響應
type BookingResponse struct {
	ID             int     `json:"id"`
	UserID         int     `json:"user_id"`
	TourID         int     `json:"tour_id"`
	AvailabilityID int     `json:"availability_id"`
	TravelersCount int     `json:"travelers_count"`
	TotalPrice     float64 `json:"total_price"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}
