package model

import "time"

// PaymentStatus 付款狀態，由外部支付服務回報
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// IsValid 驗證狀態是否有效
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSuccess, PaymentStatusFailed:
		return true
	}
	return false
}

// PaymentMethod 付款方式
type PaymentMethod string

const (
	PaymentMethodCard        PaymentMethod = "card"
	PaymentMethodMobileMoney PaymentMethod = "mobile_money"
	PaymentMethodBank        PaymentMethod = "bank"
)

// PaymentProvider 支付服務商
type PaymentProvider string

const (
	PaymentProviderStripe      PaymentProvider = "stripe"
	PaymentProviderPaystack    PaymentProvider = "paystack"
	PaymentProviderFlutterwave PaymentProvider = "flutterwave"
)

// Payment 付款紀錄，核心只消費其狀態，不處理金流本身
type Payment struct {
	ID        int             `json:"id" db:"id"`
	BookingID int             `json:"booking_id" db:"booking_id"`
	Amount    float64         `json:"amount" db:"amount"`
	Currency  string          `json:"currency" db:"currency"`
	Method    PaymentMethod   `json:"method" db:"method"`
	Provider  PaymentProvider `json:"provider" db:"provider"`
	Status    PaymentStatus   `json:"status" db:"status"`
	Reference string          `json:"reference" db:"reference"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// PaymentResultRequest 外部支付回報結果
type PaymentResultRequest struct {
	BookingID int           `json:"booking_id" binding:"required"`
	Status    PaymentStatus `json:"status" binding:"required"`
	Reference string        `json:"reference"`
}
