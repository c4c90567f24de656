package model

import (
	"time"

	"github.com/google/uuid"
)

// TourStatus 行程狀態類型
type TourStatus string

const (
	TourStatusActive   TourStatus = "active"
	TourStatusInactive TourStatus = "inactive"
)

// IsValid 驗證狀態是否有效
func (s TourStatus) IsValid() bool {
	return s == TourStatusActive || s == TourStatusInactive
}

// Tour 行程模型：可被預訂的產品
type Tour struct {
	ID             int             `json:"id" db:"id"`
	TourID         uuid.UUID       `json:"tour_id" db:"tour_id"`
	OwnerID        int             `json:"owner_id" db:"owner_id"`
	Title          string          `json:"title" db:"title"`
	Description    *string         `json:"description,omitempty" db:"description"`
	PricePerPerson float64         `json:"price_per_person" db:"price_per_person"`
	MaxGroupSize   int             `json:"max_group_size" db:"max_group_size"`
	DurationDays   int             `json:"duration_days" db:"duration_days"`
	Status         TourStatus      `json:"status" db:"status"`
	Itinerary      []ItineraryItem `json:"itinerary" db:"-"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
	DeletedAt      *time.Time      `json:"deleted_at,omitempty" db:"deleted_at"`
}

// ItineraryItem 行程單日內容，Day 從 1 開始連續編號
type ItineraryItem struct {
	ID       int    `json:"id" db:"id"`
	TourID   int    `json:"tour_id" db:"tour_id"`
	Day      int    `json:"day" db:"day"`
	Title    string `json:"title" db:"title"`
	Activity string `json:"activity" db:"activity"`
}

type UpdateTourParams struct {
	Title          *string
	Description    *string
	PricePerPerson *float64
	MaxGroupSize   *int
	Status         *TourStatus
}

// IsDeleted 檢查行程是否已刪除
func (t *Tour) IsDeleted() bool {
	return t.DeletedAt != nil
}

// IsBookable 檢查行程是否開放預訂
func (t *Tour) IsBookable() bool {
	return !t.IsDeleted() && t.Status == TourStatusActive
}

// TourResponse 行程響應
type TourResponse struct {
	ID             int     `json:"id"`
	TourID         string  `json:"tour_id"`
	Title          string  `json:"title"`
	PricePerPerson float64 `json:"price_per_person"`
	MaxGroupSize   int     `json:"max_group_size"`
	DurationDays   int     `json:"duration_days"`
	Status         string  `json:"status"`
}
