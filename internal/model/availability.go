package model

import "time"

// MaxSlotsPerAvailability 單一出團日期的名額上限
const MaxSlotsPerAvailability = 1000

// TourAvailability 行程的具體出團日期與名額計數器。
// available_slots 只由預訂確認/取消流程增減，永不為負也永不超過 total_slots。
type TourAvailability struct {
	ID             int        `json:"id" db:"id"`
	TourID         int        `json:"tour_id" db:"tour_id"`
	StartDate      time.Time  `json:"start_date" db:"start_date"`
	EndDate        time.Time  `json:"end_date" db:"end_date"`
	TotalSlots     int        `json:"total_slots" db:"total_slots"`
	AvailableSlots int        `json:"available_slots" db:"available_slots"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// IsDeleted 檢查出團日期是否已刪除
func (a *TourAvailability) IsDeleted() bool {
	return a.DeletedAt != nil
}

// HasCapacity 檢查目前名額是否足夠
func (a *TourAvailability) HasCapacity(travelers int) bool {
	return travelers > 0 && travelers <= a.AvailableSlots
}

// AvailabilitySlot 查詢可預訂日期的結果
type AvailabilitySlot struct {
	AvailabilityID int       `json:"availability_id"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	AvailableSlots int       `json:"available_slots"`
	MaxGroupSize   int       `json:"max_group_size"`
	CanBook        bool      `json:"can_book"`
}
