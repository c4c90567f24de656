package model

import "time"

// Review 評論模型，只有完成過該行程預訂的用戶可以發表
type Review struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	TourID    int       `json:"tour_id" db:"tour_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateReviewRequest 創建評論請求
type CreateReviewRequest struct {
	TourID  int    `json:"tour_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}
