package rules

import (
	apperrors "go-tour-booking/pkg/app_errors"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MinCommentLength = 10
	MaxCommentLength = 1000
)

// ValidateReview 檢查評論內容：評分區間與留言長度。
// 「必須有已確認的預訂」由 review service 查詢後判斷。
func ValidateReview(rating int, comment string) error {
	if rating < MinRating || rating > MaxRating {
		return apperrors.NewValidationError("rating", "must be an integer between 1 and 5")
	}
	if len(comment) < MinCommentLength {
		return apperrors.NewValidationError("comment", "must be at least 10 characters")
	}
	if len(comment) > MaxCommentLength {
		return apperrors.NewValidationError("comment", "must not exceed 1000 characters")
	}
	return nil
}
