package rules

import (
	"go-tour-booking/internal/model"
	apperrors "go-tour-booking/pkg/app_errors"
)

// RequireRole 檢查呼叫者角色是否不低於所需角色
func RequireRole(principal model.Principal, required model.Role) error {
	if !principal.Role.IsValid() {
		return apperrors.NewValidationError("role", "unknown role")
	}
	if !principal.Role.AtLeast(required) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
