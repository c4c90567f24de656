package rules

import (
	"go-tour-booking/internal/model"
	apperrors "go-tour-booking/pkg/app_errors"
)

// MaxPaymentAmount 單筆付款金額上限
const MaxPaymentAmount = 1000000.0

// supportedCurrencies 固定支援的幣別
var supportedCurrencies = map[string]bool{
	"USD": true,
	"EUR": true,
	"GBP": true,
	"NGN": true,
	"KES": true,
	"GHS": true,
}

// providerMethods 支付服務商與付款方式的相容表
var providerMethods = map[model.PaymentProvider]map[model.PaymentMethod]bool{
	model.PaymentProviderStripe: {
		model.PaymentMethodCard: true,
	},
	model.PaymentProviderPaystack: {
		model.PaymentMethodCard:        true,
		model.PaymentMethodMobileMoney: true,
		model.PaymentMethodBank:        true,
	},
	model.PaymentProviderFlutterwave: {
		model.PaymentMethodCard:        true,
		model.PaymentMethodMobileMoney: true,
		model.PaymentMethodBank:        true,
	},
}

// ValidatePayment 檢查付款：金額、幣別、服務商與方式相容性
func ValidatePayment(amount float64, currency string, method model.PaymentMethod, provider model.PaymentProvider) error {
	if amount <= 0 {
		return apperrors.NewValidationError("amount", "must be greater than 0")
	}
	if amount > MaxPaymentAmount {
		return apperrors.NewValidationError("amount", "must not exceed 1000000")
	}
	if !supportedCurrencies[currency] {
		return apperrors.NewValidationError("currency", "unsupported currency")
	}

	methods, ok := providerMethods[provider]
	if !ok {
		return apperrors.NewValidationError("provider", "unsupported payment provider")
	}
	if !methods[method] {
		return apperrors.NewValidationError("method", "payment method not supported by provider")
	}
	return nil
}
