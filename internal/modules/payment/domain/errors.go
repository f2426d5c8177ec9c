package domain

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrNotPremiumTheme   = errors.New("theme is not a premium theme")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrWebhookUnverified = errors.New("webhook signature verification failed")
	ErrOrderNotCompleted = errors.New("order capture did not complete")
)
