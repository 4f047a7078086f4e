package payment

import "errors"

var (
	ErrWalletNotFound     = errors.New("wallet not found for client")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrAmountTooLarge     = errors.New("amount exceeds the allowed maximum")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrSessionNotFound    = errors.New("payment session not found")
	ErrSessionAlreadyUsed = errors.New("payment session already confirmed")
	ErrSessionExpired     = errors.New("payment session expired")
	ErrTokenMismatch      = errors.New("confirmation token does not match")
	ErrNotificationFailed = errors.New("confirmation token could not be delivered")
)
