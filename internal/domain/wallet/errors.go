package wallet

import "errors"

var (
	ErrWalletNotFound = errors.New("wallet not found for client")
	ErrInvalidAmount  = errors.New("amount must be greater than zero")
)
