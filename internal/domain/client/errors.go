package client

import "errors"

var (
	ErrEmailTaken     = errors.New("email is already registered")
	ErrDocNumberTaken = errors.New("document number is already registered")
	ErrNotFound       = errors.New("client not found")
)
