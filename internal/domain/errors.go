package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenRequired      = errors.New("token required")
	ErrClientInUse        = errors.New("client is referenced by existing documents")
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidStatus      = errors.New("invalid document status")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDiscount    = errors.New("invalid discount type")
	ErrOverpaidReceipt    = errors.New("amount paid exceeds receipt total")
	ErrEmailSendFailed    = errors.New("email delivery failed")
	ErrUploadFailed       = errors.New("logo upload to storage failed")
	ErrTokenExhausted     = errors.New("could not issue a unique share token")
)
