package errors

import "errors"

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidShop         = errors.New("invalid shop")
	ErrInvalidFile         = errors.New("invalid file")
	ErrUnsupportedDocument = errors.New("unsupported document")
	ErrEmptyOrder          = errors.New("order has no files")
	ErrOrderFinalized      = errors.New("order already finalized")
	ErrOrderNotFinalized   = errors.New("order not finalized")
	ErrPaymentInProgress   = errors.New("payment in progress")
	ErrAlreadyPaid         = errors.New("order already paid")
	ErrNotVerifying        = errors.New("entry is not awaiting verification")
	ErrCodeMismatch        = errors.New("verification code mismatch")
	ErrInvalidCode         = errors.New("invalid verification code")
)
