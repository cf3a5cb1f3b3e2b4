package domain

import "errors"

// Domain errors
var (
	ErrNoFiles       = errors.New("no files provided")
	ErrIntakeFailed  = errors.New("intake failed")
	ErrNoRecords     = errors.New("no salary records found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmptyLedger   = errors.New("ledger is empty")
	ErrInternalError = errors.New("internal error")
)
