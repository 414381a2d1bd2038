package model

import "errors"

var (
	ErrValidation = errors.New("validation failed")

	ErrRepairOrderNotFound = errors.New("repair order not found")
	ErrStockItemNotFound   = errors.New("stock item not found")
	ErrUsedPartNotFound    = errors.New("used part batch not found")
	ErrDispositionNotFound = errors.New("disposition not found")
	ErrTechnicianNotFound  = errors.New("technician not found")

	ErrInvalidTransition = errors.New("invalid status transition")
	ErrRepairOrderClosed = errors.New("repair order is completed")

	ErrNothingRemaining         = errors.New("nothing remaining to process")
	ErrQuantityExceedsRemaining = errors.New("quantity exceeds remaining")
	ErrInsufficientStock        = errors.New("insufficient stock")
	ErrDuplicateCode            = errors.New("stock code already exists")

	ErrConcurrentUpdate = errors.New("concurrent update, retries exhausted")
)
