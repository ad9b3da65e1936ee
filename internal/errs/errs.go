package errs

import "errors"

var ErrInvalidAmount = errors.New("amount must be positive")
var ErrInsufficientBalance = errors.New("not enough points")
var ErrInvalidTransition = errors.New("illegal status transition")
var ErrNotFound = errors.New("not found")
var ErrAlreadyReversed = errors.New("transaction already reversed")
var ErrBookUnavailable = errors.New("book is not available")
var ErrSelfPurchase = errors.New("cannot buy own listing")
var ErrStorageUnavailable = errors.New("storage unavailable")
