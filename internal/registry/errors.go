package registry

import "errors"

// Error is a named rejection of a registry call. Code is stable and machine readable,
// Message is the revert reason.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrRateLimited            = &Error{Code: "rate_limited", Message: "one action per block"}
	ErrGasPriceTooHigh        = &Error{Code: "gas_price_too_high", Message: "gas price too high"}
	ErrNameTooShort           = &Error{Code: "name_too_short", Message: "name too short"}
	ErrInvalidData            = &Error{Code: "invalid_data", Message: "invalid data"}
	ErrAlreadyRegistered      = &Error{Code: "already_registered", Message: "already registered"}
	ErrIncorrectPayment       = &Error{Code: "incorrect_payment", Message: "insufficient fee and lock amount"}
	ErrUserAlreadyHasName     = &Error{Code: "user_already_has_name", Message: "user already have name"}
	ErrNotRegisteredOrExpired = &Error{Code: "not_registered_or_expired", Message: "not registered or already expired"}
	ErrNoNameRegistered       = &Error{Code: "no_name_registered", Message: "no name registered"}
	ErrNameNotExpired         = &Error{Code: "name_not_expired", Message: "name not expired yet"}
	ErrAlreadyUnlocked        = &Error{Code: "already_unlocked", Message: "already unlocked"}
	ErrUnauthorized           = &Error{Code: "unauthorized", Message: "caller is not the owner"}
	ErrInsufficientBalance    = &Error{Code: "insufficient_balance", Message: "insufficient registry balance"}
)

// Code returns the rejection code carried by err, or an empty string for
// infrastructure failures and nil.
func Code(err error) string {
	var rejection *Error
	if errors.As(err, &rejection) {
		return rejection.Code
	}
	return ""
}
