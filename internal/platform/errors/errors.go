package apperrors

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrUnparseableTime = errors.New("unparseable timestamp")
	ErrNoAdminSession  = errors.New("no admin session")
	ErrSessionExpired  = errors.New("admin session expired")
	ErrBadCredentials  = errors.New("bad credentials")
)
