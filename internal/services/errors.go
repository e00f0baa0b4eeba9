package services

import "errors"

// ValidationError marks a rejected request payload. Handlers map it to a 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// ErrInvalidCredentials marks a failed login. Handlers map it to a 401.
var ErrInvalidCredentials = errors.New("invalid email or password")
