package services

import "errors"

// Sentinel errors handlers translate into the response contract: login
// failures become plain 200 messages, missing/unowned complaints become 404.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrComplaintNotFound = errors.New("complaint not found or unauthorized")
)
