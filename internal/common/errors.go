// Package common contains sentinel errors shared across staffdesk components.
package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound = errors.New("not found")

	// service specific errors
	ErrorInternal = errors.New("internal error")

	// configuration errors
	ErrorSecretKeyMissing = errors.New("secret key is not configured")

	// identity-specific errors
	ErrorEmailTaken         = errors.New("this user already exists")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// auth-gate rejections
	ErrorMissingToken = errors.New("token not found")
	ErrorTokenInvalid = errors.New("invalid token")
	ErrorTokenRevoked = errors.New("invalid token (logged out)")

	// employee-specific errors
	ErrorEmployeeExists = errors.New("this employee already exists")

	// positions proxy errors
	ErrorPositionsUnavailable = errors.New("positions service unavailable")
)
