package errors

import "errors"

const (
	UnauthenticatedError      = "Unauthorized access"
	InvalidTokenError         = "Token is invalid"
	ForbiddenAccessError      = "Forbidden access"
	InvalidRequestFormatError = "Invalid request format"
	InvalidPriceError         = "Price is missing or invalid"
	ErrorToken                = "Error generating token"
)

var (
	ErrUnauthenticated = errors.New(UnauthenticatedError)
	ErrInvalidToken    = errors.New(InvalidTokenError)
	ErrForbidden       = errors.New(ForbiddenAccessError)
)
