package domain

import "errors"

var (
	// ErrEmptyEmailText is returned before any upstream call when the email text is blank.
	ErrEmptyEmailText = errors.New("email text is required")

	// ErrUpstream wraps every failure of the generative AI call, including unusable output.
	ErrUpstream = errors.New("classification service failed")

	// ErrMalformedResponse marks AI output that does not carry the two expected lines.
	// It is always returned wrapped together with ErrUpstream.
	ErrMalformedResponse = errors.New("malformed classification response")

	ErrNotFound = errors.New("classification not found")
)
