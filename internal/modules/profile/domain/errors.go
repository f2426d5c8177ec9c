package domain

import "errors"

var (
	ErrPageNotFound    = errors.New("page not found")
	ErrLinkNotFound    = errors.New("custom link not found")
	ErrUnknownPlatform = errors.New("unknown social platform")
	ErrInvalidURL      = errors.New("invalid link url")
	ErrTooManyLinks    = errors.New("custom link limit reached")
)
