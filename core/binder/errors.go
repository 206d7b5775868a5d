package binder

import "errors"

var (
	// ErrUnsupportedMediaType indicates the Content-Type header names a media
	// type the binder does not handle.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrFailedToParseJSON indicates an unreadable, oversized, or malformed
	// JSON request body.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")

	// ErrMissingContentType indicates the request lacks a Content-Type header.
	ErrMissingContentType = errors.New("missing content type")
)
