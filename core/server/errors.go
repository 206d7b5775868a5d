package server

import "errors"

var (
	// Server lifecycle errors
	ErrBindFailed           = errors.New("failed to bind listener")
	ErrServerAlreadyRunning = errors.New("server is already running")

	// Configuration errors
	ErrMissingAddress  = errors.New("server address is required")
	ErrInvalidBindIP   = errors.New("invalid bind IP address")
	ErrInvalidBindPort = errors.New("invalid bind port")
)
