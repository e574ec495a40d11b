package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrOnlyCensoredFiles = fmt.Errorf("censored directory contains directories")
	ErrEmptyWords        = fmt.Errorf("no words have been found")
	ErrSlowConsumer      = fmt.Errorf("connection send buffer full")
	ErrConnectionClosed  = fmt.Errorf("connection closed")
	ErrInvalidToken      = fmt.Errorf("invalid auth token")
	ErrIdentityMismatch  = fmt.Errorf("join identity does not match token claims")
)
