package payee

import "errors"

var (
	ErrWorkerNotFound = errors.New("worker not found")
	ErrEmailExists    = errors.New("worker email already registered")
)
