package owner

import "errors"

var (
	ErrOwnerNotFound = errors.New("owner not found")
	ErrEmailExists   = errors.New("owner email already registered")
)
