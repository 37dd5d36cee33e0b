package offering

import "errors"

var (
	ErrNotFound            = errors.New("session offering not found")
	ErrDuplicateOffering   = errors.New("doctor already offers this session type at this branch")
	ErrSessionTypeNotFound = errors.New("session type not found")
	ErrSessionTypeInactive = errors.New("session type is not active")
	ErrInvalidRequest      = errors.New("invalid session offering request")
)
