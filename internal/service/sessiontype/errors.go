package sessiontype

import "errors"

var (
	ErrNotFound       = errors.New("session type not found")
	ErrNameTaken      = errors.New("session type name already in use")
	ErrDeleted        = errors.New("session type has been deleted")
	ErrInvalidRequest = errors.New("invalid session type request")
)
