package transfer

import "errors"

// ErrUnknownTransfer means no ledger entry exists for the given id. Malformed
// ids resolve to the same error so callers see a plain not-found.
var ErrUnknownTransfer = errors.New("transfer not found")

// InvalidRequestError rejects a transfer before any session is touched.
type InvalidRequestError struct {
	Msg string
}

func (e *InvalidRequestError) Error() string { return e.Msg }

func invalidRequest(msg string) *InvalidRequestError {
	return &InvalidRequestError{Msg: msg}
}
