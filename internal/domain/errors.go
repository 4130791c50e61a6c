package domain

import "errors"

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrNotFound          = errors.New("not found")
	ErrStorageFailure    = errors.New("storage failure")

	// ErrDuplicateContractNumber accompanies ErrStorageFailure when a
	// generated contract number collides with an existing one.
	ErrDuplicateContractNumber = errors.New("duplicate contract number")
	// ErrConcurrentUpdate accompanies ErrStorageFailure when a
	// version-guarded write lost a race.
	ErrConcurrentUpdate = errors.New("concurrent update")
)
