package domain

import "errors"

var (
	// ErrStoreOpen classifies every failure to open a dictionary store
	ErrStoreOpen = errors.New("cannot open dictionary")

	// ErrStoreNotFound means the dictionary file does not exist
	ErrStoreNotFound = &storeError{msg: "dictionary not found"}

	// ErrStoreIO means the dictionary exists but could not be read
	ErrStoreIO = &storeError{msg: "dictionary unreadable"}

	// ErrNoDictionaries means discovery found nothing to open
	ErrNoDictionaries = errors.New("no dictionaries found")
)

type storeError struct {
	msg string
}

func (e *storeError) Error() string { return e.msg }

// Is lets both store sentinels match ErrStoreOpen
func (e *storeError) Is(target error) bool {
	return target == ErrStoreOpen
}
