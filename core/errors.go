package core

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the row targeted by a get, update or delete
// does not exist. Handlers translate it to a 404.
var ErrNotFound = errors.New("record not found")

// StorageError wraps a failure reported by the database driver.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
