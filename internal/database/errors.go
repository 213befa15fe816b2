package database

import (
	"errors"
	"fmt"
)

// ErrWrite is returned when the file-backed store could not persist a change.
var ErrWrite = errors.New("failed to write store")

func errWriteFailed(key string) error {
	return fmt.Errorf("%s: %w", key, ErrWrite)
}
