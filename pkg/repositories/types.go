package repositories

import (
	"errors"
	"fmt"
)

type ErrNotFound struct {
	Slot string
}

func (e *ErrNotFound) Error() string {
	if e.Slot == "" {
		return "not found"
	}
	return fmt.Sprintf("save slot %q not found", e.Slot)
}

func IsNotFound(err error) bool {
	var notFound *ErrNotFound
	return errors.As(err, &notFound)
}
