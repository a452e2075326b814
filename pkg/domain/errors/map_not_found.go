package domain

import (
	"errors"
	"fmt"
)

type mapNotFoundError struct {
	ID string
}

func (e *mapNotFoundError) Error() string {
	return fmt.Sprintf("redaction map '%s' not found or already released", e.ID)
}

func NewMapNotFoundError(id string) error {
	return &mapNotFoundError{
		ID: id,
	}
}

func IsMapNotFound(err error) bool {
	var target *mapNotFoundError
	return errors.As(err, &target)
}
