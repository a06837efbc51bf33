// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrContactNotFound is a sentinel error
type ErrContactNotFound struct {
	Email string
}

func (e *ErrContactNotFound) Error() string {
	return fmt.Sprintf("contact with email %s not found", e.Email)
}

// Helper constructor
func NewContactNotFound(email string) error {
	return &ErrContactNotFound{Email: email}
}

// ErrUnknownBook is returned when content is requested for a title
// that is not in the catalog.
type ErrUnknownBook struct {
	Key string
}

func (e *ErrUnknownBook) Error() string {
	return fmt.Sprintf("book %q not in catalog", e.Key)
}

func NewUnknownBook(key string) error {
	return &ErrUnknownBook{Key: key}
}

// ErrPriceUnavailable marks a page that loaded but exposed no price.
var ErrPriceUnavailable = errors.New("price not found on page")

// ErrNoHistory marks a metric or listing with no recorded points yet.
var ErrNoHistory = errors.New("no history recorded")
