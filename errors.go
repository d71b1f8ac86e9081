package reclist

import (
	"errors"
	"fmt"

	"github.com/hupe1980/reclist/filter"
	"github.com/hupe1980/reclist/order"
)

var (
	// ErrInvalidPageSize is returned when a configured page size is not positive.
	ErrInvalidPageSize = errors.New("page size must be positive")

	// ErrInvalidLocale is returned when a locale is not a valid BCP 47 tag.
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrUnknownOperator is returned when parsing an unknown filter operator.
	ErrUnknownOperator = filter.ErrUnknownOperator

	// ErrUnknownDirection is returned when parsing an unknown sort direction.
	ErrUnknownDirection = order.ErrUnknownDirection
)

// ErrInvalidValue indicates an input record field that cannot be represented.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrInvalidValue struct {
	Index int
	Field string
	cause error
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid value in record %d field %q: %v", e.Index, e.Field, e.cause)
}

func (e *ErrInvalidValue) Unwrap() error { return e.cause }
