package filter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOperator is returned by ParseOperator for unrecognized input.
var ErrUnknownOperator = errors.New("unknown filter operator")

// Operator represents a comparison operator for filtering.
type Operator string

const (
	// OpEqual matches values equal to the rule value.
	OpEqual Operator = "equal"
	// OpNotEqual matches values different from the rule value.
	OpNotEqual Operator = "not-equal"
	// OpGreater matches values greater than the rule value.
	OpGreater Operator = "greater"
	// OpLess matches values less than the rule value.
	OpLess Operator = "less"
	// OpGreaterEqual matches values greater than or equal to the rule value.
	OpGreaterEqual Operator = "greater-or-equal"
	// OpLessEqual matches values less than or equal to the rule value.
	OpLessEqual Operator = "less-or-equal"
	// OpBetween matches values within the inclusive [lo, hi] array value.
	OpBetween Operator = "between"
	// OpNotBetween matches values outside the inclusive [lo, hi] array value.
	OpNotBetween Operator = "not-between"
	// OpIn matches values contained in the array value.
	OpIn Operator = "in"
	// OpNotIn matches values not contained in the array value.
	OpNotIn Operator = "not-in"
	// OpLike matches text containing every whitespace separated token of the value.
	OpLike Operator = "like"
)

// precedence lists operators from first to last evaluated.
var precedence = []Operator{
	OpEqual,
	OpNotEqual,
	OpGreater,
	OpLess,
	OpGreaterEqual,
	OpLessEqual,
	OpBetween,
	OpNotBetween,
	OpIn,
	OpNotIn,
	OpLike,
}

// Priority returns the evaluation rank of op; lower runs first. Unknown
// operators rank after like.
func (op Operator) Priority() int {
	for i, p := range precedence {
		if p == op {
			return i
		}
	}
	return len(precedence)
}

// Valid reports whether op is a known operator.
func (op Operator) Valid() bool {
	return op.Priority() < len(precedence)
}

var aliases = map[string]Operator{
	"eq": OpEqual, "=": OpEqual, "==": OpEqual,
	"ne": OpNotEqual, "neq": OpNotEqual, "!=": OpNotEqual,
	"gt": OpGreater, ">": OpGreater,
	"lt": OpLess, "<": OpLess,
	"gte": OpGreaterEqual, ">=": OpGreaterEqual,
	"lte": OpLessEqual, "<=": OpLessEqual,
	"nin": OpNotIn,
	"contains": OpLike,
}

// ParseOperator parses a canonical operator name or a short alias.
func ParseOperator(s string) (Operator, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if op := Operator(s); op.Valid() {
		return op, nil
	}
	if op, ok := aliases[s]; ok {
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperator, s)
}
