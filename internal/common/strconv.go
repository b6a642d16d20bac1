package common

import (
	"errors"
	"strconv"
	"strings"
)

// CodeInvalidQuantity marks quantity input that is not a positive integer.
const CodeInvalidQuantity = "invalid_quantity"

var errNotPositive = errors.New("must be at least 1")

// ParseQuantity reads a cart quantity typed by the user.
func ParseQuantity(value string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, NewAppError(CodeInvalidQuantity, "invalid quantity", err)
	}
	if qty < 1 {
		return 0, NewAppError(CodeInvalidQuantity, "invalid quantity", errNotPositive)
	}
	return qty, nil
}
