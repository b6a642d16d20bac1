package common

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	qty, err := ParseQuantity(" 3 ")
	require.NoError(t, err)
	require.Equal(t, 3, qty)

	_, err = ParseQuantity("tres")
	require.Error(t, err)
	require.True(t, IsAppError(err))
	require.Equal(t, CodeInvalidQuantity, ErrorCode(err))
	require.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = ParseQuantity("0")
	require.Equal(t, CodeInvalidQuantity, ErrorCode(err))
	_, err = ParseQuantity("-2")
	require.Equal(t, CodeInvalidQuantity, ErrorCode(err))
}

func TestErrorCodeOnPlainError(t *testing.T) {
	require.Empty(t, ErrorCode(errNotPositive))
	require.False(t, IsAppError(errNotPositive))
}
