package util

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("no path")
	err := WrapErrorf(orig, ErrNotFound, "from %d to %d", 1, 2)

	assert.Equal(t, "from 1 to 2: no path", err.Error())
	assert.ErrorIs(t, err, orig)

	var ue *Error
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, ErrNotFound, ue.Code())

	assert.Equal(t, "bare", WrapErrorf(nil, ErrTimeout, "bare").Error())
}

func TestReadLine(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("2 3\r\nfirst\nlast"))

	line, err := ReadLine(br)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, Fields(line))

	line, err = ReadLine(br)
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = ReadLine(br)
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = ReadLine(br)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReverseG(t *testing.T) {
	in := []int{1, 2, 3}
	assert.Equal(t, []int{3, 2, 1}, ReverseG(in))
	assert.Equal(t, []int{1, 2, 3}, in)
	assert.Empty(t, ReverseG([]int{}))
}
