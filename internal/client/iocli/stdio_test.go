package iocli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestStdio_PrintlnAndPrintf(t *testing.T) {
	var buf bytes.Buffer
	stdio := &Stdio{out: &buf}

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")

	assert.Equal(t, "hello world\ntest 1 abc", buf.String())
}

func TestStdio_Write(t *testing.T) {
	var buf bytes.Buffer
	stdio := &Stdio{out: &buf}

	n, err := stdio.Write([]byte(`{"documents":[]}`))

	require.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.Equal(t, `{"documents":[]}`, buf.String())
}

// Последовательные чтения не теряют буферизованный остаток
func TestStdio_ReadInput(t *testing.T) {
	var out bytes.Buffer
	stdio := &Stdio{
		in:  bufio.NewReader(strings.NewReader("first line\n  second line  \n")),
		out: &out,
	}

	got, err := stdio.ReadInput("> ")
	require.NoError(t, err)
	assert.Equal(t, "first line", got)

	got, err = stdio.ReadInput("> ")
	require.NoError(t, err)
	assert.Equal(t, "second line", got)

	assert.Equal(t, "> > ", out.String())
}

func TestStdio_ReadInput_EOF(t *testing.T) {
	stdio := &Stdio{
		in:  bufio.NewReader(strings.NewReader("")),
		out: &bytes.Buffer{},
	}

	_, err := stdio.ReadInput("> ")

	require.ErrorIs(t, err, io.EOF)
}
