package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubTerminal(t *testing.T, tty bool, read func(int) ([]byte, error)) {
	t.Helper()
	origRead, origIs, origFd := readPassword, isTerminal, stdinFd
	t.Cleanup(func() { readPassword, isTerminal, stdinFd = origRead, origIs, origFd })
	isTerminal = func(int) bool { return tty }
	stdinFd = func() int { return 0 }
	if read != nil {
		readPassword = read
	}
}

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"line", "hello world\n", "hello world"},
		{"eof after text", "lastline", "lastline"},
		{"crlf and spaces", "  padded \r\n", "padded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(rdr(tt.input), "Name?", &out)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, "Name?\n> ", out.String())
		})
	}
}

func TestGetSimpleText_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return []byte("s3cret!!"), nil })

	var out bytes.Buffer
	pw, err := GetPassword(rdr("ignored\n"), &out)
	require.NoError(t, err)
	require.Equal(t, "s3cret!!", string(pw))
	require.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_TerminalError(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return nil, errors.New("boom") })

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), &out)
	require.Error(t, err)
}

func TestGetPassword_Piped(t *testing.T) {
	stubTerminal(t, false, func(int) ([]byte, error) {
		t.Fatal("terminal must not be read when stdin is piped")
		return nil, nil
	})

	in := rdr("password1\nnext\n")
	var out bytes.Buffer
	pw, err := GetPassword(in, &out)
	require.NoError(t, err)
	require.Equal(t, "password1", string(pw))

	rest, err := readLine(in)
	require.NoError(t, err)
	require.Equal(t, "next", rest)
}

func TestGetPassword_PipedEOF(t *testing.T) {
	stubTerminal(t, false, nil)

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), &out)
	require.Error(t, err)
}

func TestGetMultiline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "unix newlines", input: "a\nb\n\n", expected: "a\nb"},
		{name: "windows CRLF", input: "a\r\nb\r\n\r\n", expected: "a\nb"},
		{name: "immediate blank line", input: "\n", expected: ""},
		{name: "EOF without blank line", input: "a\nb", expected: "a\nb"},
		{name: "outer spaces trimmed", input: "  hello  \n\n", expected: "hello"},
		{name: "stops at first blank line", input: "a\n\nb\n", expected: "a"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetMultiline(rdr(tc.input), "Content", &out)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}
