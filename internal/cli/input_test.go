package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectSingleOptionSkipsPrompt(t *testing.T) {
	c := NewTerminalCollectorWithIO(strings.NewReader(""), &bytes.Buffer{})

	got, err := c.Select("Executable", []string{"bin/app"})
	require.NoError(t, err)
	assert.Equal(t, "bin/app", got)
}

func TestSelectNoOptions(t *testing.T) {
	c := NewTerminalCollectorWithIO(strings.NewReader(""), &bytes.Buffer{})

	_, err := c.Select("Executable", nil)
	assert.Error(t, err)
}

func TestSelectWithNumbers(t *testing.T) {
	var out bytes.Buffer
	c := NewTerminalCollectorWithIO(strings.NewReader("2\n"), &out)

	got, err := c.selectWithNumbers("Executable", []string{"bin/app", "bin/tool"})
	require.NoError(t, err)
	assert.Equal(t, "bin/tool", got)
	assert.Contains(t, out.String(), "1) bin/app")
	assert.Contains(t, out.String(), "2) bin/tool")
}

func TestSelectWithNumbersInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a number", "abc\n"},
		{"zero", "0\n"},
		{"out of range", "3\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewTerminalCollectorWithIO(strings.NewReader(tc.input), &bytes.Buffer{})
			_, err := c.selectWithNumbers("Executable", []string{"a", "b"})
			assert.Error(t, err)
		})
	}
}

func TestLineDefault(t *testing.T) {
	var out bytes.Buffer
	c := NewTerminalCollectorWithIO(strings.NewReader("\n"), &out)

	got, err := c.Line("Command", "cmake -Bbuild -H.")
	require.NoError(t, err)
	assert.Equal(t, "cmake -Bbuild -H.", got)
	assert.Contains(t, out.String(), "[cmake -Bbuild -H.]")
}

func TestLineEdited(t *testing.T) {
	c := NewTerminalCollectorWithIO(strings.NewReader("cmake -Bout -H. -GNinja\n"), &bytes.Buffer{})

	got, err := c.Line("Command", "cmake -Bout -H.")
	require.NoError(t, err)
	assert.Equal(t, "cmake -Bout -H. -GNinja", got)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"y\n", true},
		{"yes\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"anything\n", false},
	}

	for _, tc := range tests {
		t.Run(strings.TrimSpace(tc.input), func(t *testing.T) {
			c := NewTerminalCollectorWithIO(strings.NewReader(tc.input), &bytes.Buffer{})
			got, err := c.Confirm("Delete build dir")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestReadLineEOFWithoutNewline(t *testing.T) {
	c := NewTerminalCollectorWithIO(strings.NewReader("y"), &bytes.Buffer{})

	got, err := c.Confirm("Proceed")
	require.NoError(t, err)
	assert.True(t, got)
}
