package app

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  Dune  \n"))

	got, err := GetSimpleText(r, "Enter title", &out)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got)
	assert.Contains(t, out.String(), "Enter title")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("Dune"))

	got, err := GetSimpleText(r, "Enter title", &out)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer

	got, err := GetInt(bufio.NewReader(strings.NewReader("1965\n")), "Enter year", &out)
	require.NoError(t, err)
	assert.Equal(t, 1965, got)

	_, err = GetInt(bufio.NewReader(strings.NewReader("soon\n")), "Enter year", &out)
	assert.Error(t, err)
}

func TestGetID(t *testing.T) {
	var out bytes.Buffer

	got, err := GetID(bufio.NewReader(strings.NewReader("42\n")), "Enter id", &out)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	for _, bad := range []string{"0\n", "-1\n", "x\n"} {
		_, err = GetID(bufio.NewReader(strings.NewReader(bad)), "Enter id", &out)
		assert.Error(t, err, "id %q", strings.TrimSpace(bad))
	}
}

func TestGetConfirmation(t *testing.T) {
	var out bytes.Buffer

	for answer, want := range map[string]bool{
		"y\n": true, "yes\n": true, "Y\n": true,
		"n\n": false, "\n": false, "maybe\n": false,
	} {
		got, err := GetConfirmation(bufio.NewReader(strings.NewReader(answer)), "Sure?", &out)
		require.NoError(t, err)
		assert.Equal(t, want, got, "answer %q", strings.TrimSpace(answer))
	}
}
