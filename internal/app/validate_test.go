package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("title", "Dune"))
	assert.Error(t, ValidateRequired("title", ""))
	assert.Error(t, ValidateRequired("title", "   "))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("ana@example.com"))
	assert.NoError(t, ValidateEmail("a.b@sub.example.org"))

	for _, bad := range []string{
		"",
		"ana",
		"ana@",
		"@example.com",
		"ana@example",
		"ana@.com",
		"ana@example.",
		"a@b@c.com",
	} {
		assert.Error(t, ValidateEmail(bad), "email %q", bad)
	}
}

func TestNormalizePhone(t *testing.T) {
	got, err := NormalizePhone("(11) 98888-7777")
	require.NoError(t, err)
	assert.Equal(t, "11988887777", got)

	got, err = NormalizePhone("1234-5678")
	require.NoError(t, err)
	assert.Equal(t, "12345678", got)

	_, err = NormalizePhone("123-4567")
	assert.Error(t, err, "fewer than 8 digits")

	_, err = NormalizePhone("abc")
	assert.Error(t, err)
}
