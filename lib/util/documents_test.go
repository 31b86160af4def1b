package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NormalizeDocument(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"123.456.789-00", "12345678900"},
		{"12345678900", "12345678900"},
		{"123 456 789 01", "12345678901"},
		{"abc", ""},
		{"", ""},
		{"cpf: 987.654.321-00", "98765432100"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, NormalizeDocument(c.input), "input %q", c.input)
	}
}

func Test_ValidDocument(t *testing.T) {
	assert.True(t, ValidDocument("12345678900"))
	assert.True(t, ValidDocument("1"))
	assert.True(t, ValidDocument("12345678901234"))

	assert.False(t, ValidDocument(""))
	assert.False(t, ValidDocument("123456789012345"))
	assert.False(t, ValidDocument("123.456"))
	assert.False(t, ValidDocument("anon_a1b2c3d4"))
}
