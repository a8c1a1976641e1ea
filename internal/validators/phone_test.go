package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"(11) 98765-4321", "11987654321"},
		{"11987654321", "11987654321"},
		{"+55 11 98765-4321", "5511987654321"},
		{"abc", ""},
		{"", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, NormalizePhone(c.in), "entrada %q", c.in)
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("(11) 98765-4321"))
	assert.True(t, IsValidPhone("12345678"))
	assert.True(t, IsValidPhone("111"))
	assert.False(t, IsValidPhone("sem numero"))
	assert.False(t, IsValidPhone(""))
}
