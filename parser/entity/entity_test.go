package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		code  rune
		found bool
	}{
		{"nbsp", 160, true},
		{"NBSP", 160, true},
		{"copy", 169, true},
		{"Alpha", 913, true},
		{"alpha", 945, true},
		{"ALPHA", 945, true},
		{"Prime", 8243, true},
		{"prime", 8242, true},
		{"euro", 8364, true},
		{"amp", 38, true},
		{"apos", 0, false},
		{"bogus", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, ok := Lookup(tt.name)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestLookupHTML5(t *testing.T) {
	tests := []struct {
		name  string
		code  rune
		found bool
	}{
		{"apos", '\'', true},
		{"hearts", 9829, true},
		{"NotEqualTilde", 0, false}, // decodes to two code points
		{"notit", 0, false},
		{"bogus", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, ok := LookupHTML5(tt.name)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestTableSize(t *testing.T) {
	assert.Equal(t, 251, Len())
}
