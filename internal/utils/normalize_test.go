package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Uppercases", "Bob Dylan", "BOB DYLAN"},
		{"Drops punctuation", "B.o.B", "BOB"},
		{"Collapses whitespace", "  The   Beatles  ", "THE BEATLES"},
		{"Keeps digits", "Blink-182", "BLINK182"},
		{"Unicode letters", "Björk", "BJÖRK"},
		{"Tabs and newlines", "a\tb\nc", "A B C"},
		{"Only punctuation", "?!...", ""},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}
