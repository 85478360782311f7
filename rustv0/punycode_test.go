package rustv0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodePunycode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "pure basic code points", input: "ASCII-", expected: "ASCII", ok: true},
		{name: "empty input decodes to empty", input: "", expected: "", ok: true},
		{name: "invalid digit fails", input: "!", expected: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodePunycode(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestDecodeIdentifierName_PunycodeRewritesFinalUnderscore(t *testing.T) {
	// "ASCII_" with the punycode flag rewrites the trailing "_" to "-"
	// before bootstring decoding, per the undisambiguated-identifier
	// production's u-flag handling.
	got, ok := decodeIdentifierName("ASCII_", true)
	assert.True(t, ok)
	assert.Equal(t, "ASCII", got)
}

func TestDecodeIdentifierName_NoFlagIsVerbatim(t *testing.T) {
	got, ok := decodeIdentifierName("hello", false)
	assert.True(t, ok)
	assert.Equal(t, "hello", got)
}
