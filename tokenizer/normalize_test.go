package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"latin", "Cn", "cn"},
		{"already folded", "filius", "filius"},
		{"greek capital", "ΚΑΙ", "και"},
		{"final sigma", "λόγος", "λόγοσ"},
		{"decomposed accent", "\u03b1\u0301", "\u03ac"},
		{"empty string", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Fold(tc.input))
		})
	}
}

func TestFold_Equivalence(t *testing.T) {
	assert.Equal(t, Fold("Λόγος"), Fold("λόγος"))
	assert.Equal(t, Fold("ΣΩΚΡΆΤΗΣ"), Fold("σωκράτης"))
}
