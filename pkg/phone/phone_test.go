package phone_test

import (
	"testing"

	"github.com/MannyGDy/Captive-Portal/pkg/phone"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "08012345678", "08012345678"},
		{"dashes", "080-1234-5678", "08012345678"},
		{"spaces", "080 1234 5678", "08012345678"},
		{"parentheses", "(080) 1234-5678", "08012345678"},
		{"mixed separators", " 080-(1234) 5678 ", "08012345678"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, phone.Normalize(tc.input))
		})
	}
}

func TestIsValid(t *testing.T) {
	t.Run("accepts all valid prefixes", func(t *testing.T) {
		for _, prefix := range []string{"070", "080", "081", "090", "091"} {
			assert.True(t, phone.IsValid(prefix+"12345678"), prefix)
		}
	})

	t.Run("rejects invalid numbers", func(t *testing.T) {
		invalid := []string{
			"06012345678",  // unknown prefix
			"0801234567",   // too short
			"080123456789", // too long
			"080-1234-5678", // not normalized
			"08o12345678",  // letter
			"",
		}
		for _, num := range invalid {
			assert.False(t, phone.IsValid(num), num)
		}
	})

	t.Run("separator variants normalize to the same valid number", func(t *testing.T) {
		a := phone.Normalize("080-1234-5678")
		b := phone.Normalize("08012345678")
		assert.Equal(t, a, b)
		assert.True(t, phone.IsValid(a))
	})
}
