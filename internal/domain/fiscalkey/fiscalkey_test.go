package fiscalkey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const validKey = "35240112345678000190550010000012341000012345"

func TestIsValid(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{name: "44 digits", in: validKey, want: true},
		{name: "grouped with spaces", in: Format(validKey), want: true},
		{name: "tabs and newlines", in: "\t" + validKey[:20] + "\n" + validKey[20:] + " ", want: true},
		{name: "43 digits", in: validKey[:43], want: false},
		{name: "45 digits", in: validKey + "1", want: false},
		{name: "letter inside", in: validKey[:43] + "a", want: false},
		{name: "punctuation", in: validKey[:43] + ".", want: false},
		{name: "non ascii digits", in: strings.Repeat("٣", 44), want: false},
		{name: "empty", in: "", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValid(tc.in))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "3524 0112 3456 7800 0190 5500 1000 0012 3410 0001 2345", Format(validKey))
	assert.Equal(t, "1234 56", Format("12 3456"))
	assert.Equal(t, "", Format(""))
	assert.Equal(t, "   ", Format("   "), "nothing to group returns the input")
}

func TestFormatIsIdempotent(t *testing.T) {
	once := Format(validKey)
	assert.Equal(t, once, Format(once))
	assert.Equal(t, "1234 5678 9", Format(Format("123456789")))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "123456", Sanitize("12.34-56"))
	assert.Equal(t, validKey, Sanitize(Format(validKey)))
	assert.Equal(t, validKey, Sanitize(validKey+"999"), "capped at 44 digits")
	assert.Equal(t, "", Sanitize("abc"))
	assert.Len(t, Sanitize(strings.Repeat("9", 100)), Length)
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "123456", Digits("12.34-56"))
	assert.Equal(t, validKey+"999", Digits(validKey+"999"), "not capped")
	assert.False(t, IsValid(Digits(validKey+"9")))
	assert.Equal(t, "", Digits("abc"))
}

func TestClean(t *testing.T) {
	assert.Equal(t, "12ab", Clean(" 1 2\ta\nb "))
}
