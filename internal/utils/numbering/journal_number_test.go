package numbering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "JRN-2025-11-0001", Format(2025, 11, 1))
	assert.Equal(t, "JRN-2026-01-0042", Format(2026, 1, 42))
	assert.Equal(t, "JRN-2026-08-9999", Format(2026, 8, 9999))
}

func TestFormatSequenceBeyondFourDigits(t *testing.T) {
	// The sequence widens past 9999 instead of wrapping.
	assert.Equal(t, "JRN-2026-08-10000", Format(2026, 8, 10000))
}

func TestParseRoundTrip(t *testing.T) {
	year, month, seq, err := Parse(Format(2026, 7, 312))

	require.NoError(t, err)
	assert.Equal(t, 2026, year)
	assert.Equal(t, 7, month)
	assert.Equal(t, int64(312), seq)
}

func TestParseRejectsMalformedNumbers(t *testing.T) {
	malformed := []string{
		"",
		"JRN-2026-08",
		"JRN-2026-8-0001",
		"JRN-2026-13-0001",
		"INV-2026-08-0001",
		"JRN-2026-08-001",
		"jrn-2026-08-0001",
	}
	for _, number := range malformed {
		_, _, _, err := Parse(number)
		assert.Error(t, err, "expected %q to be rejected", number)
	}
}
