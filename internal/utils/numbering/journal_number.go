package numbering

import (
	"fmt"
	"regexp"
	"strconv"
)

// Journal numbers look like JRN-2025-11-0001: unique per church-month and
// strictly increasing within it. The sequence is issued by an atomic counter;
// this package only deals with the textual form.

const prefix = "JRN"

var numberPattern = regexp.MustCompile(`^JRN-(\d{4})-(\d{2})-(\d{4,})$`)

// Format renders a journal number for the given month and sequence.
func Format(year int, month int, sequence int64) string {
	return fmt.Sprintf("%s-%d-%02d-%04d", prefix, year, month, sequence)
}

// Parse splits a journal number back into its components.
func Parse(number string) (year int, month int, sequence int64, err error) {
	m := numberPattern.FindStringSubmatch(number)
	if m == nil {
		return 0, 0, 0, fmt.Errorf("malformed journal number %q", number)
	}
	year, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	sequence, _ = strconv.ParseInt(m[3], 10, 64)
	if month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("journal number %q has month out of range", number)
	}
	return year, month, sequence, nil
}
