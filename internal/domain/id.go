package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ID prefixes per collection.
const (
	PrefixSensor = "S"
	PrefixClient = "C"
	PrefixOrder  = "O"
)

// FormatID renders a sequence number as a prefixed, zero-padded id (S001).
func FormatID(prefix string, seq int64) string {
	return fmt.Sprintf("%s%03d", prefix, seq)
}

// ParseIDSeq extracts the sequence number from a prefixed id. It returns
// false for ids that do not follow the prefix+digits form.
func ParseIDSeq(prefix, id string) (int64, bool) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
