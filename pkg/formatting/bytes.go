// Package formatting converts byte sizes between configuration strings such
// as "25MB" and byte counts.
package formatting

import (
	"fmt"
	"strconv"
	"strings"
)

const unit = 1024

var suffixes = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// ParseBytes parses a size such as "25MB", "512 kb" or "1048576" into bytes.
// Units are base-1024 and case-insensitive; a bare number is bytes.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size")
	}

	split := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})

	number, suffix := s, ""
	if split >= 0 {
		number, suffix = s[:split], strings.ToUpper(strings.TrimSpace(s[split:]))
	}
	if number == "" {
		return 0, fmt.Errorf("invalid byte size: %q", s)
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size %q: %w", s, err)
	}

	if suffix == "" {
		return int64(value), nil
	}

	multiplier := float64(1)
	for _, known := range suffixes {
		if known == suffix {
			return int64(value * multiplier), nil
		}
		multiplier *= unit
	}

	return 0, fmt.Errorf("unknown byte size unit %q", suffix)
}

// FormatBytes renders n with the largest unit that keeps the value at or
// above one, e.g. 26214400 -> "25 MB".
func FormatBytes(n int64) string {
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	value := float64(n)
	i := 0
	for value >= unit && i < len(suffixes)-1 {
		value /= unit
		i++
	}

	return strconv.FormatFloat(value, 'f', -1, 64) + " " + suffixes[i]
}
