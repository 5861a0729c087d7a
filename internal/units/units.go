package units

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultMinSizeMB is the scan threshold applied when the caller gives
// none, or gives one that cannot be parsed.
const DefaultMinSizeMB = 100

var sizeToken = regexp.MustCompile(`^(\d+\.?\d*)([KMGT]?)$`)

var multipliers = map[string]int64{
	"":  1,
	"K": 1 << 10,
	"M": 1 << 20,
	"G": 1 << 30,
	"T": 1 << 40,
}

// Parse converts a human-readable size token ("120M", "1.5G", "42") to a
// byte count using binary multiples. Malformed tokens return 0; callers
// must treat a zero result as "unparsed", not as an empty file.
func Parse(token string) int64 {
	token = strings.ToUpper(strings.TrimSpace(token))
	if token == "" {
		return 0
	}

	m := sizeToken.FindStringSubmatch(token)
	if m == nil {
		return 0
	}

	number, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}

	return int64(number * float64(multipliers[m[2]]))
}

// Format renders a byte count for display (binary multiples, e.g. "200 MiB").
func Format(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.IBytes(uint64(bytes))
}

// ParseThresholdMB parses a minimum-size argument given in megabytes.
// Invalid or non-positive input yields the default and ok=false so the
// caller can warn instead of failing.
func ParseThresholdMB(arg string) (mb int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n <= 0 {
		return DefaultMinSizeMB, false
	}
	return n, true
}
