package week

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is the fallback stats window used when none is provided.
	DefaultWindow = "1w"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	windowUnits   = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseWindow parses a day-granular window such as "1w", "10d", or "2w3d" and
// returns the total day count. Habit statuses are recorded per calendar day, so
// units below a day are rejected. Empty input means the default of one week.
func ParseWindow(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	remaining := strings.ToLower(trimmed)
	total := 0
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		days, ok := windowUnits[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += value * days
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, fmt.Errorf("window must cover at least one day")
	}
	return total, nil
}

// WindowEnding returns the inclusive date range of the given length that ends
// on the given day.
func WindowEnding(end time.Time, days int) (time.Time, time.Time) {
	last := Truncate(end)
	return last.AddDate(0, 0, -(days - 1)), last
}
