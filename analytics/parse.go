package analytics

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// UnknownLabel replaces empty or whitespace-only distribution keys so charts
// never render a blank legend entry.
const UnknownLabel = "(Unknown)"

// ParseObjectOrNull resolves an arbitrary cell value to a key/value mapping.
// Values that already are mappings pass through. Strings are trimmed; the empty
// string and the literal "{}" / "[]" forms count as absent, everything else must
// parse as a JSON object. Anything malformed or of the wrong shape yields nil.
// Sheet cells are user-edited, so bad JSON is expected input here, not an error.
func ParseObjectOrNull(value any) map[string]any {
	switch v := value.(type) {
	case map[string]any:
		return v
	case string:
		s := strings.TrimSpace(v)
		if s == "" || s == "{}" || s == "[]" {
			return nil
		}
		var parsed any
		if err := json.Unmarshal([]byte(s), &parsed); err != nil {
			return nil
		}
		obj, ok := parsed.(map[string]any)
		if !ok {
			return nil
		}
		return obj
	default:
		return nil
	}
}

// NormalizeLabel converts a distribution key to a display label. Nil, empty and
// whitespace-only keys collapse to UnknownLabel; everything else is trimmed.
func NormalizeLabel(key any) string {
	if key == nil {
		return UnknownLabel
	}
	s := strings.TrimSpace(fmt.Sprint(key))
	if s == "" {
		return UnknownLabel
	}
	return s
}

// asFloat coerces a cell value to a number. Numeric strings are accepted.
// The second return reports whether the value was numeric at all.
func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return asFloat(float64(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// asInt coerces a cell value to an integer count, truncating fractions toward
// zero.
func asInt(value any) (int, bool) {
	f, ok := asFloat(value)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Date layouts tried in order. The sheet uses day-first ordering, so
// "08-01-2026" is 8 January 2026; ISO dates are accepted as well.
var dateLayouts = []string{
	"02-01-2006",
	"02/01/2006",
	"02.01.2006",
	"2006-01-02",
	"02-01-2006 15:04:05",
	"2006-01-02 15:04:05",
	"2 Jan 2006",
	time.RFC3339,
}

// ParseDate resolves a cell to a calendar date. Any time-of-day component is
// discarded; all comparisons downstream happen at day granularity.
func ParseDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return truncateToDay(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return truncateToDay(t), true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SumNumericColumn sums a numeric column over rows. Missing columns and
// non-numeric cells contribute zero instead of failing. The sum accumulates as
// float and truncates once at the end, so fractional cells keep their combined
// value ("2.5" + 2.5 sums to 5, not 4).
func SumNumericColumn(rows []EventRecord, column string) int {
	total := 0.0
	for _, row := range rows {
		if f, ok := asFloat(row[column]); ok {
			total += f
		}
	}
	return int(total)
}
