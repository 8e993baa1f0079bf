package diffbot

import (
	"math"
	"strconv"
	"strings"
)

// Helpers for poking at loosely typed JSON values. Everything degrades to a
// miss instead of panicking so a weird shape in one field never takes down
// the whole response.

func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return "", false
		}
		return v, true
	case float64:
		return formatNumber(v), true
	case bool:
		return strconv.FormatBool(v), true
	}
	return "", false
}

// formatNumber renders integral JSON numbers without a fractional part, so
// founded years and employee counts print as "1998" rather than "1998.0".
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func intValue(value any) int {
	if f, ok := value.(float64); ok {
		return int(f)
	}
	return 0
}

func stringOr(m map[string]any, key, fallback string) string {
	if text, ok := scalarString(m[key]); ok {
		return text
	}
	return fallback
}

func asMap(value any) (map[string]any, bool) {
	m, ok := value.(map[string]any)
	return m, ok
}

func asList(value any) ([]any, bool) {
	list, ok := value.([]any)
	return list, ok
}
