package tools

import (
	"fmt"
	"strconv"
	"strings"
)

// ReadString reads a string argument. Missing or non-string values are an
// error only when the argument is required.
func ReadString(args map[string]any, key string, required bool) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("parameter %q is required", key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("parameter %q must be a string", key)
	}
	return strings.TrimSpace(s), nil
}

// ReadInt reads an integer argument, returning defaultVal when absent.
// Numeric strings are accepted since some MCP clients send them.
func ReadInt(args map[string]any, key string, defaultVal int) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return defaultVal, nil
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("parameter %q must be an integer", key)
		}
		return parsed, nil
	}
	return 0, fmt.Errorf("parameter %q must be an integer", key)
}

// ReadFloat reads an optional float argument, returning nil when absent so
// callers can distinguish "not provided" from zero.
func ReadFloat(args map[string]any, key string) (*float64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case float64:
		return &n, nil
	case int:
		f := float64(n)
		return &f, nil
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %q must be a number", key)
		}
		return &parsed, nil
	}
	return nil, fmt.Errorf("parameter %q must be a number", key)
}

// ReadBool reads a boolean argument, returning defaultVal when absent or
// unrecognized.
func ReadBool(args map[string]any, key string, defaultVal bool) bool {
	v, ok := args[key]
	if !ok {
		return defaultVal
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		lower := strings.ToLower(strings.TrimSpace(b))
		return lower == "true" || lower == "1" || lower == "yes"
	case float64:
		return b != 0
	}
	return defaultVal
}
