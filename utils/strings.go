package utils

import (
	"encoding/json"
	"strings"
)

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func ToJSONString(v interface{}) string {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(jsonData)
}

// Truncate shortens s to at most size runes, marking the cut with "...".
func Truncate(s string, size int) string {
	runes := []rune(s)
	if len(runes) <= size {
		return s
	}
	if size <= 3 {
		return string(runes[:size])
	}
	return string(runes[:size-3]) + "..."
}
