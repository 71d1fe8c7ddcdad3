package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseUint64Slice parses a list of decimal strings, skipping blanks.
func ParseUint64Slice(values []string) ([]uint64, error) {
	out := make([]uint64, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// FormatHoursHumanReadable renders a fractional hour count as "3h 20m".
func FormatHoursHumanReadable(hours float64) string {
	if hours <= 0 {
		return "0h"
	}
	h := int(hours)
	m := int((hours - float64(h)) * 60)
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
