package model

import (
	"strconv"
	"strings"
)

// ParseClock parses a displayed match clock into seconds.
// "M:SS" parses as M*60+SS and a bare integer string parses as that many
// seconds. Anything else, including the empty string, reports ok=false;
// an unreadable clock is an absent clock, never an error.
func ParseClock(clock string) (seconds int, ok bool) {
	if clock == "" {
		return 0, false
	}
	parts := strings.Split(clock, ":")
	switch len(parts) {
	case 1:
		n, err := strconv.Atoi(clock)
		if err != nil {
			return 0, false
		}
		return n, true
	case 2:
		m, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, false
		}
		s, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, false
		}
		return m*60 + s, true
	default:
		return 0, false
	}
}
