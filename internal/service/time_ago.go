package service

import (
	"strconv"
	"time"
)

const day = 24 * time.Hour

// TimeAgo buckets an age into a short label: "now" under a minute, then
// whole minutes, hours or days. Negative ages read as "now".
func TimeAgo(age time.Duration) string {
	switch {
	case age < time.Minute:
		return "now"
	case age < time.Hour:
		return plural(int(age/time.Minute), "min")
	case age < day:
		return plural(int(age/time.Hour), "hour")
	default:
		return plural(int(age/day), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
