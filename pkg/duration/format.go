package duration

import "strconv"

const msPerMinute = 60_000

// Format renders milliseconds as "1h 30m", "2h" or "45m", rounding to the
// nearest minute with halves rounded up.
func Format(ms int64) string {
	if ms < 0 {
		return "-" + Format(-ms)
	}

	minutes := (ms + msPerMinute/2) / msPerMinute
	h, m := minutes/60, minutes%60

	switch {
	case h == 0:
		return strconv.FormatInt(m, 10) + "m"
	case m == 0:
		return strconv.FormatInt(h, 10) + "h"
	default:
		return strconv.FormatInt(h, 10) + "h " + strconv.FormatInt(m, 10) + "m"
	}
}
