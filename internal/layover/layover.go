package layover

import "time"

const (
	MaxConnection         = 6 * time.Hour
	MinDomesticConnection = 45 * time.Minute
	MinIntlConnection     = 90 * time.Minute
)

// IsDomestic reports whether a connection stays within one country. An
// unknown country on either side makes it international.
func IsDomestic(arrivingCountry, departingCountry string) bool {
	return arrivingCountry != "" && arrivingCountry == departingCountry
}

func DurationMs(arrivalMs, departureMs int64) int64 {
	return departureMs - arrivalMs
}

// IsValid checks a connection window between an arrival and the next
// departure at the same airport. Both bounds are inclusive.
func IsValid(arrivalMs, departureMs int64, arrivingCountry, departingCountry string) bool {
	d := DurationMs(arrivalMs, departureMs)
	if d < 0 || d > MaxConnection.Milliseconds() {
		return false
	}

	minGap := MinIntlConnection
	if IsDomestic(arrivingCountry, departingCountry) {
		minGap = MinDomesticConnection
	}
	return d >= minGap.Milliseconds()
}
