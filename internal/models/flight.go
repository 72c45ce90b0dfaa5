package models

// Airport is static reference data loaded once at startup.
type Airport struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

// Flight times are local wall-clock timestamps without an offset: the
// departure is read in the origin airport's zone and the arrival in the
// destination airport's zone.
type Flight struct {
	FlightNumber  string  `json:"flightNumber"`
	Airline       string  `json:"airline"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Price         float64 `json:"price"`
	Aircraft      string  `json:"aircraft"`
}

type Segment struct {
	Flight
	DurationMs        int64  `json:"durationMs"`
	DurationFormatted string `json:"durationFormatted"`
}

type Layover struct {
	Airport           string `json:"airport"`
	DurationMs        int64  `json:"durationMs"`
	DurationFormatted string `json:"durationFormatted"`
}

type Itinerary struct {
	Segments               []Segment `json:"segments"`
	Layovers               []Layover `json:"layovers"`
	TotalDurationMs        int64     `json:"totalDurationMs"`
	TotalDurationFormatted string    `json:"totalDurationFormatted"`
	TotalPrice             float64   `json:"totalPrice"`
	TotalPriceFormatted    string    `json:"totalPriceFormatted"`
}

func (it Itinerary) Stops() int {
	if len(it.Segments) == 0 {
		return 0
	}
	return len(it.Segments) - 1
}

// FlightNumbers joins segment flight numbers with '/', e.g. "SP2/SP3".
func (it Itinerary) FlightNumbers() string {
	var out []byte
	for i, s := range it.Segments {
		if i > 0 {
			out = append(out, '/')
		}
		out = append(out, s.FlightNumber...)
	}
	return string(out)
}
