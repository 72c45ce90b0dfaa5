package models

type SearchMetadata struct {
	TotalResults int   `json:"totalResults"`
	SearchTimeMs int64 `json:"searchTimeMs"`
	CacheHit     bool  `json:"cacheHit"`
}

type SearchResponse struct {
	Itineraries []Itinerary    `json:"itineraries"`
	Metadata    SearchMetadata `json:"metadata"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
