package letsroll

import "encoding/json"

// Raw API shapes, limited to the fields the pipelines actually read. Item
// payloads are kept as raw JSON so the ledger stores exactly what the API
// returned.

type spotEnvelope struct {
	ID        string `json:"_id"`
	CreatedAt string `json:"createdAt"`
}

type eventsResponse struct {
	RollEvents []json.RawMessage `json:"rollEvents"`
}

type eventEnvelope struct {
	ID    string `json:"_id"`
	Event struct {
		StartDate string `json:"startDate"`
	} `json:"event"`
	CreatedAt string `json:"createdAt"`
}

type reviewsResponse struct {
	RatingsAndOpinions []json.RawMessage `json:"ratingsAndOpinions"`
}

type reviewEnvelope struct {
	ID        string `json:"_id"`
	CreatedAt string `json:"createdAt"`
}

type sessionListEnvelope struct {
	Sessions []struct {
		ID   string `json:"_id"`
		Type string `json:"type"`
	} `json:"sessions"`
}

type sessionDetailEnvelope struct {
	Sessions []struct {
		ID        string `json:"_id"`
		CreatedAt string `json:"createdAt"`
	} `json:"sessions"`
}

type skatersResponse struct {
	Activities []struct {
		UserID   string  `json:"userId"`
		Distance float64 `json:"distance"`
	} `json:"activities"`
	UserProfiles []json.RawMessage `json:"userProfiles"`
}

type profileEnvelope struct {
	UserID     string `json:"userId"`
	SkateName  string `json:"skateName"`
	LastOnline string `json:"lastOnline"`
}
