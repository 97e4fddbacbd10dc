package domain

import (
	"encoding/json"
	"time"
)

// Candidate is a source item before it enters the ledger: external id,
// the item's own creation time, and the raw snapshot to cache.
type Candidate struct {
	ContentType ContentType
	ExternalID  string
	CreatedAt   time.Time
	Payload     json.RawMessage
}

// SessionSummary is the shallow listing entry returned by the per-spot
// sessions endpoint. The canonical session record is a separate detail fetch.
type SessionSummary struct {
	ID   string
	Type string
}

// SkaterProfile is one user profile from the nearby-skaters endpoint.
type SkaterProfile struct {
	UserID     string
	SkateName  string
	LastOnline time.Time
	DistanceKM float64
	Payload    json.RawMessage
}

// NearbyActivity ties a user id to one recorded activity distance. A user can
// appear many times; callers keep the minimum distance per user.
type NearbyActivity struct {
	UserID         string
	DistanceMeters float64
}

// NearbySkaters is the raw two-part response of the nearby-skaters endpoint.
type NearbySkaters struct {
	Activities []NearbyActivity
	Profiles   []SkaterProfile
}
