package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Payload snapshots are opaque JSON captured at discovery time and never
// refreshed. The accessors below read the handful of fields the pipelines
// depend on, one accessor per content type, failing with MissingFieldError
// instead of silently yielding zero values.

type spotPayload struct {
	ID              string `json:"_id"`
	CreatedAt       string `json:"createdAt"`
	SpotWithAddress struct {
		Name                string `json:"name"`
		SatelliteAttachment string `json:"satelliteAttachment"`
	} `json:"spotWithAddress"`
}

type eventPayload struct {
	ID    string `json:"_id"`
	Event struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	} `json:"event"`
	CreatedAt   string `json:"createdAt"`
	Attachments []struct {
		ID string `json:"_id"`
	} `json:"attachments"`
}

type reviewPayload struct {
	CreatedAt string `json:"createdAt"`
	UserID    string `json:"user_id"`
}

type sessionPayload struct {
	Sessions []struct {
		CreatedAt string `json:"createdAt"`
	} `json:"sessions"`
}

type skaterPayload struct {
	LastOnline string `json:"lastOnline"`
}

// ItemCreatedAt extracts the item's own creation timestamp from its payload
// snapshot. For events this is the start date (falling back to the record's
// createdAt); for skaters it is the last-online time, the closest thing the
// source exposes to "appeared here".
func ItemCreatedAt(item *DiscoveredItem) (time.Time, error) {
	switch item.ContentType {
	case ContentSpot:
		var p spotPayload
		if err := json.Unmarshal(item.Payload, &p); err != nil {
			return time.Time{}, fmt.Errorf("decode spot payload: %w", err)
		}
		return parsePayloadTime(ContentSpot, "createdAt", p.CreatedAt)
	case ContentEvent:
		var p eventPayload
		if err := json.Unmarshal(item.Payload, &p); err != nil {
			return time.Time{}, fmt.Errorf("decode event payload: %w", err)
		}
		if p.Event.StartDate != "" {
			return parsePayloadTime(ContentEvent, "event.startDate", p.Event.StartDate)
		}
		return parsePayloadTime(ContentEvent, "createdAt", p.CreatedAt)
	case ContentReview:
		var p reviewPayload
		if err := json.Unmarshal(item.Payload, &p); err != nil {
			return time.Time{}, fmt.Errorf("decode review payload: %w", err)
		}
		return parsePayloadTime(ContentReview, "createdAt", p.CreatedAt)
	case ContentSession:
		var p sessionPayload
		if err := json.Unmarshal(item.Payload, &p); err != nil {
			return time.Time{}, fmt.Errorf("decode session payload: %w", err)
		}
		if len(p.Sessions) == 0 {
			return time.Time{}, &MissingFieldError{ContentType: ContentSession, Field: "sessions"}
		}
		return parsePayloadTime(ContentSession, "sessions[0].createdAt", p.Sessions[0].CreatedAt)
	case ContentSkater:
		var p skaterPayload
		if err := json.Unmarshal(item.Payload, &p); err != nil {
			return time.Time{}, fmt.Errorf("decode skater payload: %w", err)
		}
		return parsePayloadTime(ContentSkater, "lastOnline", p.LastOnline)
	default:
		return time.Time{}, &MissingFieldError{ContentType: item.ContentType, Field: "createdAt"}
	}
}

// EventImageRef returns the event's first attachment id together with the
// event id, for building a proxied image URL.
func EventImageRef(payload json.RawMessage) (attachmentID, eventID string, err error) {
	var p eventPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return "", "", fmt.Errorf("decode event payload: %w", err)
	}
	if len(p.Attachments) == 0 || p.Attachments[0].ID == "" {
		return "", "", &MissingFieldError{ContentType: ContentEvent, Field: "attachments[0]._id"}
	}
	return p.Attachments[0].ID, p.ID, nil
}

// SpotSatelliteRef returns the spot's satellite attachment id.
func SpotSatelliteRef(payload json.RawMessage) (string, error) {
	var p spotPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return "", fmt.Errorf("decode spot payload: %w", err)
	}
	if p.SpotWithAddress.SatelliteAttachment == "" {
		return "", &MissingFieldError{ContentType: ContentSpot, Field: "spotWithAddress.satelliteAttachment"}
	}
	return p.SpotWithAddress.SatelliteAttachment, nil
}

// ReviewerRef returns the review author's user id, for the avatar fallback.
func ReviewerRef(payload json.RawMessage) (string, error) {
	var p reviewPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return "", fmt.Errorf("decode review payload: %w", err)
	}
	if p.UserID == "" {
		return "", &MissingFieldError{ContentType: ContentReview, Field: "user_id"}
	}
	return p.UserID, nil
}

func parsePayloadTime(ct ContentType, field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, &MissingFieldError{ContentType: ct, Field: field}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s %s: %w", ct, field, err)
	}
	return t, nil
}
