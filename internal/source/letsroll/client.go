package letsroll

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"city_pulse/internal/config"
	"city_pulse/internal/domain"
	"city_pulse/internal/geo"
)

// Client fetches skate content from the network API. All list endpoints
// require a bearer token; an expired token is refreshed once per request.
type Client struct {
	baseURL    string
	fetchLimit int
	httpClient *http.Client
	auth       *authenticator
	logger     *slog.Logger
}

func NewClient(cfg config.APIConfig, logger *slog.Logger) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	return &Client{
		baseURL:    cfg.BaseURL,
		fetchLimit: cfg.FetchLimit,
		httpClient: httpClient,
		auth: &authenticator{
			baseURL:  cfg.BaseURL,
			email:    cfg.Email,
			password: cfg.Password,
			client:   httpClient,
		},
		logger: logger.With("source", "letsroll"),
	}
}

func (c *Client) FetchSpots(ctx context.Context, box geo.Box) ([]domain.Candidate, error) {
	q := boxQuery(box)
	q.Set("limit", strconv.Itoa(c.fetchLimit))

	body, err := c.get(ctx, "/spots/v2/inBox", q)
	if err != nil {
		return nil, err
	}

	// The spots endpoint returns a bare array.
	var spots []json.RawMessage
	if err := json.Unmarshal(body, &spots); err != nil {
		return nil, &domain.FetchError{Endpoint: "/spots/v2/inBox", Err: err}
	}

	candidates := make([]domain.Candidate, 0, len(spots))
	for _, raw := range spots {
		var env spotEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.logger.Warn("skipping malformed spot", "error", err)
			continue
		}
		createdAt, err := parseTime(env.CreatedAt)
		if err != nil || env.ID == "" {
			c.logger.Warn("skipping spot without id or creation date", "id", env.ID)
			continue
		}
		candidates = append(candidates, domain.Candidate{
			ContentType: domain.ContentSpot,
			ExternalID:  env.ID,
			CreatedAt:   createdAt,
			Payload:     raw,
		})
	}
	return candidates, nil
}

func (c *Client) FetchEvents(ctx context.Context, box geo.Box) ([]domain.Candidate, error) {
	q := boxQuery(box)
	q.Set("limit", strconv.Itoa(c.fetchLimit))

	body, err := c.get(ctx, "/roll-session/event/inBox", q)
	if err != nil {
		return nil, err
	}

	var list eventsResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, &domain.FetchError{Endpoint: "/roll-session/event/inBox", Err: err}
	}

	candidates := make([]domain.Candidate, 0, len(list.RollEvents))
	for _, raw := range list.RollEvents {
		var env eventEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.logger.Warn("skipping malformed event", "error", err)
			continue
		}
		// Events order by start date so previews land in the right period.
		stamp := env.Event.StartDate
		if stamp == "" {
			stamp = env.CreatedAt
		}
		createdAt, err := parseTime(stamp)
		if err != nil || env.ID == "" {
			c.logger.Warn("skipping event without id or date", "id", env.ID)
			continue
		}
		candidates = append(candidates, domain.Candidate{
			ContentType: domain.ContentEvent,
			ExternalID:  env.ID,
			CreatedAt:   createdAt,
			Payload:     raw,
		})
	}
	return candidates, nil
}

func (c *Client) FetchSpotReviews(ctx context.Context, spotID string) ([]domain.Candidate, error) {
	endpoint := "/spots/" + spotID + "/ratings-opinions"
	q := url.Values{}
	q.Set("limit", strconv.Itoa(c.fetchLimit))

	body, err := c.get(ctx, endpoint, q)
	if err != nil {
		return nil, err
	}

	var list reviewsResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, &domain.FetchError{Endpoint: endpoint, Err: err}
	}

	candidates := make([]domain.Candidate, 0, len(list.RatingsAndOpinions))
	for _, raw := range list.RatingsAndOpinions {
		var env reviewEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.logger.Warn("skipping malformed review", "spot_id", spotID, "error", err)
			continue
		}
		createdAt, err := parseTime(env.CreatedAt)
		if err != nil || env.ID == "" {
			continue
		}
		candidates = append(candidates, domain.Candidate{
			ContentType: domain.ContentReview,
			ExternalID:  env.ID,
			CreatedAt:   createdAt,
			Payload:     raw,
		})
	}
	return candidates, nil
}

func (c *Client) FetchSpotSessions(ctx context.Context, spotID string) ([]domain.SessionSummary, error) {
	endpoint := "/spots/" + spotID + "/sessions"
	q := url.Values{}
	q.Set("limit", strconv.Itoa(c.fetchLimit))

	body, err := c.get(ctx, endpoint, q)
	if err != nil {
		return nil, err
	}

	var env sessionListEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &domain.FetchError{Endpoint: endpoint, Err: err}
	}

	summaries := make([]domain.SessionSummary, 0, len(env.Sessions))
	for _, s := range env.Sessions {
		if s.ID == "" {
			continue
		}
		summaries = append(summaries, domain.SessionSummary{ID: s.ID, Type: s.Type})
	}
	return summaries, nil
}

func (c *Client) FetchSessionDetail(ctx context.Context, sessionID string) (domain.Candidate, error) {
	endpoint := "/roll-session/" + sessionID
	body, err := c.get(ctx, endpoint, nil)
	if err != nil {
		return domain.Candidate{}, err
	}

	var env sessionDetailEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return domain.Candidate{}, &domain.FetchError{Endpoint: endpoint, Err: err}
	}
	if len(env.Sessions) == 0 {
		return domain.Candidate{}, &domain.FetchError{Endpoint: endpoint, Err: fmt.Errorf("session %s has no entries", sessionID)}
	}

	createdAt, err := parseTime(env.Sessions[0].CreatedAt)
	if err != nil {
		return domain.Candidate{}, &domain.FetchError{Endpoint: endpoint, Err: err}
	}

	return domain.Candidate{
		ContentType: domain.ContentSession,
		ExternalID:  sessionID,
		CreatedAt:   createdAt,
		Payload:     body,
	}, nil
}

// FetchNearbySkaters returns recorded activities and the matching user
// profiles in one call. A user can appear in many activities; distance
// filtering is the caller's concern.
func (c *Client) FetchNearbySkaters(ctx context.Context, lat, lng float64, sinceDays int) (domain.NearbySkaters, error) {
	q := url.Values{}
	q.Set("lat", formatCoord(lat))
	q.Set("lng", formatCoord(lng))
	q.Set("minDistance", "0")
	q.Set("maxAgeInDays", strconv.Itoa(sinceDays))
	q.Set("limit", strconv.Itoa(c.fetchLimit))

	body, err := c.get(ctx, "/nearby-activities/v2/skaters", q)
	if err != nil {
		return domain.NearbySkaters{}, err
	}

	var resp skatersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.NearbySkaters{}, &domain.FetchError{Endpoint: "/nearby-activities/v2/skaters", Err: err}
	}

	out := domain.NearbySkaters{}
	for _, a := range resp.Activities {
		if a.UserID == "" {
			continue
		}
		out.Activities = append(out.Activities, domain.NearbyActivity{
			UserID:         a.UserID,
			DistanceMeters: a.Distance,
		})
	}

	for _, raw := range resp.UserProfiles {
		var env profileEnvelope
		if err := json.Unmarshal(raw, &env); err != nil || env.UserID == "" {
			c.logger.Warn("skipping malformed skater profile", "error", err)
			continue
		}
		var lastOnline time.Time
		if env.LastOnline != "" {
			lastOnline, _ = parseTime(env.LastOnline)
		}
		out.Profiles = append(out.Profiles, domain.SkaterProfile{
			UserID:     env.UserID,
			SkateName:  env.SkateName,
			LastOnline: lastOnline,
			Payload:    raw,
		})
	}
	return out, nil
}

// get performs an authenticated GET. A 401 invalidates the cached token
// and the request is retried once with a fresh login.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	body, status, err := c.do(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		c.logger.Info("token rejected, re-authenticating", "endpoint", endpoint)
		body, status, err = c.do(ctx, endpoint, query)
		if err != nil {
			return nil, err
		}
		if status == http.StatusUnauthorized {
			return nil, &domain.AuthError{Err: fmt.Errorf("%s rejected fresh token", endpoint)}
		}
	}
	if status != http.StatusOK {
		return nil, &domain.FetchError{Endpoint: endpoint, Err: fmt.Errorf("unexpected status %d", status)}
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, endpoint string, query url.Values) ([]byte, int, error) {
	token, err := c.auth.Token(ctx)
	if err != nil {
		return nil, 0, err
	}

	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, &domain.FetchError{Endpoint: endpoint, Err: err}
	}
	// The API expects the bare access token, no scheme prefix.
	req.Header.Set("Authorization", token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &domain.FetchError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.auth.Invalidate(token)
		return nil, resp.StatusCode, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &domain.FetchError{Endpoint: endpoint, Err: err}
	}
	return body, resp.StatusCode, nil
}

func boxQuery(box geo.Box) url.Values {
	q := url.Values{}
	q.Set("ne", formatCoord(box.NE.Lat)+","+formatCoord(box.NE.Lng))
	q.Set("sw", formatCoord(box.SW.Lat)+","+formatCoord(box.SW.Lng))
	return q
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	return time.Parse(time.RFC3339, s)
}
