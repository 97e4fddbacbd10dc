package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"city_pulse/internal/config"
	"city_pulse/internal/domain"
)

// Client talks to the Brevo contacts API. Attribute search is a paged
// scan over all contacts because the API has no server-side attribute
// filter.
type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.BrevoConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		pageSize:   cfg.PageSize,
		httpClient: &http.Client{},
		logger:     logger.With("component", "brevo"),
	}
}

type contactsPage struct {
	Contacts []struct {
		ID         int64          `json:"id"`
		Email      string         `json:"email"`
		Attributes map[string]any `json:"attributes"`
	} `json:"contacts"`
	Count int64 `json:"count"`
}

type listsPage struct {
	Lists []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"lists"`
	Count int64 `json:"count"`
}

func (c *Client) FindContactsByAttribute(ctx context.Context, attribute, value string) ([]domain.Contact, error) {
	var matches []domain.Contact
	offset := 0
	for {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(c.pageSize))
		q.Set("offset", strconv.Itoa(offset))

		var page contactsPage
		if err := c.do(ctx, http.MethodGet, "/contacts?"+q.Encode(), nil, &page); err != nil {
			return nil, err
		}
		for _, raw := range page.Contacts {
			contact := domain.Contact{ID: raw.ID, Email: raw.Email, Attributes: raw.Attributes}
			if strings.EqualFold(contact.Attribute(attribute), value) {
				matches = append(matches, contact)
			}
		}
		offset += len(page.Contacts)
		if len(page.Contacts) < c.pageSize || int64(offset) >= page.Count {
			return matches, nil
		}
	}
}

func (c *Client) AddContactToList(ctx context.Context, contactID, listID int64) error {
	body := map[string][]int64{"ids": {contactID}}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/contacts/lists/%d/contacts/add", listID), body, nil)
	if err != nil {
		// Adding a contact that is already on the list is not a failure.
		if strings.Contains(err.Error(), "already") {
			return nil
		}
		return err
	}
	return nil
}

func (c *Client) Lists(ctx context.Context) ([]domain.MailingList, error) {
	var all []domain.MailingList
	offset := 0
	for {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(c.pageSize))
		q.Set("offset", strconv.Itoa(offset))

		var page listsPage
		if err := c.do(ctx, http.MethodGet, "/contacts/lists?"+q.Encode(), nil, &page); err != nil {
			return nil, err
		}
		for _, l := range page.Lists {
			all = append(all, domain.MailingList{ID: l.ID, Name: l.Name})
		}
		offset += len(page.Lists)
		if len(page.Lists) < c.pageSize || int64(offset) >= page.Count {
			return all, nil
		}
	}
}

func (c *Client) CreateList(ctx context.Context, name string, folderID int64) (int64, error) {
	body := map[string]any{"name": name, "folderId": folderID}
	var created struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/contacts/lists", body, &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal brevo request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("build brevo request: %w", err)
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call brevo %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("brevo %s returned status %d: %s", endpoint, resp.StatusCode, msg)
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode brevo response: %w", err)
		}
	}
	return nil
}
