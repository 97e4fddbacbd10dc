package brevo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"city_pulse/internal/config"
)

func newTestClient(t *testing.T, handler http.Handler, pageSize int) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.BrevoConfig{
		BaseURL:  server.URL,
		APIKey:   "test-key",
		PageSize: pageSize,
	}, slog.New(slog.DiscardHandler))
}

func TestFindContactsByAttribute_PagesUntilExhausted(t *testing.T) {
	// 3 contacts, page size 2: the match sits on the second page.
	contacts := []map[string]any{
		{"id": 1, "email": "a@example.com", "attributes": map[string]any{"SKATENAME": "flipper"}},
		{"id": 2, "email": "b@example.com", "attributes": map[string]any{"SKATENAME": "carver"}},
		{"id": 3, "email": "c@example.com", "attributes": map[string]any{"SKATENAME": "Grinder"}},
	}

	var requests int
	mux := http.NewServeMux()
	mux.HandleFunc("GET /contacts", func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "test-key", r.Header.Get("api-key"))

		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		end := min(offset+limit, len(contacts))

		json.NewEncoder(w).Encode(map[string]any{
			"contacts": contacts[offset:end],
			"count":    len(contacts),
		})
	})

	client := newTestClient(t, mux, 2)

	matches, err := client.FindContactsByAttribute(context.Background(), "SKATENAME", "grinder")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, int64(3), matches[0].ID)
	assert.Equal(t, "c@example.com", matches[0].Email)
	assert.Equal(t, 2, requests)
}

func TestFindContactsByAttribute_MissingAttributeSkipped(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /contacts", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"contacts": []map[string]any{
				{"id": 1, "email": "a@example.com", "attributes": map[string]any{"FIRSTNAME": "Alex"}},
				{"id": 2, "email": "b@example.com", "attributes": nil},
			},
			"count": 2,
		})
	})

	client := newTestClient(t, mux, 50)

	matches, err := client.FindContactsByAttribute(context.Background(), "SKATENAME", "grinder")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestAddContactToList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /contacts/lists/7/contacts/add", func(w http.ResponseWriter, r *http.Request) {
		var body map[string][]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []int64{42}, body["ids"])
		w.WriteHeader(http.StatusNoContent)
	})

	client := newTestClient(t, mux, 50)

	err := client.AddContactToList(context.Background(), 42, 7)
	assert.NoError(t, err)
}

func TestAddContactToList_AlreadyOnListIsNotAnError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /contacts/lists/7/contacts/add", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"code":"invalid_parameter","message":"Contact already in list"}`)
	})

	client := newTestClient(t, mux, 50)

	err := client.AddContactToList(context.Background(), 42, 7)
	assert.NoError(t, err)
}

func TestAddContactToList_OtherErrorPropagates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /contacts/lists/7/contacts/add", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"code":"document_not_found","message":"List does not exist"}`)
	})

	client := newTestClient(t, mux, 50)

	err := client.AddContactToList(context.Background(), 42, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestCreateList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /contacts/lists", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Berlin", body["name"])
		assert.Equal(t, float64(3), body["folderId"])

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":99}`)
	})

	client := newTestClient(t, mux, 50)

	id, err := client.CreateList(context.Background(), "Berlin", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(99), id)
}

func TestLists_Paged(t *testing.T) {
	lists := []map[string]any{
		{"id": 1, "name": "Berlin"},
		{"id": 2, "name": "Paris"},
		{"id": 3, "name": "Munich"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /contacts/lists", func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		end := min(offset+limit, len(lists))

		json.NewEncoder(w).Encode(map[string]any{
			"lists": lists[offset:end],
			"count": len(lists),
		})
	})

	client := newTestClient(t, mux, 2)

	all, err := client.Lists(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Munich", all[2].Name)
}
