package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/luach/luach/internal/rest"
	"github.com/luach/luach/pkg/event"
	log "github.com/sirupsen/logrus"
)

// Client talks to the events API. The zero value is not usable; construct it
// with NewClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the API rooted at baseURL, e.g.
// "http://localhost:5000/api".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// ListEvents fetches every stored event. Ordering is not guaranteed.
func (c *Client) ListEvents(ctx context.Context) ([]event.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/events", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var dtos []event.EventDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}

	events := make([]event.Event, 0, len(dtos))
	for _, dto := range dtos {
		events = append(events, dtoToEvent(dto))
	}
	log.Debugf("fetched %d events", len(events))
	return events, nil
}

// CreateEvent stores a new event and returns the row as persisted by the
// server, including the assigned id.
func (c *Client) CreateEvent(ctx context.Context, title, start, end string) (*event.Event, error) {
	body, err := json.Marshal(event.CreateEventRequest{Title: title, Start: start, End: end})
	if err != nil {
		return nil, fmt.Errorf("failed to encode event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/events", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var dto event.EventDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("failed to decode created event: %w", err)
	}
	created := dtoToEvent(dto)
	return &created, nil
}

// DeleteEvent deletes the event with the given id. The server reports success
// even for ids that do not exist.
func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/events/%d", c.baseURL, id), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return nil
}

func apiError(resp *http.Response) error {
	var errResponse rest.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResponse); err == nil && errResponse.Error != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, errResponse.Error)
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}

func dtoToEvent(dto event.EventDTO) event.Event {
	return event.Event{
		ID:    dto.ID,
		Title: dto.Title,
		Start: dto.Start,
		End:   dto.End,
	}
}
