// Package ingestion pulls the breed catalog from The Dog API and loads it
// into the database with derived trait scores.
package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production Dog API endpoint.
const DefaultBaseURL = "https://api.thedogapi.com/v1"

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// APIBreed is one breed record as returned by The Dog API. Measurement
// strings stay unparsed here; the sync step turns them into ranges.
type APIBreed struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	BredFor          *string `json:"bred_for,omitempty"`
	BreedGroup       *string `json:"breed_group,omitempty"`
	LifeSpan         *string `json:"life_span,omitempty"`
	Temperament      *string `json:"temperament,omitempty"`
	Origin           *string `json:"origin,omitempty"`
	ReferenceImageID *string `json:"reference_image_id,omitempty"`
	Image            *struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"image,omitempty"`
	Weight *Measurement `json:"weight,omitempty"`
	Height *Measurement `json:"height,omitempty"`
}

// Measurement carries a range in both unit systems as free text,
// e.g. "23 - 29" for metric kilograms.
type Measurement struct {
	Imperial string `json:"imperial"`
	Metric   string `json:"metric"`
}

// APIError represents a failed Dog API request.
type APIError struct {
	Endpoint   string
	StatusCode int
	Cause      error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dog api error for %s: %v", e.Endpoint, e.Cause)
	}
	return fmt.Sprintf("dog api error for %s: status %d", e.Endpoint, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// DogAPIClient fetches breed data from The Dog API. The API key is optional;
// unauthenticated requests are rate-limited but functional.
type DogAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewDogAPIClient creates a client for the given base URL and API key.
// An empty baseURL selects the production endpoint.
func NewDogAPIClient(baseURL, apiKey string) *DogAPIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &DogAPIClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// GetAllBreeds retrieves the full breed list
func (c *DogAPIClient) GetAllBreeds(ctx context.Context) ([]APIBreed, error) {
	var breeds []APIBreed
	if err := c.getJSON(ctx, "/breeds", &breeds); err != nil {
		return nil, err
	}
	return breeds, nil
}

// GetBreedImageURL resolves a reference image ID to its URL. A lookup
// failure returns an empty URL rather than an error; images are optional.
func (c *DogAPIClient) GetBreedImageURL(ctx context.Context, imageID string) string {
	var image struct {
		URL string `json:"url"`
	}
	if err := c.getJSON(ctx, "/images/"+imageID, &image); err != nil {
		return ""
	}
	return image.URL
}

func (c *DogAPIClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return &APIError{Endpoint: endpoint, Cause: err}
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Endpoint: endpoint, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Endpoint: endpoint, Cause: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{Endpoint: endpoint, Cause: fmt.Errorf("invalid JSON: %w", err)}
	}
	return nil
}
