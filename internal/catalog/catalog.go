// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog queries the Metropolitan Museum of Art collection API.
// It exposes two read-only operations: a search returning object
// identifiers and a fetch returning the full object record.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/gallery/internal/httputil"
	"github.com/pdiddy/gallery/pkg/types"
)

// DefaultBaseURL is the public collection API root.
const DefaultBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

// europeanPaintings is the Met department holding the highlighted paintings.
const europeanPaintings = 11

var (
	// ErrNetwork wraps transport failures and non-success responses.
	ErrNetwork = errors.New("catalog request failed")

	// ErrEmptyResult is returned when a search yields no identifiers.
	ErrEmptyResult = errors.New("catalog search returned no objects")
)

// Criteria holds the search filter parameters.
type Criteria struct {
	DepartmentID int
	HasImages    bool
	IsHighlight  bool
	Query        string
}

// DefaultCriteria returns the fixed acquisition filter: highlighted
// European paintings that have images.
func DefaultCriteria() Criteria {
	return Criteria{
		DepartmentID: europeanPaintings,
		HasImages:    true,
		IsHighlight:  true,
		Query:        "painting",
	}
}

// values encodes the criteria as query parameters. The API requires q.
func (c Criteria) values() url.Values {
	v := url.Values{}
	if c.IsHighlight {
		v.Set("isHighlight", "true")
	}
	if c.DepartmentID > 0 {
		v.Set("departmentId", strconv.Itoa(c.DepartmentID))
	}
	if c.HasImages {
		v.Set("hasImages", "true")
	}
	q := c.Query
	if q == "" {
		q = "*"
	}
	v.Set("q", q)
	return v
}

// Tag is a subject keyword attached to an object.
type Tag struct {
	Term string `json:"term"`
}

// Object is a raw catalog record. Any field may be absent; ObjectBeginDate
// is a pointer so that a missing date is distinguishable from year 0.
type Object struct {
	ObjectID          int    `json:"objectID"`
	PrimaryImage      string `json:"primaryImage"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	ObjectDate        string `json:"objectDate"`
	ObjectBeginDate   *int   `json:"objectBeginDate"`
	Medium            string `json:"medium"`
	Tags              []Tag  `json:"tags"`
}

// Complete reports whether the record carries the fields a painting needs:
// an image, a title, and an artist. Whitespace-only values count as absent.
func (o *Object) Complete() bool {
	return o != nil && present(o.PrimaryImage) && present(o.Title) && present(o.ArtistDisplayName)
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

type searchResponse struct {
	Total     int   `json:"total"`
	ObjectIDs []int `json:"objectIDs"`
}

// Client queries the collection API.
type Client struct {
	HTTP       *http.Client
	BaseURL    string
	UserAgent  string
	MaxRetries int
}

// NewClient builds a client from configuration, applying defaults.
func NewClient(cfg types.CatalogConfig) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		HTTP:       &http.Client{Timeout: cfg.Timeout},
		BaseURL:    base,
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.MaxRetries,
	}
}

// Search returns the identifiers of objects matching criteria.
func (c *Client) Search(ctx context.Context, criteria Criteria) ([]int, error) {
	reqURL := c.BaseURL + "/search?" + criteria.values().Encode()

	var sr searchResponse
	if err := c.getJSON(ctx, reqURL, &sr); err != nil {
		return nil, err
	}
	if len(sr.ObjectIDs) == 0 {
		return nil, ErrEmptyResult
	}
	return sr.ObjectIDs, nil
}

// FetchByID returns the full record for one object identifier.
func (c *Client) FetchByID(ctx context.Context, id int) (*Object, error) {
	reqURL := c.BaseURL + "/objects/" + strconv.Itoa(id)

	var obj Object
	if err := c.getJSON(ctx, reqURL, &obj); err != nil {
		return nil, err
	}
	if obj.ObjectID == 0 {
		obj.ObjectID = id
	}
	return &obj, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, c.MaxRetries)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: HTTP %d from %s", ErrNetwork, resp.StatusCode, reqURL)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: parsing response: %v", ErrNetwork, err)
	}
	return nil
}
