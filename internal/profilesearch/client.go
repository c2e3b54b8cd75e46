// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profilesearch finds LinkedIn profiles through the Google Custom
// Search JSON API. A query is a list of keywords restricted to
// linkedin.com/in; each hit is mapped to a types.Profile.
//
// Client.Search and Client.SearchByCategories never fail: transport,
// status, and decoding errors are logged and the caller gets an empty
// result set. Client.Fetch exposes the same request with explicit errors.
package profilesearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/profile-search/internal/httputil"
	"github.com/pdiddy/profile-search/pkg/logger"
	"github.com/pdiddy/profile-search/pkg/types"
)

// DefaultEndpoint is the Google Custom Search JSON API endpoint.
const DefaultEndpoint = "https://www.googleapis.com/customsearch/v1"

// SiteFilter restricts results to public LinkedIn profile pages.
const SiteFilter = "site:linkedin.com/in"

// MaxPageSize is the largest "num" value the API accepts.
const MaxPageSize = 10

var (
	ErrMissingAPIKey   = errors.New("missing Google API key")
	ErrMissingEngineID = errors.New("missing Custom Search Engine ID")
)

// Client issues profile searches. It holds no per-query state and may be
// reused for any number of calls.
type Client struct {
	http     *http.Client
	cfg      types.SearchConfig
	endpoint string
	log      *zap.Logger
	echo     io.Writer
}

// Option configures optional Client behaviour.
type Option func(*Client)

// WithEcho turns on print mode: every hit is written to w as its title,
// link, and a "---" separator, and a response without results is dumped
// verbatim. Structured results are returned as usual.
func WithEcho(w io.Writer) Option {
	return func(c *Client) { c.echo = w }
}

// NewClient validates cfg and returns a ready client. Both credentials are
// required. A nil httpClient means http.DefaultClient; a nil log means the
// process-wide logger.
func NewClient(httpClient *http.Client, cfg types.SearchConfig, log *zap.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if strings.TrimSpace(cfg.EngineID) == "" {
		return nil, ErrMissingEngineID
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
		if cfg.Timeout > 0 {
			httpClient = &http.Client{Timeout: cfg.Timeout}
		}
	}
	if log == nil {
		log = logger.Named("profilesearch")
	}

	c := &Client{
		http:     httpClient,
		cfg:      cfg,
		endpoint: DefaultEndpoint,
		log:      log,
	}
	if cfg.Endpoint != "" {
		c.endpoint = cfg.Endpoint
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Search runs one query for keywords and returns at most maxResults
// profiles. Failures are logged and yield an empty, non-nil slice.
func (c *Client) Search(ctx context.Context, keywords []string, maxResults int) []types.Profile {
	profiles, err := c.Fetch(ctx, keywords, maxResults)
	if err != nil {
		return []types.Profile{}
	}
	return profiles
}

// Fetch is Search with the error returned. The error has already been
// logged when Fetch returns it.
func (c *Client) Fetch(ctx context.Context, keywords []string, maxResults int) ([]types.Profile, error) {
	log := logger.WithTraceID(c.log, uuid.NewString())

	query := BuildQuery(keywords)
	num := c.clamp(maxResults)
	params := url.Values{
		"key": {c.cfg.APIKey},
		"cx":  {c.cfg.EngineID},
		"q":   {query},
		"num": {strconv.Itoa(num)},
	}

	log.Debug("profile search request", zap.String("q", query), zap.Int("num", num))

	body, err := httputil.Get(ctx, c.http, c.endpoint+"?"+params.Encode(), c.cfg.UserAgent)
	if err != nil {
		var se *httputil.StatusError
		if errors.As(err, &se) {
			log.Error("search API returned an error status", zap.Int("status", se.Code), zap.String("body", se.Body))
			c.echof("No results or error: %s\n", se.Body)
		} else {
			log.Error("error making request", zap.Error(err))
		}
		return nil, fmt.Errorf("custom search request: %w", err)
	}

	var sr cseResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		log.Error("unexpected response from search API", zap.Error(err))
		return nil, fmt.Errorf("parsing custom search response: %w", err)
	}

	if sr.Items == nil {
		log.Info("no results", zap.String("q", query))
		c.echof("No results or error: %s\n", strings.TrimSpace(string(body)))
		return []types.Profile{}, nil
	}

	kw := slices.Clone(keywords)
	if kw == nil {
		kw = []string{}
	}

	profiles := make([]types.Profile, 0, len(sr.Items))
	for _, item := range sr.Items {
		profiles = append(profiles, types.Profile{
			Title:           item.Title,
			Link:            item.Link,
			Snippet:         item.Snippet,
			DisplayLink:     item.DisplayLink,
			FormattedURL:    item.FormattedURL,
			Name:            ProfileName(item.Title),
			KeywordsMatched: kw,
		})
		c.echof("%s\n%s\n---\n", item.Title, item.Link)
	}

	log.Info("profile search completed", zap.String("q", query), zap.Int("result_count", len(profiles)))
	return profiles, nil
}

// BuildQuery returns the "q" parameter for keywords: the site filter
// followed by the space-joined keywords.
func BuildQuery(keywords []string) string {
	return SiteFilter + " " + strings.Join(keywords, " ")
}

// ClampMaxResults caps n at MaxPageSize. Non-positive values select the
// full page.
func ClampMaxResults(n int) int {
	if n <= 0 || n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

func (c *Client) clamp(n int) int {
	if n <= 0 {
		n = c.cfg.MaxResults
	}
	return ClampMaxResults(n)
}

func (c *Client) echof(format string, args ...any) {
	if c.echo != nil {
		fmt.Fprintf(c.echo, format, args...)
	}
}

// Custom Search JSON API structures. Only the fields we map are decoded;
// absent fields stay empty.
type cseResponse struct {
	Items []cseItem `json:"items"`
}

type cseItem struct {
	Title        string `json:"title"`
	Link         string `json:"link"`
	Snippet      string `json:"snippet"`
	DisplayLink  string `json:"displayLink"`
	FormattedURL string `json:"formattedUrl"`
}
