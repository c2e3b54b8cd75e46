package types

import "time"

// HTTPConfig holds HTTP settings for the outbound search request.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the client default.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with the request
	// (e.g. "profile-search/0.1"). Empty means the Go default.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the profile search client. Both
// credentials are required; there are no built-in defaults.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the Google API key sent as the "key" parameter.
	APIKey string `json:"-" yaml:"-"`

	// EngineID is the Custom Search Engine identifier sent as "cx".
	EngineID string `json:"-" yaml:"-"`

	// MaxResults is the default page size (capped at 10 by the API).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Endpoint overrides the Custom Search endpoint. Empty uses the
	// public Google endpoint.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}
