// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the profile search
// client and the CLI: profile records, result envelopes, keyword groups, and
// client configuration.
package types

// Profile is a single LinkedIn profile hit returned by the Custom Search API.
type Profile struct {
	Title        string `json:"title" yaml:"title"`
	Link         string `json:"link" yaml:"link"`
	Snippet      string `json:"snippet" yaml:"snippet"`
	DisplayLink  string `json:"displayLink" yaml:"displayLink"`
	FormattedURL string `json:"formattedUrl" yaml:"formattedUrl"`

	// Name is derived from Title (see profilesearch.ProfileName).
	Name string `json:"name" yaml:"name"`

	// KeywordsMatched is the full keyword list of the query that produced
	// this profile, not the subset found in the snippet.
	KeywordsMatched []string `json:"keywords_matched" yaml:"keywords_matched"`
}

// Envelope wraps a result set with the query that produced it.
type Envelope struct {
	Profiles     []Profile `json:"profiles" yaml:"profiles"`
	SearchQuery  string    `json:"search_query" yaml:"search_query"`
	TotalResults int       `json:"total_results" yaml:"total_results"`
}

// CategoryEnvelope is the result of a category search. Categories lists one
// "<Category>: a, b" summary per supplied group and is always present, empty
// when no group had keywords. Error is set only when there was nothing to
// search for.
type CategoryEnvelope struct {
	Envelope   `yaml:",inline"`
	Categories []string `json:"categories" yaml:"categories"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// CategoryGroups holds keywords grouped by category. Empty groups are skipped.
type CategoryGroups struct {
	Skills         []string `json:"skills,omitempty" yaml:"skills,omitempty"`
	Industries     []string `json:"industries,omitempty" yaml:"industries,omitempty"`
	Companies      []string `json:"companies,omitempty" yaml:"companies,omitempty"`
	Certifications []string `json:"certifications,omitempty" yaml:"certifications,omitempty"`
	JobTitles      []string `json:"job_titles,omitempty" yaml:"job_titles,omitempty"`
}

// Category is one labelled keyword group.
type Category struct {
	Label    string
	Keywords []string
}

// Ordered returns the groups in their fixed query order: skills, industries,
// companies, certifications, job titles.
func (g CategoryGroups) Ordered() []Category {
	return []Category{
		{Label: "Skills", Keywords: g.Skills},
		{Label: "Industries", Keywords: g.Industries},
		{Label: "Companies", Keywords: g.Companies},
		{Label: "Certifications", Keywords: g.Certifications},
		{Label: "Job Titles", Keywords: g.JobTitles},
	}
}
