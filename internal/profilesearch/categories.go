// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profilesearch

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/profile-search/pkg/types"
)

// NoKeywordsMessage is the envelope error for a category search with nothing to
// search for.
const NoKeywordsMessage = "No search keywords provided"

// FlattenCategories joins the non-empty groups into one keyword list in the
// fixed category order and builds a "<Category>: a, b" summary per group.
func FlattenCategories(groups types.CategoryGroups) (keywords, summaries []string) {
	keywords = []string{}
	summaries = []string{}
	for _, cat := range groups.Ordered() {
		if len(cat.Keywords) == 0 {
			continue
		}
		keywords = append(keywords, cat.Keywords...)
		summaries = append(summaries, fmt.Sprintf("%s: %s", cat.Label, strings.Join(cat.Keywords, ", ")))
	}
	return keywords, summaries
}

// SearchByCategories flattens groups and runs a single Search. When no group
// has keywords it returns an envelope carrying NoKeywordsMessage without
// contacting the API.
func (c *Client) SearchByCategories(ctx context.Context, groups types.CategoryGroups, maxResults int) types.CategoryEnvelope {
	keywords, summaries := FlattenCategories(groups)
	if len(keywords) == 0 {
		return types.CategoryEnvelope{
			Envelope:   NewEnvelope(nil, nil),
			Categories: summaries,
			Error:      NoKeywordsMessage,
		}
	}

	return types.CategoryEnvelope{
		Envelope:   NewEnvelope(keywords, c.Search(ctx, keywords, maxResults)),
		Categories: summaries,
	}
}

// NewEnvelope builds the minimal envelope for a plain keyword search.
func NewEnvelope(keywords []string, profiles []types.Profile) types.Envelope {
	if profiles == nil {
		profiles = []types.Profile{}
	}
	return types.Envelope{
		Profiles:     profiles,
		SearchQuery:  strings.Join(keywords, " "),
		TotalResults: len(profiles),
	}
}
