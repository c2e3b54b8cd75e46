// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profilesearch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/profile-search/pkg/types"
)

// WriteJSON writes v, an Envelope or CategoryEnvelope, as two-space
// indented JSON to w.
func WriteJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// WriteText writes env in the print-mode layout: the category summary, then
// title, link, and a "---" separator per profile, followed by a count line.
func WriteText(env types.CategoryEnvelope, w io.Writer) {
	if env.Error != "" {
		fmt.Fprintln(w, env.Error)
		return
	}
	if len(env.Categories) > 0 {
		fmt.Fprintln(w, strings.Join(env.Categories, "; "))
	}
	if len(env.Profiles) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}
	for _, p := range env.Profiles {
		fmt.Fprintln(w, p.Title)
		fmt.Fprintln(w, p.Link)
		fmt.Fprintln(w, "---")
	}
	fmt.Fprintf(w, "%d results for %q\n", env.TotalResults, env.SearchQuery)
}

// WriteResultFile exports v, an Envelope or CategoryEnvelope, to path. Files
// ending in .yaml or .yml are written as YAML; anything else as indented JSON.
func WriteResultFile(path string, v any) error {
	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling result file: %w", err)
		}
		data = out
	default:
		var buf bytes.Buffer
		if err := WriteJSON(v, &buf); err != nil {
			return fmt.Errorf("marshaling result file: %w", err)
		}
		data = buf.Bytes()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing result file: %w", err)
	}
	return nil
}
