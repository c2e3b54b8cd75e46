//go:build mage

package main

import (
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Search builds the CLI and runs a profile search for the comma-separated
// keywords, e.g. mage search "software engineer,python".
func Search(keywords string) error {
	mg.Deps(Build)

	var args []string
	for _, kw := range strings.Split(keywords, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			args = append(args, kw)
		}
	}
	return sh.RunV(filepath.Join(binDir, binName), args...)
}
