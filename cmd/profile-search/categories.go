// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/profile-search/internal/profilesearch"
	"github.com/pdiddy/profile-search/pkg/types"
)

// categoryFlags maps each category flag to its place in CategoryGroups.
var categoryFlags = []struct {
	name  string
	usage string
	field func(*types.CategoryGroups) *[]string
}{
	{"skills", "skills to search for (comma-separated)", func(g *types.CategoryGroups) *[]string { return &g.Skills }},
	{"industries", "industries (comma-separated)", func(g *types.CategoryGroups) *[]string { return &g.Industries }},
	{"companies", "companies (comma-separated)", func(g *types.CategoryGroups) *[]string { return &g.Companies }},
	{"certifications", "certifications (comma-separated)", func(g *types.CategoryGroups) *[]string { return &g.Certifications }},
	{"job-titles", "job titles (comma-separated)", func(g *types.CategoryGroups) *[]string { return &g.JobTitles }},
}

func init() {
	for _, cf := range categoryFlags {
		rootCmd.Flags().StringSlice(cf.name, nil, cf.usage)
	}
}

// categoryFlagsSet reports whether any category flag was given, even empty.
func categoryFlagsSet(cmd *cobra.Command) bool {
	for _, cf := range categoryFlags {
		if cmd.Flags().Changed(cf.name) {
			return true
		}
	}
	return false
}

func groupsFromFlags(cmd *cobra.Command) types.CategoryGroups {
	var g types.CategoryGroups
	for _, cf := range categoryFlags {
		*cf.field(&g), _ = cmd.Flags().GetStringSlice(cf.name)
	}
	return g
}

// runCategories combines the category flags into one search. Groups are
// joined in a fixed order regardless of flag order. With no keywords at all
// the envelope carries an error message and no request is made.
func runCategories(cmd *cobra.Command) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	env := client.SearchByCategories(cmd.Context(), groupsFromFlags(cmd), viper.GetInt("search.max_results"))

	if err := exportResult(cmd, env); err != nil {
		return err
	}
	if printMode, _ := cmd.Flags().GetBool("print"); printMode {
		profilesearch.WriteText(env, cmd.OutOrStdout())
		return nil
	}
	return profilesearch.WriteJSON(env, cmd.OutOrStdout())
}
