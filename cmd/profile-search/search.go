// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/profile-search/internal/profilesearch"
	"github.com/pdiddy/profile-search/internal/secrets"
	"github.com/pdiddy/profile-search/pkg/logger"
	"github.com/pdiddy/profile-search/pkg/types"
)

func init() {
	rootCmd.Flags().Bool("print", false, "print title and link per profile instead of JSON")
	rootCmd.Flags().String("output", "", "also write the result envelope to this file (.yaml/.yml or JSON)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if categoryFlagsSet(cmd) {
		if len(args) > 0 {
			return fmt.Errorf("keywords %q cannot be combined with category flags", args)
		}
		return runCategories(cmd)
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintln(out, "Usage: profile-search <keywords...>")
		fmt.Fprintln(out, "Example: profile-search 'software engineer' 'python' 'machine learning'")
		return errUsage
	}

	printMode, _ := cmd.Flags().GetBool("print")
	var opts []profilesearch.Option
	if printMode {
		opts = append(opts, profilesearch.WithEcho(out))
	}

	client, err := newClient(opts...)
	if err != nil {
		return err
	}

	profiles := client.Search(cmd.Context(), args, viper.GetInt("search.max_results"))
	env := profilesearch.NewEnvelope(args, profiles)

	if err := exportResult(cmd, env); err != nil {
		return err
	}
	if printMode {
		return nil
	}
	return profilesearch.WriteJSON(env, out)
}

// searchConfig resolves client settings from flags, environment, config
// file, and the secrets directory, in that order.
func searchConfig() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("search.timeout"),
			UserAgent: viper.GetString("search.user_agent"),
		},
		APIKey:     secretDefault(secrets.GoogleAPIKey, viper.GetString("google.api_key")),
		EngineID:   secretDefault(secrets.GoogleCSEID, viper.GetString("google.cse_id")),
		MaxResults: viper.GetInt("search.max_results"),
		Endpoint:   viper.GetString("search.endpoint"),
	}
}

func newClient(opts ...profilesearch.Option) (*profilesearch.Client, error) {
	cfg := searchConfig()

	var httpClient *http.Client
	if cfg.Timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	client, err := profilesearch.NewClient(httpClient, cfg, logger.Named("profilesearch"), opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: set GOOGLE_API_KEY and GOOGLE_CSE_ID or use --api-key/--cse-id", err)
	}
	return client, nil
}

func exportResult(cmd *cobra.Command, env any) error {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		return nil
	}
	return profilesearch.WriteResultFile(path, env)
}
