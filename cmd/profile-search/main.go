// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the profile-search CLI. Every
// positional argument is a search keyword; category searches and the
// version are selected with flags so no keyword is reserved.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/profile-search/internal/secrets"
	"github.com/pdiddy/profile-search/pkg/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from the secrets directory at startup.
var loadedSecrets map[string]string

// errUsage signals that usage text has already been printed.
var errUsage = errors.New("usage")

// secretDefault returns fallback if it is set, or the secret value for key otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return loadedSecrets[key]
}

// rootCmd searches for profiles matching its positional keywords. It has no
// subcommands, so words like "help" or "version" are searched for as-is.
var rootCmd = &cobra.Command{
	Use:     "profile-search [flags] <keyword> [<keyword> ...]",
	Version: version,
	Short:   "Find LinkedIn profiles through Google Custom Search",
	Long:    `profile-search queries the Google Custom Search JSON API for public
LinkedIn profiles (site:linkedin.com/in) matching the given keywords and
prints the hits as JSON.

Credentials are required: set GOOGLE_API_KEY and GOOGLE_CSE_ID, put them in
a .env file or the config file, or store them as google-api-key and
google-cse-id in the secrets directory.

Flags must come before the first keyword; everything from the first
keyword on is searched for verbatim. Put -- before a keyword that starts
with a dash:

  profile-search --print -- -remote python

The --skills, --industries, --companies, --certifications, and --job-titles
flags run a category search instead and print the envelope with its
category summaries.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Init(viper.GetString("logging.level"), viper.GetString("logging.format")); err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}

		dir := viper.GetString("secrets_dir")
		s, err := secrets.Load(dir, logger.Named("secrets"))
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			logger.Log.Debug("loaded secrets", zap.String("dir", dir), zap.Strings("keys", keys))
		}
		return nil
	},
	RunE: runSearch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().SetInterspersed(false)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("profile-search {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./profile-search.yaml or ~/.config/profile-search/profile-search.yaml)")
	pf.String("api-key", "", "Google API key (env GOOGLE_API_KEY)")
	pf.String("cse-id", "", "Custom Search Engine ID (env GOOGLE_CSE_ID)")
	pf.String("secrets-dir", ".secrets/", "directory holding google-api-key and google-cse-id files")
	pf.String("log-level", "", "log level: debug, info, warn, error (default warn)")
	pf.Int("max-results", 0, "results per query, at most 10 (default 10)")
	pf.Duration("timeout", 0, "HTTP request timeout (default: no timeout)")

	viper.BindPFlag("google.api_key", pf.Lookup("api-key"))
	viper.BindPFlag("google.cse_id", pf.Lookup("cse-id"))
	viper.BindPFlag("secrets_dir", pf.Lookup("secrets-dir"))
	viper.BindPFlag("logging.level", pf.Lookup("log-level"))
	viper.BindPFlag("search.max_results", pf.Lookup("max-results"))
	viper.BindPFlag("search.timeout", pf.Lookup("timeout"))

	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("secrets_dir", ".secrets/")
	viper.SetDefault("search.max_results", 10)
	viper.SetDefault("search.user_agent", "profile-search/"+version)

	viper.SetEnvPrefix("PROFILE_SEARCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("google.api_key", "PROFILE_SEARCH_GOOGLE_API_KEY", "GOOGLE_API_KEY")
	viper.BindEnv("google.cse_id", "PROFILE_SEARCH_GOOGLE_CSE_ID", "GOOGLE_CSE_ID")
}

func initConfig() {
	// A missing .env is fine; variables already in the environment win.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("profile-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "profile-search"))
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
