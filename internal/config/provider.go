package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cfsweep/cfsweep-cli/internal/domain"
)

// Provider resolves RuntimeConfig from viper for Wire dependency
// injection. Precedence is flags > environment > cfsweep.toml >
// defaults; viper handles the first two, the project file fills gaps.
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{
		APIToken:       v.GetString("api_token"),
		AccountID:      v.GetString("account_id"),
		Project:        v.GetString("project"),
		APIBaseURL:     v.GetString("api_base_url"),
		HTTPTimeout:    v.GetDuration("http_timeout"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Sweep:          domain.DefaultSweepConfig(),
	}

	if v.IsSet("batch_size") {
		cfg.Sweep.BatchSize = v.GetInt("batch_size")
	}
	if v.IsSet("retry_ceiling") {
		cfg.Sweep.RetryCeiling = v.GetInt("retry_ceiling")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	pf, err := LoadProjectFile(cwd)
	if err != nil {
		return nil, err
	}
	if pf != nil {
		if cfg.AccountID == "" {
			cfg.AccountID = pf.AccountID
		}
		if cfg.Project == "" {
			cfg.Project = pf.Project
		}
		if pf.Sweep != nil && !v.IsSet("batch_size") && pf.Sweep.BatchSize > 0 {
			cfg.Sweep.BatchSize = pf.Sweep.BatchSize
		}
		if pf.Sweep != nil && !v.IsSet("retry_ceiling") && pf.Sweep.RetryCeiling > 0 {
			cfg.Sweep.RetryCeiling = pf.Sweep.RetryCeiling
		}
	}

	return cfg, nil
}

// SetupViper creates and configures a viper instance for a command.
func SetupViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Tool knobs come from CFSWEEP_*.
	v.SetEnvPrefix("CFSWEEP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// The Cloudflare scope keeps the conventional CF_* names so the
	// same environment works in CI alongside wrangler.
	_ = v.BindEnv("api_token", "CF_API_TOKEN")
	_ = v.BindEnv("account_id", "CF_ACCOUNT_ID")
	_ = v.BindEnv("project", "CF_PAGES_PROJECT")

	// Defaults
	v.SetDefault("api_base_url", DefaultAPIBaseURL)
	v.SetDefault("http_timeout", 30*time.Second)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)

	// Only bind flags the user actually set, under their viper key, so
	// IsSet distinguishes explicit values from flag defaults.
	bindChanged := func(f *pflag.Flag) {
		if f.Changed {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		}
	}
	cmd.Flags().VisitAll(bindChanged)
	cmd.InheritedFlags().VisitAll(bindChanged)

	return v
}
