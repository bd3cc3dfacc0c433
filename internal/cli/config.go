package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmylchreest/tonal/internal/derive"
	"github.com/jmylchreest/tonal/internal/output"
)

const envPrefix = "TONAL"

// loadConfig binds flags and environment variables and reads the config
// file. Keys use underscores where flags use hyphens, so --fg-boost,
// TONAL_FG_BOOST and fg_boost in the config file all set the same value.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	defaults := derive.DefaultParameters()
	v.SetDefault("scheme", defaults.Scheme)
	v.SetDefault("harmony", defaults.Harmony)
	v.SetDefault("harmonize_threshold", defaults.HarmonizeThreshold)
	v.SetDefault("fg_boost", defaults.ForegroundBoost)
	v.SetDefault("size", defaults.Size)
	v.SetDefault("format", string(output.FormatHex))

	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(configKey(f.Name), f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return fmt.Errorf("failed to bind flags: %w", bindErr)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "tonal"))
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func configKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

// newLogger returns the command-line logger: warnings by default, debug
// with verbose and errors only with quiet.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tonal",
		Output: w,
		Level:  level,
		Color:  hclog.AutoColor,
	})
}
