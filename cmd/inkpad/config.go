package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/inkpad/inkpad"
	"github.com/inkpad/inkpad/pkg/core"
)

// config is resolved from .inkpad.yaml (cwd or home), INKPAD_* env vars
// and flags, in increasing priority.
type config struct {
	Path          string
	Codec         string
	AutoSaveDelay time.Duration
}

func loadConfig() (*config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	viper.SetDefault("path", filepath.Join(home, ".inkpad.db"))
	viper.SetDefault("codec", "json")
	viper.SetDefault("autosave_delay", "1s")
	viper.SetConfigName(".inkpad") // .yaml is implicit
	viper.SetEnvPrefix("INKPAD")
	viper.AutomaticEnv()

	if override := os.Getenv("INKPAD_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath(home)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &config{
		Path:          viper.GetString("path"),
		Codec:         viper.GetString("codec"),
		AutoSaveDelay: viper.GetDuration("autosave_delay"),
	}
	if dataPath != "" {
		cfg.Path = dataPath
	}
	return cfg, nil
}

// openStore resolves configuration and opens the store without loading
// persisted state.
func openStore() (*core.Store, *config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	store, err := inkpad.Open(cfg.Path,
		inkpad.WithCodec(cfg.Codec),
		inkpad.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

// resolveID matches a user-supplied id or unique id prefix against the
// collection, so scripts can use the short form.
func resolveID(store *core.Store, arg string) (string, bool) {
	if _, err := store.Get(arg); err == nil {
		return arg, true
	}

	var match string
	for _, n := range store.List() {
		if strings.HasPrefix(n.ID, arg) {
			if match != "" {
				return "", false // ambiguous
			}
			match = n.ID
		}
	}
	return match, match != ""
}
