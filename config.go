package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rileylov/rowdrag/drag"
)

// Config is the resolved configuration of a run.
type Config struct {
	Dir       string
	Handle    bool
	HandleKey string
	Locked    []string
	Disabled  bool
	SIUnit    bool
	Limit     int
	Debug     bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dir", ".")
	v.SetDefault("handle", false)
	v.SetDefault("handle-key", drag.ClassHandle)
	v.SetDefault("locked", []string{})
	v.SetDefault("disabled", false)
	v.SetDefault("si", false)
	v.SetDefault("limit", 30)
	v.SetDefault("debug", false)
}

// loadConfig reads .rowdrag.yaml from $ROWDRAG_CONFIG_PATH or the working
// directory (or the file named by --config), then ROWDRAG_* variables, then
// flags.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	setDefaults(v)
	v.SetEnvPrefix("ROWDRAG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file, _ := flags.GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".rowdrag")
		v.SetConfigType("yaml")
		if override := os.Getenv("ROWDRAG_CONFIG_PATH"); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, err
	}

	return Config{
		Dir:       v.GetString("dir"),
		Handle:    v.GetBool("handle"),
		HandleKey: v.GetString("handle-key"),
		Locked:    v.GetStringSlice("locked"),
		Disabled:  v.GetBool("disabled"),
		SIUnit:    v.GetBool("si"),
		Limit:     v.GetInt("limit"),
		Debug:     v.GetBool("debug"),
	}, nil
}

// locked reports whether name matches one of the locked patterns.
func (c Config) locked(name string) bool {
	for _, pattern := range c.Locked {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// dragConfig builds the row drag configuration for directory entries.
func (c Config) dragConfig() drag.Config[entry] {
	if c.Disabled {
		return drag.Bool[entry](false)
	}
	opts := drag.Options[entry]{Enabled: true}
	if len(c.Locked) > 0 {
		opts.CanDrag = func(e entry, _ int) bool { return !c.locked(e.Name) }
	}
	if c.Handle {
		opts.HandleKey = c.HandleKey
	}
	return drag.With(opts)
}
