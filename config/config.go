/*
Package config reads the settings of the sapling command from an optional
configuration file, in any format viper supports, and from command line
flags, which take precedence over the file.
*/
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds every setting of the sapling command
type Config struct {
	Log  *Log
	Grow *Grow
}

// Log configures the logging of a run
type Log struct {
	Level string
	Path  string
}

// Grow configures where the training data is read from and how the grown tree is written
type Grow struct {
	Input    string
	Metadata string
	Table    string
	Format   string
	Output   string
}

var flagKeys = map[string]string{
	"input":    "grow.input",
	"metadata": "grow.metadata",
	"table":    "grow.table",
	"format":   "grow.format",
	"output":   "grow.output",
}

/*
Load takes the path to a configuration file and a flag set and returns
the resulting Config or an error. If the path is "" no file is read. The
flags named input, metadata, table, format and output, when defined in the
flag set, are bound to the keys of the grow section so that setting them
overrides the values in the file.
*/
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("grow.format", "text")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %v", configPath, err)
		}
	}
	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %v", name, err)
			}
		}
	}
	return &Config{
		Log: &Log{
			Level: v.GetString("log.level"),
			Path:  v.GetString("log.path"),
		},
		Grow: &Grow{
			Input:    v.GetString("grow.input"),
			Metadata: v.GetString("grow.metadata"),
			Table:    v.GetString("grow.table"),
			Format:   v.GetString("grow.format"),
			Output:   v.GetString("grow.output"),
		},
	}, nil
}
