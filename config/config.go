package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config wraps a viper instance. Settings come from command-line
// flags, falling back to CROSSFILL_-prefixed environment variables.
type Config struct {
	v    *viper.Viper
	args []string
}

func (c *Config) Load(args []string) error {
	c.v = viper.New()
	fs := pflag.NewFlagSet("crossfill", pflag.ContinueOnError)
	fs.String("data-path", "./data", "directory holding structure and word-list files")
	fs.Bool("debug", false, "debug logging on")
	fs.String("cpu-profile", "", "write CPU profile to file")
	fs.String("mem-profile", "", "write memory profile to file")
	fs.Int("threads", 0, "threads for batch solving; 0 means the CPU count")
	fs.Bool("distinct-words", false, "never repeat a word within one puzzle")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	c.args = fs.Args()
	c.v.SetEnvPrefix("crossfill")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	return c.v.BindPFlags(fs)
}

// Args returns the positional (non-flag) arguments from Load.
func (c *Config) Args() []string { return c.args }

func (c *Config) GetString(key string) string { return c.v.GetString(key) }
func (c *Config) GetBool(key string) bool     { return c.v.GetBool(key) }
func (c *Config) GetInt(key string) int       { return c.v.GetInt(key) }

func (c *Config) Set(key string, value interface{}) { c.v.Set(key, value) }

// SanitizedSettings returns all settings for display at startup.
func (c *Config) SanitizedSettings() map[string]interface{} {
	return c.v.AllSettings()
}

// AdjustRelativePaths turns relative path settings into absolute ones,
// rooted at the executable's directory.
func (c *Config) AdjustRelativePaths(exPath string) {
	c.v.Set("data-path", toAbsPath(exPath, c.v.GetString("data-path"), "data-path"))
}

func toAbsPath(exPath, path, logname string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		// relative to the working directory, leave it
		return path
	}
	abs := filepath.Join(exPath, path)
	log.Debug().Str("path", abs).Msgf("adjusted relative path for %v", logname)
	return abs
}
