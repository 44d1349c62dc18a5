package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoad(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	err := c.Load([]string{"--debug", "--data-path", "/opt/puzzles", "--threads", "4"})
	is.NoErr(err)
	is.True(c.GetBool("debug"))
	is.Equal(c.GetString("data-path"), "/opt/puzzles")
	is.Equal(c.GetInt("threads"), 4)
}

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	err := c.Load(nil)
	is.NoErr(err)
	is.True(!c.GetBool("debug"))
	is.Equal(c.GetString("data-path"), "./data")
	is.Equal(c.GetInt("threads"), 0)
}

func TestLoadPositionalArgs(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	err := c.Load([]string{"--debug", "structure.txt", "words.txt"})
	is.NoErr(err)
	is.Equal(c.Args(), []string{"structure.txt", "words.txt"})
}

func TestSet(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	err := c.Load(nil)
	is.NoErr(err)
	c.Set("threads", 8)
	is.Equal(c.GetInt("threads"), 8)
}
