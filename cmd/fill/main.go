package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/crossfill/config"
	"github.com/domino14/crossfill/grid"
	"github.com/domino14/crossfill/pool"
	"github.com/domino14/crossfill/render"
	"github.com/domino14/crossfill/solver"
)

func main() {
	cfg := &config.Config{}
	err := cfg.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	logger := zerolog.New(output).With().Timestamp().Logger()
	if cfg.GetBool("debug") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = logger

	args := cfg.Args()
	if len(args) != 2 && len(args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: fill <structure> <words> [output.png]")
		os.Exit(1)
	}

	g, err := grid.FromFile(args[0])
	if err != nil {
		log.Fatal().Err(err).Msg("reading structure")
	}
	p, err := pool.FromFile(args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("reading word list")
	}

	s := solver.New(g, p.Words())
	s.SetRequireDistinct(cfg.GetBool("distinct-words"))
	assignment, ok := s.Solve()
	if !ok {
		fmt.Println("No solution.")
		return
	}
	fmt.Print(g.ToDisplayText(assignment))
	if len(args) == 3 {
		if err := render.Save(g, assignment, args[2]); err != nil {
			log.Fatal().Err(err).Msg("writing image")
		}
	}
}
