package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/crossfill/automatic"
	"github.com/domino14/crossfill/grid"
	"github.com/domino14/crossfill/pool"
	"github.com/domino14/crossfill/render"
	"github.com/domino14/crossfill/solver"
)

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

func (c CmdOptions) StringArray(key string) []string {
	return c[key]
}

// dataPath resolves a filename against the data-path setting if it
// does not exist as given.
func (sc *ShellController) dataPath(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	if _, err := os.Stat(filename); err == nil {
		return filename
	}
	return filepath.Join(sc.cfg.GetString("data-path"), filename)
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("need a structure file: load <filename>")
	}
	g, err := grid.FromFile(sc.dataPath(cmd.args[0]))
	if err != nil {
		return nil, err
	}
	sc.grid = g
	sc.lastAssignment = nil
	sc.lastSolver = nil
	return msg(fmt.Sprintf("%d slots%s", len(g.Slots()), g.ToDisplayText(nil))), nil
}

func (sc *ShellController) loadPool(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("need a word list: pool <filename>")
	}
	filename := sc.dataPath(cmd.args[0])
	p, err := pool.Load(sc.cfg, filename)
	if err != nil {
		return nil, err
	}
	sc.pool = p
	sc.poolFile = filename
	return msg(fmt.Sprintf("loaded %d words (pool %x)", p.Len(), p.Fingerprint())), nil
}

func (sc *ShellController) solve(cmd *shellcmd) (*Response, error) {
	if sc.grid == nil {
		return nil, errNoGrid
	}
	if sc.pool == nil {
		return nil, errNoPool
	}
	s := solver.New(sc.grid, sc.pool.Words())
	distinct := sc.cfg.GetBool("distinct-words")
	if _, ok := cmd.options["distinct"]; ok {
		distinct = cmd.options.Bool("distinct")
	}
	s.SetRequireDistinct(distinct)
	if logfile := cmd.options.String("log"); logfile != "" {
		f, err := os.Create(logfile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		s.SetLogStream(f)
	}
	a, ok := s.Solve()
	sc.lastSolver = s
	if !ok {
		sc.lastAssignment = nil
		return msg("No solution."), nil
	}
	sc.lastAssignment = a
	return msg(sc.grid.ToDisplayText(a) +
		fmt.Sprintf("%d nodes in %v\n", s.Nodes(), s.Elapsed())), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.grid == nil {
		return nil, errNoGrid
	}
	return msg(sc.grid.ToDisplayText(sc.lastAssignment)), nil
}

func (sc *ShellController) export(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("need an output file: export <filename.png>")
	}
	if sc.grid == nil {
		return nil, errNoGrid
	}
	if sc.lastAssignment == nil {
		return nil, errors.New("nothing solved yet")
	}
	if err := render.Save(sc.grid, sc.lastAssignment, cmd.args[0]); err != nil {
		return nil, err
	}
	return msg("wrote " + cmd.args[0]), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 1 && cmd.args[0] == "stop" {
		if sc.batchCtxCancel == nil {
			return nil, errors.New("no batch is running")
		}
		sc.batchCtxCancel()
		sc.batchCtxCancel = nil
		return msg("stopping batch..."), nil
	}
	if sc.grid == nil {
		return nil, errNoGrid
	}
	if sc.pool == nil {
		return nil, errNoPool
	}
	n, err := cmd.options.IntDefault("n", 1000)
	if err != nil {
		return nil, err
	}
	threads, err := cmd.options.IntDefault("threads", sc.cfg.GetInt("threads"))
	if err != nil {
		return nil, err
	}
	poolSize, err := cmd.options.IntDefault("poolsize", 0)
	if err != nil {
		return nil, err
	}
	logFile := cmd.options.String("log")
	if logFile == "" {
		logFile = filepath.Join(os.TempDir(), "crossfill-batch.csv")
	}
	sc.batchCtx, sc.batchCtxCancel = context.WithCancel(context.Background())
	sc.batchLogFile = logFile
	err = automatic.StartBatchSolves(sc.batchCtx, sc.cfg, sc.grid, sc.pool,
		automatic.BatchOptions{
			NumSolves: n,
			Threads:   threads,
			PoolSize:  poolSize,
			LogFile:   logFile,
			DBFile:    cmd.options.String("db"),
		})
	if err != nil {
		return nil, err
	}
	log.Info().Str("logfile", logFile).Msg("started batch")
	return msg(fmt.Sprintf("started %d solves, logging to %s", n, logFile)), nil
}

func (sc *ShellController) analyze(cmd *shellcmd) (*Response, error) {
	logFile := sc.batchLogFile
	if len(cmd.args) == 1 {
		logFile = cmd.args[0]
	}
	if logFile == "" {
		return nil, errors.New("no batch log file; pass one or run autoplay first")
	}
	analysis, err := automatic.AnalyzeLogFile(logFile)
	if err != nil {
		return nil, err
	}
	return msg(analysis), nil
}

func (sc *ShellController) summary(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: summary <batch.csv> <out.yaml>")
	}
	if err := automatic.WriteSummary(cmd.args[0], cmd.args[1]); err != nil {
		return nil, err
	}
	return msg("wrote " + cmd.args[1]), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return msg(fmt.Sprintf("%v", sc.cfg.SanitizedSettings())), nil
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <option> <value>")
	}
	sc.cfg.Set(cmd.args[0], cmd.args[1])
	return msg(cmd.args[0] + " -> " + cmd.args[1]), nil
}
