// Package automatic runs batches of fill attempts against the same
// structure, each with an independently shuffled (and optionally
// truncated) copy of the word pool. Useful for measuring how hard a
// layout is for a given list.
package automatic

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/domino14/crossfill/config"
	"github.com/domino14/crossfill/grid"
	"github.com/domino14/crossfill/pool"
	"github.com/domino14/crossfill/solver"
)

var (
	SolveCounter *expvar.Int
	IsSolving    *expvar.Int
)

func init() {
	SolveCounter = expvar.NewInt("solveCounter")
	IsSolving = expvar.NewInt("isSolving")
}

const logHeader = "thread,job,poolsize,solved,nodes,elapsed_us,pool\n"

type Job struct {
	ID       int
	PoolSize int
}

// SolveRunner owns one thread's worth of batch solving.
type SolveRunner struct {
	cfg      *config.Config
	g        *grid.Grid
	pool     *pool.Pool
	logchan  chan string
	distinct bool
}

func (r *SolveRunner) solveOnce(job Job, thread int) {
	words := r.pool.CopyWords()
	frand.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	if job.PoolSize > 0 && job.PoolSize < len(words) {
		words = words[:job.PoolSize]
	}
	s := solver.New(r.g, words)
	s.SetRequireDistinct(r.distinct)
	_, solved := s.Solve()
	r.logchan <- fmt.Sprintf("%d,%d,%d,%t,%d,%d,%x\n",
		thread, job.ID, len(words), solved, s.Nodes(),
		s.Elapsed().Microseconds(), r.pool.Fingerprint())
}

// BatchOptions configures StartBatchSolves.
type BatchOptions struct {
	NumSolves int
	Threads   int // 0 means the CPU count
	PoolSize  int // words per attempt; 0 means the whole pool
	LogFile   string
	DBFile    string // optional sqlite results store
}

// StartBatchSolves kicks off a batch run and returns immediately; the
// work happens on background goroutines until done or the context is
// cancelled. Results stream to a CSV log file and optionally into a
// sqlite database.
func StartBatchSolves(ctx context.Context, cfg *config.Config, g *grid.Grid,
	p *pool.Pool, opts BatchOptions) error {

	if IsSolving.Value() > 0 {
		return errors.New("a batch is already running, please wait till complete")
	}
	threads := opts.Threads
	if threads == 0 {
		threads = runtime.NumCPU()
	}
	logfile, err := os.Create(opts.LogFile)
	if err != nil {
		return err
	}
	var store *ResultStore
	if opts.DBFile != "" {
		store, err = OpenResultStore(opts.DBFile)
		if err != nil {
			logfile.Close()
			return err
		}
	}
	log.Debug().Int("solves", opts.NumSolves).Int("threads", threads).
		Msg("starting batch")

	SolveCounter.Set(0)
	jobs := make(chan Job, 100)
	logChan := make(chan string, 100)

	eg := errgroup.Group{}
	for t := 1; t <= threads; t++ {
		t := t
		eg.Go(func() error {
			r := &SolveRunner{
				cfg: cfg, g: g, pool: p, logchan: logChan,
				distinct: cfg.GetBool("distinct-words"),
			}
			IsSolving.Add(1)
			defer IsSolving.Add(-1)
			for job := range jobs {
				r.solveOnce(job, t)
				SolveCounter.Add(1)
			}
			return nil
		})
	}

	go func() {
	jobLoop:
		for i := 1; i <= opts.NumSolves; i++ {
			jobs <- Job{ID: i, PoolSize: opts.PoolSize}
			if i%1000 == 0 {
				log.Info().Msgf("queued %v jobs", i)
			}
			select {
			case <-ctx.Done():
				log.Info().Msg("got stop signal, exiting soon...")
				break jobLoop
			default:
				// do nothing
			}
		}
		close(jobs)
		eg.Wait()
		log.Info().Msg("all solves finished")
		close(logChan)
	}()

	go func() {
		logfile.WriteString(logHeader)
		for msg := range logChan {
			logfile.WriteString(msg)
			if store != nil {
				if err := store.InsertCSVLine(msg); err != nil {
					log.Err(err).Msg("inserting result row")
				}
			}
		}
		logfile.Close()
		if store != nil {
			store.Close()
		}
		log.Info().Msg("exiting result logger goroutine")
	}()

	return nil
}
