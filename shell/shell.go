package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/crossfill/config"
	"github.com/domino14/crossfill/grid"
	"github.com/domino14/crossfill/pool"
	"github.com/domino14/crossfill/solver"
)

var errNoGrid = errors.New("load a structure file first")
var errNoPool = errors.New("load a word list first")
var errQuit = errors.New("sending quit signal")

// ShellController is the main shell for interactive filling.
type ShellController struct {
	l        *readline.Instance
	cfg      *config.Config
	execPath string

	grid     *grid.Grid
	pool     *pool.Pool
	poolFile string

	lastAssignment solver.Assignment
	lastSolver     *solver.Solver

	batchCtx       context.Context
	batchCtxCancel context.CancelFunc
	batchLogFile   string
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errors.New("no command entered")
	}
	cmd := strings.ToLower(fields[0])
	var args []string
	options := CmdOptions{}
	lastWasOption := false
	lastOption := ""
	for _, field := range fields[1:] {
		if strings.HasPrefix(field, "-") {
			lastWasOption = true
			lastOption = field[1:]
			continue
		}
		if lastWasOption {
			options[lastOption] = append(options[lastOption], field)
			lastWasOption = false
		} else {
			args = append(args, field)
		}
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewShellController(cfg *config.Config, execPath string) *ShellController {
	sc := &ShellController{cfg: cfg, execPath: execPath}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mcrossfill>\033[0m ",
		HistoryFile:     filepath.Join(os.TempDir(), "readline-crossfill.tmp"),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
		AutoComplete:        NewShellCompleter(sc),
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	showMessage("Error: "+err.Error(), sc.l.Stderr())
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) handle(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "load":
		return sc.load(cmd)
	case "pool":
		return sc.loadPool(cmd)
	case "solve":
		return sc.solve(cmd)
	case "show":
		return sc.show(cmd)
	case "export":
		return sc.export(cmd)
	case "autoplay":
		return sc.autoplay(cmd)
	case "analyze":
		return sc.analyze(cmd)
	case "summary":
		return sc.summary(cmd)
	case "set":
		return sc.set(cmd)
	case "help":
		return usage()
	case "bye", "exit":
		sig <- syscall.SIGINT
		return nil, errQuit
	default:
		return nil, errors.New("command " + cmd.cmd + " not found")
	}
}

// Loop runs the shell until exit or EOF.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		switch err {
		case readline.ErrInterrupt:
			if len(line) == 0 {
				sig <- syscall.SIGINT
				return
			}
			continue
		case io.EOF:
			sig <- syscall.SIGINT
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		resp, err := sc.handle(line, sig)
		if err == errQuit {
			return
		}
		if err != nil {
			sc.showError(err)
		} else if resp != nil {
			sc.showMessage(resp.message)
		}
	}
}

// Execute runs a single command non-interactively.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	defer sc.l.Close()
	resp, err := sc.handle(line, sig)
	if err != nil && err != errQuit {
		sc.showError(err)
	} else if resp != nil {
		sc.showMessage(resp.message)
	}
	log.Debug().Str("line", line).Msg("executed command")
}
