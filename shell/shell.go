// Package shell is the interactive front end: a readline loop for
// editing the board and rack and asking for placements.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/tilewright/tilewright/board"
	"github.com/tilewright/tilewright/config"
	"github.com/tilewright/tilewright/lexicon"
	"github.com/tilewright/tilewright/movegen"
	"github.com/tilewright/tilewright/rack"
	"github.com/tilewright/tilewright/scoring"
)

var errExit = errors.New("exit")

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	grid   *board.Grid
	rack   *rack.Rack
	words  *lexicon.WordList
	store  *lexicon.Store
	scorer scoring.Scorer
	gen    *movegen.Generator
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController wires a controller up from configuration: default
// lexicon, user dictionary, scorer and an empty board.
func NewShellController(cfg *config.Config) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mtilewright>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}

	store, err := lexicon.OpenStore(cfg.UserDictPath)
	if err != nil {
		return nil, err
	}
	loader, err := lexicon.NewLoader(cfg, store)
	if err != nil {
		store.Close()
		return nil, err
	}
	words, err := loader.Default()
	if err != nil {
		store.Close()
		return nil, err
	}

	var scorer scoring.Scorer
	if cfg.LetterValuesPath != "" {
		scorer, err = scoring.FromYAMLFile(cfg.LetterValuesPath)
		if err != nil {
			store.Close()
			return nil, err
		}
	} else {
		scorer = scoring.English()
	}

	sc := &ShellController{
		l:      l,
		cfg:    cfg,
		rack:   rack.FromString(""),
		words:  words,
		store:  store,
		scorer: scorer,
	}
	sc.setGrid(board.NewGrid(cfg.BoardHeight, cfg.BoardWidth))
	return sc, nil
}

// setGrid swaps the working grid and rebuilds the search generator
// bound to it.
func (sc *ShellController) setGrid(g *board.Grid) {
	sc.grid = g
	sc.gen = movegen.NewGenerator(g, sc.words, sc.scorer)
	sc.gen.SetWorkers(sc.cfg.SearchWorkers)
}

// Loop reads and executes commands until exit or EOF.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	defer sc.store.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := sc.Execute(line, sc.l.Stderr()); err != nil {
			if errors.Is(err, errExit) {
				break
			}
			showMessage("error: "+err.Error(), sc.l.Stderr())
		}
	}
	if sc.words.Dirty() {
		if err := sc.words.Save(); err != nil {
			log.Err(err).Msg("saving word list")
		}
	}
	log.Debug().Msg("exiting readline loop")
}

func parsePos(xs, ys string) (board.Position, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return board.Position{}, fmt.Errorf("bad column %q", xs)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return board.Position{}, fmt.Errorf("bad row %q", ys)
	}
	return board.Position{X: x, Y: y}, nil
}

func parseAxis(s string) (board.Axis, error) {
	switch strings.ToLower(s) {
	case "across", "a":
		return board.Across, nil
	case "down", "d":
		return board.Down, nil
	}
	return 0, fmt.Errorf("%q is not an axis (across/down)", s)
}
