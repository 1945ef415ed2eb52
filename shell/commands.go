package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tilewright/tilewright/board"
	"github.com/tilewright/tilewright/rack"
)

const helpText = `commands:
show                          - display the board and rack
place <word> <x> <y> <a|d>    - place a word (a=across, d=down)
tile <letter> <x> <y>         - place a single tile
clear <x> <y>                 - remove the tile at a position
rack <letters>                - set the rack
rack random                   - draw a random rack
find [n]                      - show the top n placements (default 10)
best                          - show the best placement
add <word>                    - add a word to the dictionary
remove <word>                 - remove a word from the dictionary
demo                          - load the example board
help                          - this message
exit                          - leave
`

// Execute runs one command line, writing output to w.
func (sc *ShellController) Execute(line string, w io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "help":
		showMessage(helpText, w)
	case "exit", "quit":
		return errExit
	case "show":
		showMessage(sc.grid.String(), w)
		showMessage("rack: "+sc.rack.String(), w)
	case "place":
		return sc.place(args, w)
	case "tile":
		return sc.placeTile(args, w)
	case "clear":
		return sc.clearTile(args)
	case "rack":
		return sc.setRack(args, w)
	case "find":
		return sc.find(args, w)
	case "best":
		return sc.best(w)
	case "add":
		return sc.editWords(args, true)
	case "remove":
		return sc.editWords(args, false)
	case "demo":
		sc.setGrid(board.ExampleGrid())
		showMessage(sc.grid.String(), w)
	default:
		return fmt.Errorf("unknown command %q; try help", cmd)
	}
	return nil
}

func (sc *ShellController) place(args []string, w io.Writer) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: place <word> <x> <y> <across|down>")
	}
	pos, err := parsePos(args[1], args[2])
	if err != nil {
		return err
	}
	axis, err := parseAxis(args[3])
	if err != nil {
		return err
	}
	word, err := board.MakeWord(strings.ToLower(args[0]), pos, axis)
	if err != nil {
		return err
	}
	if err := sc.grid.PlaceWord(word); err != nil {
		return err
	}
	showMessage(sc.grid.String(), w)
	return nil
}

func (sc *ShellController) placeTile(args []string, w io.Writer) error {
	if len(args) != 3 || len(args[0]) != 1 {
		return fmt.Errorf("usage: tile <letter> <x> <y>")
	}
	pos, err := parsePos(args[1], args[2])
	if err != nil {
		return err
	}
	if err := sc.grid.PlaceTile(board.Tile{Pos: pos, Letter: args[0][0]}); err != nil {
		return err
	}
	showMessage(sc.grid.String(), w)
	return nil
}

func (sc *ShellController) clearTile(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: clear <x> <y>")
	}
	pos, err := parsePos(args[0], args[1])
	if err != nil {
		return err
	}
	sc.grid.Remove(pos)
	return nil
}

func (sc *ShellController) setRack(args []string, w io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: rack <letters> | rack random")
	}
	if args[0] == "random" {
		sc.rack = rack.Random(sc.cfg.RackSize)
	} else {
		if len(args[0]) > sc.cfg.RackSize {
			return fmt.Errorf("rack holds at most %d letters", sc.cfg.RackSize)
		}
		sc.rack = rack.FromString(strings.ToLower(args[0]))
	}
	showMessage("rack: "+sc.rack.String(), w)
	return nil
}

func (sc *ShellController) find(args []string, w io.Writer) error {
	n := 10
	if len(args) == 1 {
		fmt.Sscanf(args[0], "%d", &n)
	}
	all, err := sc.gen.GenAll(context.Background(), sc.rack)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		showMessage("no placements found", w)
		return nil
	}
	// best placements are at the end of the ascending list
	if n > len(all) {
		n = len(all)
	}
	for i := 0; i < n; i++ {
		p := all[len(all)-1-i]
		start := p.Word.Tile(0).Pos
		showMessage(fmt.Sprintf("%3d  %-15s %v %v", p.Score, p.Word.String(),
			start, p.Word.Axis()), w)
	}
	return nil
}

func (sc *ShellController) best(w io.Writer) error {
	p, ok, err := sc.gen.Best(context.Background(), sc.rack)
	if err != nil {
		return err
	}
	if !ok {
		showMessage("no placements found", w)
		return nil
	}
	showMessage(fmt.Sprintf("%s at %v %v for %d", p.Word.String(),
		p.Word.Tile(0).Pos, p.Word.Axis(), p.Score), w)
	for _, t := range sc.gen.NewTiles(p) {
		showMessage(fmt.Sprintf("  play %q at %v", string(t.Letter), t.Pos), w)
	}
	return nil
}

func (sc *ShellController) editWords(args []string, add bool) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: add/remove <word>")
	}
	word := strings.ToLower(args[0])
	if add {
		sc.words.Add(word)
		if err := sc.store.AddWord(word); err != nil {
			return err
		}
	} else {
		sc.words.Remove(word)
		if err := sc.store.RemoveWord(word); err != nil {
			return err
		}
	}
	return nil
}
