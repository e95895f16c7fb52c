package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (that *Server) handleNew(ctx context.Context, args []string) error {
	rows, cols := that.defaultRows, that.defaultCols

	switch len(args) {
	case 0:
	case 2:
		var err error
		if rows, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("rows must be a number, got %q", args[0])
		}
		if cols, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("cols must be a number, got %q", args[1])
		}
	default:
		return fmt.Errorf("usage: new [rows cols]")
	}

	if _, err := that.games.NewGame(rows, cols); err != nil {
		return err
	}

	that.render()

	return nil
}

// handleDrop - plays a column. Columns are shown and entered 1-based.
func (that *Server) handleDrop(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: drop <col>")
	}

	col, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("column must be a number, got %q", args[0])
	}

	if _, err = that.games.MakeTurn(col - 1); err != nil {
		return err
	}

	that.render()

	return nil
}

func (that *Server) handleSave(ctx context.Context, args []string) error {
	slot := slotOrDefault(args)

	if err := that.games.SaveGame(ctx, slot); err != nil {
		return err
	}

	that.printf("saved to slot %q\n", slot)

	return nil
}

func (that *Server) handleLoad(ctx context.Context, args []string) error {
	slot := slotOrDefault(args)

	if _, err := that.games.LoadGame(ctx, slot); err != nil {
		return err
	}

	that.printf("loaded slot %q\n", slot)
	that.render()

	return nil
}

func (that *Server) handleSaves(ctx context.Context, _ []string) error {
	slots, err := that.games.ListSaves(ctx)
	if err != nil {
		return err
	}

	if len(slots) == 0 {
		that.printf("no saves\n")
		return nil
	}

	that.printf("saves: %s\n", strings.Join(slots, ", "))

	return nil
}

func (that *Server) handleDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: delete <slot>")
	}

	if err := that.games.DeleteSave(ctx, args[0]); err != nil {
		return err
	}

	that.printf("deleted slot %q\n", args[0])

	return nil
}

func (that *Server) handleShow(_ context.Context, _ []string) error {
	that.render()
	return nil
}

func (that *Server) handleHistory(_ context.Context, _ []string) error {
	game := that.games.CurrentGame()
	if game == nil || game.MoveCount() == 0 {
		that.printf("no moves yet\n")
		return nil
	}

	moves := make([]string, 0, game.MoveCount())
	for _, move := range game.Moves {
		moves = append(moves, fmt.Sprintf("%d%s", move.Column+1, diskRune(move.Disk)))
	}

	that.printf("moves: %s\n", strings.Join(moves, " "))

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string) error {
	that.printHelp()
	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string) error {
	that.printf("bye\n")
	return errQuit
}
