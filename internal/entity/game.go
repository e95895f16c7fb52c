package entity

import (
	"fmt"

	"github.com/minagames/connect4/internal/apperror"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	DiskRed  = "red"
	DiskBlue = "blue"

	// WinnerDraw marks a finished game with no winning player.
	WinnerDraw = "-"

	EmptyCell = ""
)

// Move is a single accepted turn: the column played and the disk placed.
type Move struct {
	Column int    `json:"column"`
	Disk   string `json:"disk"`
}

// Line holds the end cells of a winning run so a front end can highlight
// it. Rows count from the bottom of the board.
type Line struct {
	FromCol int `json:"from_col"`
	FromRow int `json:"from_row"`
	ToCol   int `json:"to_col"`
	ToRow   int `json:"to_row"`
}

// Game holds the full state of one Connect4 session. Each column is a
// stack of disks growing from the bottom (index 0 is the lowest cell),
// so the gravity invariant holds by construction.
type Game struct {
	Rows    int        `json:"rows"`
	Cols    int        `json:"cols"`
	Columns [][]string `json:"columns"`
	Turn    string     `json:"player_turn"`
	Status  string     `json:"status"`
	Winner  string     `json:"winner,omitempty"`
	Moves   []Move     `json:"moves,omitempty"`
	WinLine *Line      `json:"win_line,omitempty"`
}

// NewGame - creates an empty board of the given size with red to move.
func NewGame(rows, cols int) *Game {
	columns := make([][]string, cols)
	for i := range columns {
		columns[i] = make([]string, 0, rows)
	}

	return &Game{
		Rows:    rows,
		Cols:    cols,
		Columns: columns,
		Turn:    DiskRed,
		Status:  StatusOngoing,
	}
}

// DiskAt - returns the disk at the given cell, or EmptyCell when the cell
// is vacant or out of bounds.
func (that *Game) DiskAt(col, row int) string {
	if col < 0 || col >= that.Cols || row < 0 || row >= that.Rows {
		return EmptyCell
	}

	if row >= len(that.Columns[col]) {
		return EmptyCell
	}

	return that.Columns[col][row]
}

func (that *Game) ColumnFull(col int) bool {
	return len(that.Columns[col]) >= that.Rows
}

func (that *Game) BoardFull() bool {
	for col := range that.Columns {
		if !that.ColumnFull(col) {
			return false
		}
	}

	return true
}

func (that *Game) MoveCount() int {
	return len(that.Moves)
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Validate - checks the structural invariants of a deserialized game, so a
// tampered or corrupt save can be rejected before it replaces the current
// session. The move history must replay exactly into the stored columns.
func (that *Game) Validate() error {
	if that.Rows < 1 || that.Cols < 1 {
		return fmt.Errorf("%w: board is %dx%d", apperror.ErrCorruptGameState, that.Rows, that.Cols)
	}

	if len(that.Columns) != that.Cols {
		return fmt.Errorf("%w: %d columns stored for a %d-column board", apperror.ErrCorruptGameState, len(that.Columns), that.Cols)
	}

	for col, stack := range that.Columns {
		if len(stack) > that.Rows {
			return fmt.Errorf("%w: column %d holds %d disks on a %d-row board", apperror.ErrCorruptGameState, col, len(stack), that.Rows)
		}

		for _, disk := range stack {
			if disk != DiskRed && disk != DiskBlue {
				return fmt.Errorf("%w: unknown disk %q in column %d", apperror.ErrCorruptGameState, disk, col)
			}
		}
	}

	if err := that.validateMoves(); err != nil {
		return err
	}

	return that.validateOutcome()
}

// validateMoves - replays the history onto a fresh board and compares the
// result with the stored columns.
func (that *Game) validateMoves() error {
	replayed := make([][]string, that.Cols)

	for i, move := range that.Moves {
		expected := DiskRed
		if i%2 == 1 {
			expected = DiskBlue
		}

		if move.Disk != expected {
			return fmt.Errorf("%w: move %d is %q, expected %q", apperror.ErrCorruptGameState, i, move.Disk, expected)
		}

		if move.Column < 0 || move.Column >= that.Cols {
			return fmt.Errorf("%w: move %d plays column %d", apperror.ErrCorruptGameState, i, move.Column)
		}

		replayed[move.Column] = append(replayed[move.Column], move.Disk)
	}

	for col := range replayed {
		if len(replayed[col]) != len(that.Columns[col]) {
			return fmt.Errorf("%w: history and column %d disagree", apperror.ErrCorruptGameState, col)
		}

		for row, disk := range replayed[col] {
			if that.Columns[col][row] != disk {
				return fmt.Errorf("%w: history and column %d disagree", apperror.ErrCorruptGameState, col)
			}
		}
	}

	return nil
}

func (that *Game) validateOutcome() error {
	switch that.Status {
	case StatusOngoing:
		if that.Winner != "" {
			return fmt.Errorf("%w: ongoing game has winner %q", apperror.ErrCorruptGameState, that.Winner)
		}

		expectedTurn := DiskRed
		if that.MoveCount()%2 == 1 {
			expectedTurn = DiskBlue
		}

		if that.Turn != expectedTurn {
			return fmt.Errorf("%w: turn is %q after %d moves", apperror.ErrCorruptGameState, that.Turn, that.MoveCount())
		}
	case StatusFinished:
		if that.Winner != DiskRed && that.Winner != DiskBlue && that.Winner != WinnerDraw {
			return fmt.Errorf("%w: finished game has winner %q", apperror.ErrCorruptGameState, that.Winner)
		}

		if that.Turn != "" {
			return fmt.Errorf("%w: finished game still has a turn", apperror.ErrCorruptGameState)
		}
	default:
		return fmt.Errorf("%w: unknown status %q", apperror.ErrCorruptGameState, that.Status)
	}

	return nil
}
