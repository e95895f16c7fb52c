package connect4

import (
	"fmt"

	"github.com/minagames/connect4/internal/apperror"
	"github.com/minagames/connect4/internal/entity"
)

const (
	// WinLength - how many disks in a row win the game.
	WinLength = 4

	// MinRows and MinCols are the classic board; MaxSkew caps how far the
	// two dimensions may drift apart. Smaller or more lopsided boards make
	// the first player's advantage degenerate.
	MinRows = 6
	MinCols = 7
	MaxSkew = 2
)

// winAxes are the four line directions as (dCol, dRow) steps. Each axis is
// scanned both ways from the placed disk, so eight directions are covered.
var winAxes = [4][2]int{
	{1, 0},  // horizontal
	{0, 1},  // vertical
	{1, 1},  // rising diagonal
	{1, -1}, // falling diagonal
}

// ValidateBoardSize - checks the size limits a new game must satisfy.
func ValidateBoardSize(rows, cols int) error {
	if rows < MinRows || cols < MinCols {
		return fmt.Errorf("%w: %dx%d is below the minimum %dx%d", apperror.ErrInvalidBoardSize, rows, cols, MinRows, MinCols)
	}

	skew := cols - rows
	if skew < 0 {
		skew = -skew
	}

	if skew > MaxSkew {
		return fmt.Errorf("%w: rows and columns may differ by at most %d, got %dx%d", apperror.ErrInvalidBoardSize, MaxSkew, rows, cols)
	}

	return nil
}

// NewGame - creates a validated game with red to move.
func NewGame(rows, cols int) (*entity.Game, error) {
	if err := ValidateBoardSize(rows, cols); err != nil {
		return nil, err
	}

	return entity.NewGame(rows, cols), nil
}

// MakeTurn - drops the current player's disk into the given column and
// updates the game outcome. The column index is zero-based.
func MakeTurn(game *entity.Game, col int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if col < 0 || col >= game.Cols {
		return fmt.Errorf("%w: column %d", apperror.ErrColumnOutOfRange, col)
	}

	if game.ColumnFull(col) {
		return fmt.Errorf("%w: column %d", apperror.ErrColumnFull, col)
	}

	disk := game.Turn
	row := len(game.Columns[col])

	game.Columns[col] = append(game.Columns[col], disk)
	game.Moves = append(game.Moves, entity.Move{Column: col, Disk: disk})

	updateGameStatus(game, col, row, disk)

	return nil
}

// updateGameStatus - checks the outcome after a disk landed at (col, row).
// A win on the final cell takes precedence over the draw.
func updateGameStatus(game *entity.Game, col, row int, disk string) {
	if line := findWinLine(game, col, row, disk); line != nil {
		game.Status = entity.StatusFinished
		game.Winner = disk
		game.WinLine = line
		game.Turn = ""
		return
	}

	if game.BoardFull() {
		game.Status = entity.StatusFinished
		game.Winner = entity.WinnerDraw
		game.Turn = ""
		return
	}

	game.Turn = toggleDisk(disk)
}

// findWinLine - looks for a run of WinLength or more through the placed
// disk. Only lines through (col, row) can have changed, so the whole board
// never needs scanning. Returns the end cells of the full run, or nil.
func findWinLine(game *entity.Game, col, row int, disk string) *entity.Line {
	for _, axis := range winAxes {
		dCol, dRow := axis[0], axis[1]

		fromCol, fromRow := col, row
		for game.DiskAt(fromCol-dCol, fromRow-dRow) == disk {
			fromCol -= dCol
			fromRow -= dRow
		}

		toCol, toRow := col, row
		for game.DiskAt(toCol+dCol, toRow+dRow) == disk {
			toCol += dCol
			toRow += dRow
		}

		length := toCol - fromCol
		if dCol == 0 {
			length = toRow - fromRow
		}

		if length+1 >= WinLength {
			return &entity.Line{FromCol: fromCol, FromRow: fromRow, ToCol: toCol, ToRow: toRow}
		}
	}

	return nil
}

func toggleDisk(disk string) string {
	if disk == entity.DiskRed {
		return entity.DiskBlue
	}
	return entity.DiskRed
}

// ScanWinner - scans the whole board for a completed run and returns the
// winning disk, or EmptyCell. MakeTurn never needs this; it exists to
// cross-check deserialized games.
func ScanWinner(game *entity.Game) string {
	for col := 0; col < game.Cols; col++ {
		for row := 0; row < len(game.Columns[col]); row++ {
			disk := game.DiskAt(col, row)
			if disk == entity.EmptyCell {
				continue
			}

			if findWinLine(game, col, row, disk) != nil {
				return disk
			}
		}
	}

	return entity.EmptyCell
}

// ValidateOutcome - cross-checks a deserialized game's declared outcome
// against the board itself. Structural checks live on the entity; this
// covers what only the rules engine knows, which runs actually exist.
func ValidateOutcome(game *entity.Game) error {
	scanned := ScanWinner(game)

	switch {
	case game.IsOngoing():
		if scanned != entity.EmptyCell {
			return fmt.Errorf("%w: ongoing board already has a %s run", apperror.ErrCorruptGameState, scanned)
		}
	case game.Winner == entity.WinnerDraw:
		if scanned != entity.EmptyCell || !game.BoardFull() {
			return fmt.Errorf("%w: a drawn board must be full with no run", apperror.ErrCorruptGameState)
		}
	default:
		if scanned != game.Winner {
			return fmt.Errorf("%w: board gives no winning run for %s", apperror.ErrCorruptGameState, game.Winner)
		}
	}

	return validateWinLine(game)
}

// validateWinLine - checks that a stored win line is straight, long
// enough, and covered by the winner's disks.
func validateWinLine(game *entity.Game) error {
	line := game.WinLine
	if line == nil {
		return nil
	}

	if !game.IsFinished() || game.Winner == entity.WinnerDraw {
		return fmt.Errorf("%w: win line on a game without a winner", apperror.ErrCorruptGameState)
	}

	dCol := sign(line.ToCol - line.FromCol)
	dRow := sign(line.ToRow - line.FromRow)

	spanCol := (line.ToCol - line.FromCol) * dCol
	spanRow := (line.ToRow - line.FromRow) * dRow

	if dCol == 0 && dRow == 0 {
		return fmt.Errorf("%w: win line is a single cell", apperror.ErrCorruptGameState)
	}

	if dCol != 0 && dRow != 0 && spanCol != spanRow {
		return fmt.Errorf("%w: win line is not straight", apperror.ErrCorruptGameState)
	}

	steps := spanCol
	if spanRow > steps {
		steps = spanRow
	}

	if steps+1 < WinLength {
		return fmt.Errorf("%w: win line is shorter than %d", apperror.ErrCorruptGameState, WinLength)
	}

	for i := 0; i <= steps; i++ {
		if game.DiskAt(line.FromCol+i*dCol, line.FromRow+i*dRow) != game.Winner {
			return fmt.Errorf("%w: win line does not match the board", apperror.ErrCorruptGameState)
		}
	}

	return nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
