package console

import (
	"strings"

	"github.com/minagames/connect4/internal/entity"
)

func diskRune(disk string) string {
	switch disk {
	case entity.DiskRed:
		return "R"
	case entity.DiskBlue:
		return "B"
	default:
		return "."
	}
}

// render - prints the board top row first, a 1-based column footer, and a
// status line. Footer digits wrap past column 10 to keep the grid aligned.
func (that *Server) render() {
	game := that.games.CurrentGame()
	if game == nil {
		return
	}

	var b strings.Builder

	for row := game.Rows - 1; row >= 0; row-- {
		for col := 0; col < game.Cols; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(diskRune(game.DiskAt(col, row)))
		}
		b.WriteByte('\n')
	}

	for col := 0; col < game.Cols; col++ {
		if col > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte('0' + (col+1)%10))
	}
	b.WriteByte('\n')

	that.printf("%s", b.String())
	that.printStatus(game)
}

func (that *Server) printStatus(game *entity.Game) {
	if game.IsOngoing() {
		that.printf("%s to move\n", game.Turn)
		return
	}

	if game.Winner == entity.WinnerDraw {
		that.printf("draw after %d moves\n", game.MoveCount())
		return
	}

	that.printf("%s wins!", game.Winner)
	if line := game.WinLine; line != nil {
		that.printf(" (%d,%d) to (%d,%d)", line.FromCol+1, line.FromRow+1, line.ToCol+1, line.ToRow+1)
	}
	that.printf("\n")
}
