package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/minagames/connect4/internal/entity"
)

// DefaultSlot is used when the player saves or loads without naming one,
// matching the single save file of older versions.
const DefaultSlot = "save"

var errQuit = errors.New("quit")

type gameManager interface {
	NewGame(rows, cols int) (*entity.Game, error)
	CurrentGame() *entity.Game
	MakeTurn(col int) (*entity.Game, error)

	SaveGame(ctx context.Context, slot string) error
	LoadGame(ctx context.Context, slot string) (*entity.Game, error)
	ListSaves(ctx context.Context) ([]string, error)
	DeleteSave(ctx context.Context, slot string) error
}

// Server - the terminal front end. It renders the board and feeds player
// commands into the game manager; it holds no game state of its own.
type Server struct {
	logger *slog.Logger
	games  gameManager

	defaultRows int
	defaultCols int

	out      io.Writer
	handlers map[string]func(ctx context.Context, args []string) error
}

func New(logger *slog.Logger, games gameManager, defaultRows, defaultCols int) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		games:  games,

		defaultRows: defaultRows,
		defaultCols: defaultCols,

		handlers: make(map[string]func(context.Context, []string) error),
	}

	server.handlers["new"] = server.handleNew
	server.handlers["drop"] = server.handleDrop
	server.handlers["save"] = server.handleSave
	server.handlers["load"] = server.handleLoad
	server.handlers["saves"] = server.handleSaves
	server.handlers["delete"] = server.handleDelete
	server.handlers["show"] = server.handleShow
	server.handlers["history"] = server.handleHistory
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Start - runs the session loop until the input ends, the player quits, or
// the context is canceled. Rule violations are reported to the player and
// never end the session.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	that.out = out

	if _, err := that.games.NewGame(that.defaultRows, that.defaultCols); err != nil {
		return fmt.Errorf("failed to start initial game: %w", err)
	}

	that.printf("Connect 4\n")
	that.printHelp()
	that.render()

	scanner := bufio.NewScanner(in)

	for {
		if ctx.Err() != nil {
			return nil
		}

		that.printf("> ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		err := that.dispatch(ctx, strings.Fields(scanner.Text()))
		if errors.Is(err, errQuit) {
			return nil
		}

		if err != nil {
			log.Debug("command rejected", "error", err)
			that.printf("error: %v\n", err)
		}
	}
}

func (that *Server) dispatch(ctx context.Context, fields []string) error {
	if len(fields) == 0 {
		return nil
	}

	// A bare column number is a drop, the most common move by far.
	if _, err := strconv.Atoi(fields[0]); err == nil {
		return that.handleDrop(ctx, fields)
	}

	handler, ok := that.handlers[strings.ToLower(fields[0])]
	if !ok {
		return fmt.Errorf("unknown command %q, try \"help\"", fields[0])
	}

	return handler(ctx, fields[1:])
}

func (that *Server) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

func (that *Server) printHelp() {
	that.printf("commands: <col> | drop <col> | new [rows cols] | save [slot] | load [slot] | saves | delete <slot> | show | history | help | quit\n")
}

func slotOrDefault(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return DefaultSlot
}
