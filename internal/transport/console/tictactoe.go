package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/service"
	"github.com/rocketscienceinc/terminal-games/internal/tictactoe"
)

const boardBorder = "------------"

// TicTacToe drives one game against the random opponent over a line-oriented terminal.
type TicTacToe struct {
	logger    *slog.Logger
	in        io.Reader
	out       io.Writer
	gamePlay  service.GamePlayService
	sessionID string
}

// NewTicTacToe builds the driver. A non-empty sessionID resumes the stored game with that id.
func NewTicTacToe(logger *slog.Logger, in io.Reader, out io.Writer, gamePlay service.GamePlayService, sessionID string) *TicTacToe {
	return &TicTacToe{
		logger:    logger.With("component", "tictactoe"),
		in:        in,
		out:       out,
		gamePlay:  gamePlay,
		sessionID: sessionID,
	}
}

func (that *TicTacToe) Run(ctx context.Context) error {
	session, err := that.gamePlay.StartSession(ctx, that.sessionID)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	log := that.logger.With("session", session.ID)

	prompt := newPrompter(that.in, that.out)
	defer prompt.close()

	if session.Moves > 0 {
		prompt.printf("Resuming game %s\n", session.ID)
		renderBoard(that.out, session.Board)
	}

	for {
		line, err := prompt.ask(ctx, "Your move (x y): ")
		if errors.Is(err, io.EOF) {
			prompt.println()
			prompt.printf("Game left unfinished (session %s)\n", session.ID)
			log.Info("input closed mid-game", "moves", session.Moves)
			return nil
		}
		if err != nil {
			return err
		}

		if isQuit(line) {
			if err = that.gamePlay.AbandonSession(ctx, session.ID); err != nil {
				return fmt.Errorf("failed to abandon session: %w", err)
			}
			prompt.println("Bye!")
			return nil
		}

		pos, err := ParseCoords(line)
		if err != nil {
			log.Debug("rejected input", "input", line, "error", err)
			prompt.printf("Invalid input. Enter two numbers from 1 to %d separated by a space.\n", tictactoe.Size)
			continue
		}

		turn, err := that.gamePlay.MakeTurn(ctx, session.ID, pos)
		if errors.Is(err, apperror.ErrAlreadyOccupied) {
			log.Debug("rejected move", "column", pos.Col(), "row", pos.Row(), "error", err)
			prompt.println("Invalid input. The cell is already taken.")
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		session = turn.Session
		renderBoard(that.out, session.Board)

		if turn.Result.IsTerminal() {
			prompt.println(resultMessage(turn.Result))
			return nil
		}
	}
}

// ParseCoords reads "x y" with 1-based column and row. Tokens after the second are ignored.
func ParseCoords(line string) (tictactoe.Position, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return tictactoe.Position{}, fmt.Errorf("%w: want two numbers, got %q", apperror.ErrMalformedInput, line)
	}

	col, err := strconv.Atoi(fields[0])
	if err != nil {
		return tictactoe.Position{}, fmt.Errorf("%w: %w", apperror.ErrMalformedInput, err)
	}

	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return tictactoe.Position{}, fmt.Errorf("%w: %w", apperror.ErrMalformedInput, err)
	}

	return tictactoe.NewPosition(col-1, row-1)
}

func renderBoard(out io.Writer, board tictactoe.Board) {
	var sb strings.Builder

	sb.WriteString(boardBorder + "\n")
	for _, row := range board.Rows() {
		for _, cell := range row {
			sb.WriteString(" " + cell.String() + " |")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(boardBorder + "\n")

	fmt.Fprint(out, sb.String())
}

func resultMessage(result tictactoe.GameResult) string {
	switch result {
	case tictactoe.PlayerWins:
		return "You win! 🎉"
	case tictactoe.OpponentWins:
		return "Opponent wins! 🎉"
	case tictactoe.Draw:
		return "Draw 🤝"
	default:
		return ""
	}
}
