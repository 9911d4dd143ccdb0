package entity

import (
	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/tictactoe"
)

// Session is the snapshot of one tic-tac-toe game kept by the session store.
type Session struct {
	ID     string               `json:"id"`
	Board  tictactoe.Board      `json:"board"`
	Moves  int                  `json:"moves"`
	Result tictactoe.GameResult `json:"result"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:     id,
		Board:  tictactoe.NewBoard(),
		Result: tictactoe.InProgress,
	}
}

func (that *Session) IsFinished() bool {
	return that.Result.IsTerminal()
}

// ConfirmOngoingState returns ErrGameFinished once the session reached a terminal result.
func (that *Session) ConfirmOngoingState() error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}
	return nil
}

// UpdateGameState recomputes the result from the board.
func (that *Session) UpdateGameState() {
	that.Result = that.Board.Evaluate()
}
