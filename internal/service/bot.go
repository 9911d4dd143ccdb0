package service

import (
	"errors"

	"github.com/rocketscienceinc/terminal-games/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(board *tictactoe.Board) (tictactoe.Position, error)
}

type botService struct {
	rng tictactoe.Random
}

// NewBotService returns the uniform-random opponent drawing from rng.
func NewBotService(rng tictactoe.Random) BotService {
	return &botService{rng: rng}
}

func (that *botService) MakeTurn(board *tictactoe.Board) (tictactoe.Position, error) {
	pos, moved := board.ApplyRandomOpponentMove(that.rng)
	if !moved {
		return tictactoe.Position{}, ErrNoAvailableMoves
	}

	return pos, nil
}
