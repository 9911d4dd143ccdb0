package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
)

// Size is the side length of the board.
const Size = 3

type Cell uint8

const (
	Empty Cell = iota
	PlayerMark
	OpponentMark
)

// String returns the character used to draw the cell.
func (that Cell) String() string {
	switch that {
	case PlayerMark:
		return "o"
	case OpponentMark:
		return "x"
	default:
		return " "
	}
}

// Position addresses a single cell. The only way to obtain one from raw integers is NewPosition,
// so a Position is always inside the board.
type Position struct {
	col uint8
	row uint8
}

func NewPosition(col, row int) (Position, error) {
	if col < 0 || col >= Size || row < 0 || row >= Size {
		return Position{}, fmt.Errorf("%w: column %d, row %d", apperror.ErrOutOfRange, col, row)
	}

	return Position{col: uint8(col), row: uint8(row)}, nil
}

func (that Position) Col() int { return int(that.col) }

func (that Position) Row() int { return int(that.row) }

// Random is the source of the opponent's choice. *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	IntN(n int) int
}

// Board is the 3x3 grid, stored row-major. A marked cell is never cleared or overwritten.
type Board struct {
	cells [Size][Size]Cell
}

func NewBoard() Board {
	return Board{}
}

func (that Board) At(pos Position) Cell {
	return that.cells[pos.row][pos.col]
}

func (that Board) IsEmpty(pos Position) bool {
	return that.At(pos) == Empty
}

// Rows returns a copy of the grid for rendering.
func (that Board) Rows() [Size][Size]Cell {
	return that.cells
}

func (that *Board) ApplyHumanMove(pos Position) error {
	if !that.IsEmpty(pos) {
		return fmt.Errorf("%w: column %d, row %d", apperror.ErrAlreadyOccupied, pos.Col(), pos.Row())
	}

	that.cells[pos.row][pos.col] = PlayerMark

	return nil
}

// ApplyRandomOpponentMove marks one empty cell, chosen uniformly with rng, for the opponent.
// It reports false and leaves the board untouched when no cell is empty.
func (that *Board) ApplyRandomOpponentMove(rng Random) (Position, bool) {
	free := that.emptyPositions()
	if len(free) == 0 {
		return Position{}, false
	}

	chosen := free[rng.IntN(len(free))]
	that.cells[chosen.row][chosen.col] = OpponentMark

	return chosen, true
}

// emptyPositions scans row 0, 1, 2 with ascending columns. Seeded tests rely on this order.
func (that Board) emptyPositions() []Position {
	free := make([]Position, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that.cells[row][col] == Empty {
				free = append(free, Position{col: uint8(col), row: uint8(row)})
			}
		}
	}

	return free
}

func (that Board) Full() bool {
	return len(that.emptyPositions()) == 0
}
