package tictactoe

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrInvalidBoard  = errors.New("invalid board encoding")
	ErrInvalidResult = errors.New("invalid game result")
)

// MarshalJSON encodes the board as three row strings, e.g. ["o x", " o ", "  x"].
func (that Board) MarshalJSON() ([]byte, error) {
	rows := make([]string, Size)
	for row := range Size {
		var line [Size]byte
		for col := range Size {
			line[col] = that.cells[row][col].String()[0]
		}
		rows[row] = string(line[:])
	}

	return json.Marshal(rows)
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}

	if len(rows) != Size {
		return fmt.Errorf("%w: want %d rows, got %d", ErrInvalidBoard, Size, len(rows))
	}

	var decoded Board
	for row, line := range rows {
		if len(line) != Size {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, row, len(line))
		}

		for col := range Size {
			switch line[col] {
			case ' ':
				decoded.cells[row][col] = Empty
			case 'o':
				decoded.cells[row][col] = PlayerMark
			case 'x':
				decoded.cells[row][col] = OpponentMark
			default:
				return fmt.Errorf("%w: unexpected %q at row %d", ErrInvalidBoard, line[col], row)
			}
		}
	}

	*that = decoded

	return nil
}

func (that GameResult) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *GameResult) UnmarshalText(text []byte) error {
	for _, result := range []GameResult{InProgress, PlayerWins, OpponentWins, Draw} {
		if result.String() == string(text) {
			*that = result
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrInvalidResult, text)
}
