package tictactoe

type GameResult uint8

const (
	InProgress GameResult = iota
	PlayerWins
	OpponentWins
	Draw
)

func (that GameResult) String() string {
	switch that {
	case PlayerWins:
		return "player_wins"
	case OpponentWins:
		return "opponent_wins"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// IsTerminal reports whether no further moves may be made.
func (that GameResult) IsTerminal() bool {
	return that != InProgress
}

// Lines lists every winning line as (column, row) pairs: rows, then columns, then the main
// diagonal and the anti-diagonal. Evaluate reports the first complete line in this order.
var Lines = [8][Size][2]uint8{
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// Evaluate classifies the board. It never mutates and is recomputed on every call.
func (that Board) Evaluate() GameResult {
	for _, line := range Lines {
		a := that.cells[line[0][1]][line[0][0]]
		b := that.cells[line[1][1]][line[1][0]]
		c := that.cells[line[2][1]][line[2][0]]
		if a != Empty && a == b && b == c {
			return winnerOf(a)
		}
	}

	// the game goes on until every cell is taken
	if !that.Full() {
		return InProgress
	}

	return Draw
}

func winnerOf(mark Cell) GameResult {
	if mark == PlayerMark {
		return PlayerWins
	}
	return OpponentWins
}
