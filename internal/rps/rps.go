package rps

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
)

type Action uint8

const (
	Rock Action = iota
	Paper
	Scissors
)

var actions = [...]Action{Rock, Paper, Scissors}

func (that Action) String() string {
	switch that {
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "Rock"
	}
}

// Beats reports whether that wins against other.
func (that Action) Beats(other Action) bool {
	return that == Paper && other == Rock ||
		that == Scissors && other == Paper ||
		that == Rock && other == Scissors
}

type Outcome uint8

const (
	Draw Outcome = iota
	Win
	Lose
)

func (that Outcome) String() string {
	switch that {
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "draw"
	}
}

// Random is the source of the opponent's pick.
type Random interface {
	IntN(n int) int
}

// Judge scores a round from the user's side.
func Judge(user, machine Action) Outcome {
	switch {
	case user == machine:
		return Draw
	case user.Beats(machine):
		return Win
	default:
		return Lose
	}
}

func RandomAction(rng Random) Action {
	return actions[rng.IntN(len(actions))]
}

var aliases = map[string]Action{
	"r":        Rock,
	"rock":     Rock,
	"к":        Rock,
	"камень":   Rock,
	"p":        Paper,
	"paper":    Paper,
	"б":        Paper,
	"бумага":   Paper,
	"s":        Scissors,
	"scissors": Scissors,
	"н":        Scissors,
	"ножницы":  Scissors,
}

// ParseAction accepts an initial or a full name, in English or Russian, in any case.
func ParseAction(input string) (Action, error) {
	action, ok := aliases[strings.ToLower(strings.TrimSpace(input))]
	if !ok {
		return Rock, fmt.Errorf("%w: %q is not rock, paper or scissors", apperror.ErrMalformedInput, input)
	}

	return action, nil
}

// Score is the running tally of a rock-paper-scissors session.
type Score struct {
	Wins   int
	Losses int
	Draws  int
}

func (that *Score) Add(outcome Outcome) {
	switch outcome {
	case Win:
		that.Wins++
	case Lose:
		that.Losses++
	default:
		that.Draws++
	}
}
