package words

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
)

const DefaultMaxAttempts = 5

type Mark uint8

const (
	Absent Mark = iota
	// Present means the letter occurs somewhere else in the word.
	Present
	Correct
)

// Game is one round of guessing a hidden word. Comparison is rune-wise so any alphabet works.
type Game struct {
	target      []rune
	maxAttempts int
	attempts    int
	won         bool
}

func NewGame(target string, maxAttempts int) *Game {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return &Game{
		target:      []rune(strings.ToLower(target)),
		maxAttempts: maxAttempts,
	}
}

func (that *Game) Target() string { return string(that.target) }

func (that *Game) WordLength() int { return len(that.target) }

// Attempt is the 1-based number of the next guess.
func (that *Game) Attempt() int { return that.attempts + 1 }

func (that *Game) MaxAttempts() int { return that.maxAttempts }

func (that *Game) Won() bool { return that.won }

func (that *Game) IsFinished() bool {
	return that.won || that.attempts >= that.maxAttempts
}

// Guess scores input against the hidden word. A guess of the wrong length is rejected with
// ErrMalformedInput and does not use up an attempt.
func (that *Game) Guess(input string) ([]Mark, error) {
	if that.IsFinished() {
		return nil, apperror.ErrGameFinished
	}

	guess := []rune(strings.ToLower(strings.TrimSpace(input)))
	if len(guess) != len(that.target) {
		return nil, fmt.Errorf("%w: want %d letters, got %d", apperror.ErrMalformedInput, len(that.target), len(guess))
	}

	that.attempts++

	marks := make([]Mark, len(guess))
	for i, letter := range guess {
		switch {
		case letter == that.target[i]:
			marks[i] = Correct
		case strings.ContainsRune(string(that.target), letter):
			marks[i] = Present
		default:
			marks[i] = Absent
		}
	}

	that.won = allCorrect(marks)

	return marks, nil
}

func allCorrect(marks []Mark) bool {
	for _, mark := range marks {
		if mark != Correct {
			return false
		}
	}
	return true
}
