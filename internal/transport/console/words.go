package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/rocketscienceinc/terminal-games/internal/words"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words runs one round of the word-guessing game.
type Words struct {
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
	game   *words.Game

	correct *color.Color
	present *color.Color
}

func NewWords(logger *slog.Logger, in io.Reader, out io.Writer, game *words.Game) *Words {
	return &Words{
		logger:  logger.With("component", "words"),
		in:      in,
		out:     out,
		game:    game,
		correct: color.New(color.FgCyan),
		present: color.New(color.FgMagenta),
	}
}

func (that *Words) Run(ctx context.Context) error {
	prompt := newPrompter(that.in, that.out)
	defer prompt.close()

	for !that.game.IsFinished() {
		line, err := prompt.ask(ctx, fmt.Sprintf("Enter a word (%d/%d): ", that.game.Attempt(), that.game.MaxAttempts()))
		if errors.Is(err, io.EOF) {
			prompt.println()
			break
		}
		if err != nil {
			return err
		}

		marks, err := that.game.Guess(line)
		if err != nil {
			that.logger.Debug("rejected guess", "input", line, "error", err)
			prompt.printf("Error. Enter a word of %d letters.\n", that.game.WordLength())
			prompt.println(delimiter)
			continue
		}

		if that.game.Won() {
			prompt.println(delimiter)
			prompt.println("You guessed it! 🎉")
			that.logger.Info("word guessed", "attempts", that.game.Attempt()-1)
			return nil
		}

		prompt.printf("Result: %s\n", that.colorize([]rune(strings.ToLower(line)), marks))
		prompt.println(delimiter)
	}

	title := cases.Title(language.Und).String(that.game.Target())
	prompt.printf("You lost! The word was: %s\n", title)

	return nil
}

func (that *Words) colorize(guess []rune, marks []words.Mark) string {
	var sb strings.Builder
	for i, mark := range marks {
		letter := string(guess[i])
		switch mark {
		case words.Correct:
			sb.WriteString(that.correct.Sprint(letter))
		case words.Present:
			sb.WriteString(that.present.Sprint(letter))
		default:
			sb.WriteString(letter)
		}
	}
	return sb.String()
}
