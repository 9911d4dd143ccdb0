package console

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/terminal-games/internal/rps"
)

var actionIcons = map[rps.Action]string{
	rps.Rock:     "🪨",
	rps.Paper:    "📄",
	rps.Scissors: "✂️",
}

var outcomeMessages = map[rps.Outcome]string{
	rps.Win:  "Result: you win! 🎉",
	rps.Draw: "Result: draw 🤷",
	rps.Lose: "Result: you lose 😢",
}

// RockPaperScissors plays rounds until the user quits or input ends.
type RockPaperScissors struct {
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
	rng    rps.Random
}

func NewRockPaperScissors(logger *slog.Logger, in io.Reader, out io.Writer, rng rps.Random) *RockPaperScissors {
	return &RockPaperScissors{
		logger: logger.With("component", "rps"),
		in:     in,
		out:    out,
		rng:    rng,
	}
}

func (that *RockPaperScissors) Run(ctx context.Context) error {
	prompt := newPrompter(that.in, that.out)
	defer prompt.close()

	var score rps.Score

	for {
		line, err := prompt.ask(ctx, "Your pick (r)ock/(p)aper/(s)cissors: ")
		if errors.Is(err, io.EOF) {
			prompt.println()
			break
		}
		if err != nil {
			return err
		}

		if isQuit(line) {
			break
		}

		user, err := rps.ParseAction(line)
		if err != nil {
			that.logger.Debug("rejected input", "input", line, "error", err)
			prompt.println("Invalid input. Enter r, p or s.")
			continue
		}

		machine := rps.RandomAction(that.rng)
		outcome := rps.Judge(user, machine)
		score.Add(outcome)

		prompt.printf("My pick: %s %s\n", machine, actionIcons[machine])
		prompt.println(outcomeMessages[outcome])
		prompt.println(delimiter)
	}

	prompt.printf("Score: %d wins, %d losses, %d draws\n", score.Wins, score.Losses, score.Draws)
	that.logger.Info("rps finished", "wins", score.Wins, "losses", score.Losses, "draws", score.Draws)

	return nil
}
