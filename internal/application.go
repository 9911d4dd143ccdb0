package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/config"
	"github.com/rocketscienceinc/terminal-games/internal/repository"
	"github.com/rocketscienceinc/terminal-games/internal/repository/storage"
	"github.com/rocketscienceinc/terminal-games/internal/service"
	"github.com/rocketscienceinc/terminal-games/internal/transport/console"
	"github.com/rocketscienceinc/terminal-games/internal/words"
)

// Options are the per-run settings that do not come from the config file.
type Options struct {
	SessionID string
	In        io.Reader
	Out       io.Writer
}

type game interface {
	Run(ctx context.Context) error
}

// RunApp - runs the selected game until it ends, input closes or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, opts Options) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	err := Run(ctx, logger, conf, opts)
	if errors.Is(err, context.Canceled) {
		log.Info("Application context canceled, shutting down")
		return nil
	}

	return err
}

// Run wires the game named in conf and plays it on opts.In and opts.Out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, opts Options) error {
	log := logger.With("component", "app")

	rng := newRandom(conf.Seed)

	var selected game

	switch conf.Game {
	case config.GameTicTacToe:
		sessionRepo, closeRepo, err := newSessionRepository(ctx, conf)
		if err != nil {
			return err
		}
		defer func() {
			if err = closeRepo(); err != nil {
				log.Error("could not close session storage", "error", err)
			}
		}()

		gamePlay := service.NewGamePlayService(logger, sessionRepo, service.NewBotService(rng))
		selected = console.NewTicTacToe(logger, opts.In, opts.Out, gamePlay, opts.SessionID)
	case config.GameRPS:
		selected = console.NewRockPaperScissors(logger, opts.In, opts.Out, rng)
	case config.GameWords:
		list, err := words.LoadList(conf.Words.File)
		if err != nil {
			return fmt.Errorf("failed to load word list: %w", err)
		}

		target := words.Choose(list, rng)
		log.Debug("word chosen", "length", len([]rune(target)), "list", len(list))
		selected = console.NewWords(logger, opts.In, opts.Out, words.NewGame(target, conf.Words.MaxAttempts))
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownGame, conf.Game)
	}

	log.Info("Starting game", "game", conf.Game)

	if err := selected.Run(ctx); err != nil {
		return fmt.Errorf("%s failed: %w", conf.Game, err)
	}

	return nil
}

// newRandom seeds a PCG generator; seed 0 draws one from the clock.
func newRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
}

func newSessionRepository(ctx context.Context, conf *config.Config) (repository.SessionRepository, func() error, error) {
	switch conf.Storage.Driver {
	case config.StorageMemory:
		return repository.NewMemorySessionRepository(), func() error { return nil }, nil
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, apperror.ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedis(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewSessionRepository(redisStorage, conf.Storage.TTL), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownStorage, conf.Storage.Driver)
	}
}
