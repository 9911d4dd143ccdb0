package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	app "github.com/rocketscienceinc/terminal-games/internal"
	"github.com/rocketscienceinc/terminal-games/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the selected game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "", "path to config.yml (default ./config.yml)")
	game := flag.String("game", "", "game to play: tictactoe, rps or words")
	sessionID := flag.String("session", "", "tic-tac-toe session id to resume")
	flag.Parse()

	conf := initConfig(*configPath)
	if *game != "" {
		conf.Game = *game
	}

	logger := initLogger(conf)

	opts := app.Options{
		SessionID: *sessionID,
		In:        os.Stdin,
		Out:       os.Stdout,
	}

	if err := app.RunApp(logger, conf, opts); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig(path string) *config.Config {
	// a missing .env is fine, the config file and real environment still apply
	_ = godotenv.Load()

	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}
		path = filepath.Join(baseDir, "./config.yml")
	}

	return config.MustLoad(path)
}

// initialize logger. Game output owns stdout, so logs go to stderr.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	if conf.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	}))
}
