package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/terminal-games/internal/entity"
	"github.com/rocketscienceinc/terminal-games/internal/repository"
	"github.com/rocketscienceinc/terminal-games/internal/tictactoe"
)

// TurnResult describes one full turn: the player's move and, if the game went on, the opponent's reply.
type TurnResult struct {
	Session       *entity.Session
	OpponentMove  tictactoe.Position
	OpponentMoved bool
	Result        tictactoe.GameResult
}

type GamePlayService interface {
	StartSession(ctx context.Context, id string) (*entity.Session, error)
	MakeTurn(ctx context.Context, sessionID string, pos tictactoe.Position) (*TurnResult, error)
	AbandonSession(ctx context.Context, id string) error
}

type gamePlayService struct {
	logger *slog.Logger

	sessionRepo repository.SessionRepository
	botService  BotService
}

func NewGamePlayService(logger *slog.Logger, sessionRepo repository.SessionRepository, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:      logger.With("component", "gameplay"),
		sessionRepo: sessionRepo,
		botService:  botService,
	}
}

// StartSession resumes the stored game with that id or starts a new one. An empty id gets a fresh uuid.
func (that *gamePlayService) StartSession(ctx context.Context, id string) (*entity.Session, error) {
	if id != "" {
		session, err := that.sessionRepo.GetByID(ctx, id)
		switch {
		case err == nil:
			that.logger.Info("resuming session", "session", id, "moves", session.Moves)
			return session, nil
		case !errors.Is(err, repository.ErrSessionNotFound):
			return nil, fmt.Errorf("failed to get session by id: %w", err)
		}
	} else {
		id = uuid.NewString()
	}

	session := entity.NewSession(id)
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.logger.Info("new session", "session", id)

	return session, nil
}

func (that *gamePlayService) MakeTurn(ctx context.Context, sessionID string, pos tictactoe.Position) (*TurnResult, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}

	if err = session.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if err = session.Board.ApplyHumanMove(pos); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}
	session.Moves++
	session.UpdateGameState()

	turn := &TurnResult{Session: session}

	if !session.IsFinished() {
		turn.OpponentMove, err = that.botService.MakeTurn(&session.Board)
		if err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
		turn.OpponentMoved = true
		session.Moves++
		session.UpdateGameState()
	}

	turn.Result = session.Result

	if session.IsFinished() {
		that.logger.Info("session finished", "session", session.ID, "result", session.Result, "moves", session.Moves)

		if err = that.sessionRepo.DeleteByID(ctx, session.ID); err != nil {
			return nil, fmt.Errorf("failed to delete finished session: %w", err)
		}

		return turn, nil
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return turn, nil
}

func (that *gamePlayService) AbandonSession(ctx context.Context, id string) error {
	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
