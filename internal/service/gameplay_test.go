package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/terminal-games/internal/apperror"
	"github.com/rocketscienceinc/terminal-games/internal/entity"
	"github.com/rocketscienceinc/terminal-games/internal/repository"
	"github.com/rocketscienceinc/terminal-games/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

// scriptedRandom returns the queued values in order.
type scriptedRandom struct {
	values []int
}

func (that *scriptedRandom) IntN(int) int {
	value := that.values[0]
	that.values = that.values[1:]
	return value
}

type mockSessionRepo struct {
	mock.Mock
}

func (that *mockSessionRepo) CreateOrUpdate(ctx context.Context, session *entity.Session) error {
	return that.Called(ctx, session).Error(0)
}

func (that *mockSessionRepo) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	args := that.Called(ctx, id)
	session, _ := args.Get(0).(*entity.Session)
	return session, args.Error(1)
}

func (that *mockSessionRepo) DeleteByID(ctx context.Context, id string) error {
	return that.Called(ctx, id).Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func position(t *testing.T, col, row int) tictactoe.Position {
	t.Helper()

	pos, err := tictactoe.NewPosition(col, row)
	require.NoError(t, err)

	return pos
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Marks an empty cell", func(t *testing.T) {
		bot := NewBotService(&scriptedRandom{values: []int{4}})
		board := tictactoe.NewBoard()

		pos, err := bot.MakeTurn(&board)

		require.NoError(t, err)
		assert.Equal(t, position(t, 1, 1), pos)
		assert.Equal(t, tictactoe.OpponentMark, board.At(pos))
	})

	t.Run("Returns ErrNoAvailableMoves on a full board", func(t *testing.T) {
		bot := NewBotService(&scriptedRandom{})
		board := tictactoe.NewBoard()
		for row := range tictactoe.Size {
			for col := range tictactoe.Size {
				require.NoError(t, board.ApplyHumanMove(position(t, col, row)))
			}
		}

		_, err := bot.MakeTurn(&board)

		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})
}

func TestGamePlayService_StartSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a session with a generated id", func(t *testing.T) {
		repo := repository.NewMemorySessionRepository()
		service := NewGamePlayService(discardLogger(), repo, NewBotService(&scriptedRandom{}))

		session, err := service.StartSession(ctx, "")

		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, tictactoe.InProgress, session.Result)

		stored, err := repo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session, stored)
	})

	t.Run("Creates a session with the requested id", func(t *testing.T) {
		repo := repository.NewMemorySessionRepository()
		service := NewGamePlayService(discardLogger(), repo, NewBotService(&scriptedRandom{}))

		session, err := service.StartSession(ctx, "kitchen")

		require.NoError(t, err)
		assert.Equal(t, "kitchen", session.ID)
	})

	t.Run("Resumes a stored session", func(t *testing.T) {
		// Given: a stored session with two moves
		repo := repository.NewMemorySessionRepository()
		existing := entity.NewSession("kitchen")
		require.NoError(t, existing.Board.ApplyHumanMove(position(t, 0, 0)))
		existing.Moves = 1
		require.NoError(t, repo.CreateOrUpdate(ctx, existing))
		service := NewGamePlayService(discardLogger(), repo, NewBotService(&scriptedRandom{}))

		// When: starting with the same id
		session, err := service.StartSession(ctx, "kitchen")

		// Then: the stored board is returned
		require.NoError(t, err)
		assert.Equal(t, existing, session)
	})

	t.Run("Returns error if the repository fails", func(t *testing.T) {
		repo := &mockSessionRepo{}
		repo.On("GetByID", mock.Anything, "kitchen").Return(nil, errRedisDown).Once()
		service := NewGamePlayService(discardLogger(), repo, NewBotService(&scriptedRandom{}))

		session, err := service.StartSession(ctx, "kitchen")

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, session)
		repo.AssertExpectations(t)
	})
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Player moves then the bot replies", func(t *testing.T) {
		// Given: a new session and a bot that takes the first empty cell
		repo := repository.NewMemorySessionRepository()
		service := NewGamePlayService(discardLogger(), repo, NewBotService(&scriptedRandom{values: []int{0}}))
		session, err := service.StartSession(ctx, "123")
		require.NoError(t, err)

		// When: the player takes the centre
		turn, err := service.MakeTurn(ctx, session.ID, position(t, 1, 1))

		// Then: the bot took (0,0) and the snapshot was saved
		require.NoError(t, err)
		assert.True(t, turn.OpponentMoved)
		assert.Equal(t, position(t, 0, 0), turn.OpponentMove)
		assert.Equal(t, tictactoe.InProgress, turn.Result)
		assert.Equal(t, 2, turn.Session.Moves)

		stored, err := repo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, tictactoe.PlayerMark, stored.Board.At(position(t, 1, 1)))
		assert.Equal(t, tictactoe.OpponentMark, stored.Board.At(position(t, 0, 0)))
	})

	t.Run("Error on cell already occupied leaves the session unchanged", func(t *testing.T) {
		repo := repository.NewMemorySessionRepository()
		service := NewGamePlayService(discardLogger(), repo, NewBotService(&scriptedRandom{values: []int{0}}))
		_, err := service.StartSession(ctx, "123")
		require.NoError(t, err)
		_, err = service.MakeTurn(ctx, "123", position(t, 1, 1))
		require.NoError(t, err)
		before, err := repo.GetByID(ctx, "123")
		require.NoError(t, err)

		// When: the player moves onto the bot's cell
		turn, err := service.MakeTurn(ctx, "123", position(t, 0, 0))

		// Then: ErrAlreadyOccupied is returned and nothing is stored
		require.ErrorIs(t, err, apperror.ErrAlreadyOccupied)
		assert.Nil(t, turn)
		after, err := repo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("Winning move ends the game without a bot reply", func(t *testing.T) {
		// Given: the player already holds (0,0) and (1,0)
		repo := repository.NewMemorySessionRepository()
		session := entity.NewSession("123")
		require.NoError(t, session.Board.ApplyHumanMove(position(t, 0, 0)))
		require.NoError(t, session.Board.ApplyHumanMove(position(t, 1, 0)))
		session.Moves = 2
		require.NoError(t, repo.CreateOrUpdate(ctx, session))
		service := NewGamePlayService(discardLogger(), repo, NewBotService(&scriptedRandom{}))

		// When: the player completes the top row
		turn, err := service.MakeTurn(ctx, "123", position(t, 2, 0))

		// Then: the player wins, the bot never moved and the snapshot is removed
		require.NoError(t, err)
		assert.Equal(t, tictactoe.PlayerWins, turn.Result)
		assert.False(t, turn.OpponentMoved)

		_, err = repo.GetByID(ctx, "123")
		require.ErrorIs(t, err, repository.ErrSessionNotFound)
	})

	t.Run("Bot completes a line", func(t *testing.T) {
		// Given: the opponent holds (0,1) and (1,1)
		repo := repository.NewMemorySessionRepository()
		session := entity.NewSession("123")
		session.Board = boardWith(t, map[[2]int]tictactoe.Cell{
			{0, 0}: tictactoe.PlayerMark,
			{1, 0}: tictactoe.PlayerMark,
			{0, 1}: tictactoe.OpponentMark,
			{1, 1}: tictactoe.OpponentMark,
		})
		require.NoError(t, repo.CreateOrUpdate(ctx, session))
		// empty cells after the player's move to (2,2): (2,0), (2,1), (0,2), (1,2); index 1 is (2,1)
		service := NewGamePlayService(discardLogger(), repo, NewBotService(&scriptedRandom{values: []int{1}}))

		turn, err := service.MakeTurn(ctx, "123", position(t, 2, 2))

		require.NoError(t, err)
		assert.Equal(t, position(t, 2, 1), turn.OpponentMove)
		assert.Equal(t, tictactoe.OpponentWins, turn.Result)
	})

	t.Run("Returns ErrGameFinished for a finished session", func(t *testing.T) {
		repo := &mockSessionRepo{}
		repo.On("GetByID", mock.Anything, "123").
			Return(&entity.Session{ID: "123", Result: tictactoe.Draw}, nil).
			Once()
		service := NewGamePlayService(discardLogger(), repo, NewBotService(&scriptedRandom{}))

		_, err := service.MakeTurn(ctx, "123", position(t, 0, 0))

		require.ErrorIs(t, err, apperror.ErrGameFinished)
		repo.AssertExpectations(t)
	})

	t.Run("Returns error if saving fails", func(t *testing.T) {
		repo := &mockSessionRepo{}
		repo.On("GetByID", mock.Anything, "123").Return(entity.NewSession("123"), nil).Once()
		repo.On("CreateOrUpdate", mock.Anything, mock.AnythingOfType("*entity.Session")).Return(errRedisDown).Once()
		service := NewGamePlayService(discardLogger(), repo, NewBotService(&scriptedRandom{values: []int{0}}))

		_, err := service.MakeTurn(ctx, "123", position(t, 1, 1))

		require.ErrorIs(t, err, errRedisDown)
		repo.AssertExpectations(t)
	})
}

func TestGamePlayService_AbandonSession(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemorySessionRepository()
	service := NewGamePlayService(discardLogger(), repo, NewBotService(&scriptedRandom{}))

	_, err := service.StartSession(ctx, "123")
	require.NoError(t, err)

	require.NoError(t, service.AbandonSession(ctx, "123"))
	_, err = repo.GetByID(ctx, "123")
	require.ErrorIs(t, err, repository.ErrSessionNotFound)

	// abandoning twice is not an error
	require.NoError(t, service.AbandonSession(ctx, "123"))
}

func boardWith(t *testing.T, marks map[[2]int]tictactoe.Cell) tictactoe.Board {
	t.Helper()

	board := tictactoe.NewBoard()
	for at, mark := range marks {
		pos := position(t, at[0], at[1])
		switch mark {
		case tictactoe.PlayerMark:
			require.NoError(t, board.ApplyHumanMove(pos))
		case tictactoe.OpponentMark:
			// scan for exactly this cell: pick its index among the empty cells
			index := emptyIndex(board, pos)
			_, moved := board.ApplyRandomOpponentMove(&scriptedRandom{values: []int{index}})
			require.True(t, moved)
		}
	}

	return board
}

func emptyIndex(board tictactoe.Board, target tictactoe.Position) int {
	index := 0
	for row, cells := range board.Rows() {
		for col, cell := range cells {
			if cell != tictactoe.Empty {
				continue
			}
			if col == target.Col() && row == target.Row() {
				return index
			}
			index++
		}
	}
	return -1
}
