package service

import (
	"context"
	"strings"
	"sync"

	"quiz-board/internal/domain"
	"quiz-board/internal/logger"
	"quiz-board/internal/util"

	"go.uber.org/zap"
)

// BoardSource hands out a fresh, unanswered board for every new game.
type BoardSource interface {
	Board() domain.Board
}

// GameService drives one two-player game. Every command returns the state
// after the call and whether it was applied; commands that are not valid in
// the current state change nothing.
type GameService interface {
	State() domain.GameState
	OpenQuestion(ctx context.Context, categoryIndex, questionIndex int) (domain.GameState, bool)
	SubmitAnswer(ctx context.Context, value int) (domain.GameState, bool)
	CloseQuestion(ctx context.Context) (domain.GameState, bool)
	RevealWinner(ctx context.Context) (domain.GameState, bool)
	ConfirmNames(ctx context.Context, player1, player2 string) (domain.GameState, bool)
	RequestRestart(ctx context.Context) (domain.GameState, bool)
	CancelRestart(ctx context.Context) (domain.GameState, bool)
	ConfirmRestart(ctx context.Context) (domain.GameState, bool)
	Ping(ctx context.Context) error
}

type gameService struct {
	mu     sync.Mutex
	boards BoardSource
	store  SnapshotStore

	id       string
	mode     domain.Mode
	prevMode domain.Mode
	board    domain.Board
	scores   domain.Scores
	active   domain.Player
	names    domain.PlayerNames
	question *domain.ActiveQuestion
}

// NewGameService resumes the persisted game if there is a valid one,
// otherwise it starts a fresh game at name setup.
func NewGameService(ctx context.Context, boards BoardSource, store SnapshotStore) GameService {
	if store == nil {
		store = &noopSnapshotStore{}
	}
	s := &gameService{boards: boards, store: store}

	if snapshot, ok := store.Load(ctx); ok {
		s.id = snapshot.ID
		if s.id == "" {
			s.id = util.NewULID()
		}
		s.board = snapshot.Categories
		s.scores = snapshot.Scores
		s.active = snapshot.ActivePlayer
		s.names = snapshot.PlayerNames
		s.mode = domain.ModeOverview
		logger.Get().Info("Resumed game", zap.String("game_id", s.id),
			zap.Int("player1_score", s.scores.Player1), zap.Int("player2_score", s.scores.Player2))
		return s
	}

	s.reset()
	logger.Get().Info("Started new game", zap.String("game_id", s.id))
	return s
}

func (s *gameService) reset() {
	s.id = util.NewULID()
	s.board = s.boards.Board()
	s.scores = domain.Scores{}
	s.active = domain.Player1
	s.names = domain.DefaultPlayerNames()
	s.question = nil
	s.mode = domain.ModeNameSetup
	s.prevMode = ""
}

func (s *gameService) State() domain.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *gameService) stateLocked() domain.GameState {
	state := domain.GameState{
		ID:           s.id,
		Mode:         s.mode,
		Board:        s.board.Clone(),
		Scores:       s.scores,
		ActivePlayer: s.active,
		PlayerNames:  s.names,
		AllAnswered:  s.board.AllAnswered(),
	}
	if s.question != nil {
		q := *s.question
		if q.Selection != nil {
			v := *q.Selection
			q.Selection = &v
		}
		state.ActiveQuestion = &q
	}
	if state.AllAnswered {
		outcome := domain.DecideOutcome(s.scores)
		state.Outcome = &outcome
	}
	return state
}

func (s *gameService) OpenQuestion(ctx context.Context, categoryIndex, questionIndex int) (domain.GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != domain.ModeOverview {
		return s.stateLocked(), false
	}
	q, ok := s.board.Question(categoryIndex, questionIndex)
	if !ok || !q.Playable() {
		return s.stateLocked(), false
	}

	s.question = &domain.ActiveQuestion{
		CategoryIndex: categoryIndex,
		QuestionIndex: questionIndex,
		Phase:         domain.PhasePending,
	}
	s.mode = domain.ModeQuestionOpen
	logger.Get().Debug("Question opened", zap.String("game_id", s.id),
		zap.Int("category", categoryIndex), zap.Int("question", questionIndex))
	return s.stateLocked(), true
}

func (s *gameService) SubmitAnswer(ctx context.Context, value int) (domain.GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != domain.ModeQuestionOpen || s.question == nil || s.question.Phase != domain.PhasePending {
		return s.stateLocked(), false
	}
	q, ok := s.board.Question(s.question.CategoryIndex, s.question.QuestionIndex)
	if !ok || !q.Accepts(value) {
		return s.stateLocked(), false
	}

	correct := q.IsCorrect(value)
	selection := value
	s.question.Selection = &selection
	s.question.Correct = correct
	s.question.Phase = domain.PhaseEvaluated
	q.Answered = true
	if correct {
		s.scores.Add(s.active, q.PointValue)
	}

	logger.Get().Info("Answer evaluated", zap.String("game_id", s.id),
		zap.Stringer("player", s.active), zap.Int("points", q.PointValue), zap.Bool("correct", correct))
	s.save(ctx)
	return s.stateLocked(), true
}

func (s *gameService) CloseQuestion(ctx context.Context) (domain.GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != domain.ModeQuestionOpen || s.question == nil || s.question.Phase != domain.PhaseEvaluated {
		return s.stateLocked(), false
	}

	s.active = s.active.Other()
	s.question = nil
	s.mode = domain.ModeOverview
	s.save(ctx)
	return s.stateLocked(), true
}

func (s *gameService) RevealWinner(ctx context.Context) (domain.GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evaluated := s.mode == domain.ModeQuestionOpen && s.question != nil && s.question.Phase == domain.PhaseEvaluated
	if !(s.mode == domain.ModeOverview || evaluated) || !s.board.AllAnswered() {
		return s.stateLocked(), false
	}

	s.question = nil
	s.mode = domain.ModeWinAnnounced
	outcome := domain.DecideOutcome(s.scores)
	logger.Get().Info("Winner announced", zap.String("game_id", s.id),
		zap.Stringer("winner", outcome.Winner), zap.Bool("tie", outcome.Tie))
	return s.stateLocked(), true
}

func (s *gameService) ConfirmNames(ctx context.Context, player1, player2 string) (domain.GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != domain.ModeNameSetup {
		return s.stateLocked(), false
	}

	names := domain.DefaultPlayerNames()
	if n := strings.TrimSpace(player1); n != "" {
		names.Player1 = n
	}
	if n := strings.TrimSpace(player2); n != "" {
		names.Player2 = n
	}
	s.names = names
	s.mode = domain.ModeOverview
	s.save(ctx)
	return s.stateLocked(), true
}

func (s *gameService) RequestRestart(ctx context.Context) (domain.GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != domain.ModeOverview {
		return s.stateLocked(), false
	}
	s.prevMode = s.mode
	s.mode = domain.ModeRestartConfirm
	return s.stateLocked(), true
}

func (s *gameService) CancelRestart(ctx context.Context) (domain.GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != domain.ModeRestartConfirm {
		return s.stateLocked(), false
	}
	s.mode = s.prevMode
	if s.mode == "" {
		s.mode = domain.ModeOverview
	}
	s.prevMode = ""
	return s.stateLocked(), true
}

// ConfirmRestart drops the persisted game. Nothing is saved until the new
// players confirm their names, so a reload before that starts over again.
func (s *gameService) ConfirmRestart(ctx context.Context) (domain.GameState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != domain.ModeRestartConfirm && s.mode != domain.ModeWinAnnounced {
		return s.stateLocked(), false
	}

	if err := s.store.Clear(ctx); err != nil {
		logger.Get().Error("Failed to clear snapshot", zap.String("game_id", s.id), zap.Error(err))
	}
	previous := s.id
	s.reset()
	logger.Get().Info("Game restarted", zap.String("previous_game_id", previous), zap.String("game_id", s.id))
	return s.stateLocked(), true
}

func (s *gameService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// save writes through synchronously. A failure never undoes the transition.
func (s *gameService) save(ctx context.Context) {
	snapshot := &domain.Snapshot{
		ID:           s.id,
		Categories:   s.board.Clone(),
		Scores:       s.scores,
		ActivePlayer: s.active,
		PlayerNames:  s.names,
	}
	if err := s.store.Save(ctx, snapshot); err != nil {
		logger.Get().Error("Failed to save snapshot", zap.String("game_id", s.id), zap.Error(err))
	}
}
