package domain

import (
	"fmt"
)

// Player identifies one of the two seats. NoPlayer marks the absent winner of a tie.
type Player int

const (
	NoPlayer Player = 0
	Player1  Player = 1
	Player2  Player = 2
)

const (
	DefaultPlayer1Name = "Player 1"
	DefaultPlayer2Name = "Player 2"
)

// Other returns the opponent.
func (p Player) Other() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "none"
	}
}

// Scores holds the points of both players.
type Scores struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
}

func (s Scores) Of(p Player) int {
	if p == Player2 {
		return s.Player2
	}
	return s.Player1
}

// Add credits points to p. Negative amounts are ignored.
func (s *Scores) Add(p Player, points int) {
	if points <= 0 {
		return
	}
	if p == Player2 {
		s.Player2 += points
		return
	}
	s.Player1 += points
}

// PlayerNames maps seats to display names.
type PlayerNames struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

func DefaultPlayerNames() PlayerNames {
	return PlayerNames{Player1: DefaultPlayer1Name, Player2: DefaultPlayer2Name}
}

func (n PlayerNames) Of(p Player) string {
	if p == Player2 {
		return n.Player2
	}
	return n.Player1
}

// Mode is the modal surface currently open. At most one is open at a time.
type Mode string

const (
	ModeNameSetup      Mode = "name_setup"
	ModeOverview       Mode = "overview"
	ModeQuestionOpen   Mode = "question_open"
	ModeRestartConfirm Mode = "restart_confirm"
	ModeWinAnnounced   Mode = "win_announced"
)

// QuestionPhase is the sub-state of ModeQuestionOpen.
type QuestionPhase string

const (
	PhasePending   QuestionPhase = "pending"
	PhaseEvaluated QuestionPhase = "evaluated"
)

// ActiveQuestion points at the open question. It is never persisted.
type ActiveQuestion struct {
	CategoryIndex int           `json:"categoryIndex"`
	QuestionIndex int           `json:"questionIndex"`
	Phase         QuestionPhase `json:"phase"`
	Selection     *int          `json:"selection,omitempty"`
	Correct       bool          `json:"correct"`
}

// Outcome is the result of a finished game.
type Outcome struct {
	Winner Player `json:"winner"`
	Tie    bool   `json:"tie"`
}

// DecideOutcome picks the player with the strictly higher score. A tie has no winner.
func DecideOutcome(s Scores) Outcome {
	switch {
	case s.Player1 > s.Player2:
		return Outcome{Winner: Player1}
	case s.Player2 > s.Player1:
		return Outcome{Winner: Player2}
	default:
		return Outcome{Winner: NoPlayer, Tie: true}
	}
}

// Snapshot is the durable part of a game. The open question and modal are excluded,
// so a restored game always lands on the overview.
type Snapshot struct {
	ID           string      `json:"id"`
	Categories   Board       `json:"categories"`
	Scores       Scores      `json:"scores"`
	ActivePlayer Player      `json:"activePlayer"`
	PlayerNames  PlayerNames `json:"playerNames"`
}

// Validate rejects snapshots that cannot be resumed.
func (s *Snapshot) Validate() error {
	if s == nil {
		return NewMalformedSnapshotError("snapshot is empty")
	}
	if !s.ActivePlayer.Valid() {
		return NewMalformedSnapshotError(fmt.Sprintf("invalid active player %d", s.ActivePlayer))
	}
	if s.Scores.Player1 < 0 || s.Scores.Player2 < 0 {
		return NewMalformedSnapshotError("scores must not be negative")
	}
	return s.Categories.Validate()
}

// GameState is the read-only view handed to the presentation layer.
type GameState struct {
	ID             string          `json:"id"`
	Mode           Mode            `json:"mode"`
	Board          Board           `json:"board"`
	Scores         Scores          `json:"scores"`
	ActivePlayer   Player          `json:"activePlayer"`
	PlayerNames    PlayerNames     `json:"playerNames"`
	ActiveQuestion *ActiveQuestion `json:"activeQuestion,omitempty"`
	AllAnswered    bool            `json:"allAnswered"`
	Outcome        *Outcome        `json:"outcome,omitempty"`
}
