package domain

import (
	"testing"
)

func validBoard() Board {
	return Board{
		{Name: "History", Questions: []Question{
			NewChoiceQuestion("q1", 1, []string{"A", "B"}, 0),
			NewScaleQuestion("q2", 2, Media{Kind: MediaImage, Locator: "x.png"}, 5),
		}},
		{Name: "Empty"},
		{Name: "Special", Questions: []Question{NewPlaceholderQuestion("", 3)}},
	}
}

func TestDecideOutcome(t *testing.T) {
	tests := []struct {
		name   string
		scores Scores
		want   Outcome
	}{
		{"player1 wins", Scores{Player1: 10, Player2: 4}, Outcome{Winner: Player1}},
		{"player2 wins", Scores{Player1: 3, Player2: 9}, Outcome{Winner: Player2}},
		{"tie", Scores{Player1: 40, Player2: 40}, Outcome{Winner: NoPlayer, Tie: true}},
		{"zero tie", Scores{}, Outcome{Winner: NoPlayer, Tie: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecideOutcome(tt.scores); got != tt.want {
				t.Errorf("DecideOutcome() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScores_Add(t *testing.T) {
	var s Scores
	s.Add(Player1, 3)
	s.Add(Player2, 5)
	s.Add(Player2, -4)
	s.Add(Player1, 0)

	if s.Of(Player1) != 3 || s.Of(Player2) != 5 {
		t.Errorf("unexpected scores %+v", s)
	}
}

func TestPlayer_Other(t *testing.T) {
	if Player1.Other() != Player2 || Player2.Other() != Player1 {
		t.Error("Other() must alternate between the two players")
	}
	if NoPlayer.Valid() || !Player1.Valid() || !Player2.Valid() {
		t.Error("Valid() mismatch")
	}
}

func TestBoard_AllAnswered(t *testing.T) {
	b := validBoard()
	if b.AllAnswered() {
		t.Fatal("fresh board must not be all answered")
	}
	b[0].Questions[0].Answered = true
	b[0].Questions[1].Answered = true
	if !b.AllAnswered() {
		t.Error("placeholders and empty categories must not block completion")
	}
	if !(Board{}).AllAnswered() {
		t.Error("empty board is trivially answered")
	}
}

func TestBoard_QuestionAndCell(t *testing.T) {
	b := validBoard()
	q, ok := b.Question(0, 1)
	if !ok || q.PointValue != 2 {
		t.Fatalf("Question(0,1) = %v, %v", q, ok)
	}
	if _, ok := b.Question(1, 0); ok {
		t.Error("empty category has no questions")
	}
	if _, ok := b.Question(-1, 0); ok {
		t.Error("negative category index must miss")
	}
	if _, ok := b.Question(9, 0); ok {
		t.Error("category index past end must miss")
	}
	if idx, ok := b[0].Cell(2); !ok || idx != 1 {
		t.Errorf("Cell(2) = %d, %v", idx, ok)
	}
	if _, ok := b[0].Cell(5); ok {
		t.Error("missing point value must leave the cell empty")
	}
}

func TestBoard_Clone(t *testing.T) {
	b := validBoard()
	c := b.Clone()
	c[0].Questions[0].Answered = true
	c[0].Name = "changed"
	if b[0].Questions[0].Answered || b[0].Name != "History" {
		t.Error("clone must not share state with the original")
	}
}

func TestSnapshot_Validate(t *testing.T) {
	valid := func() *Snapshot {
		return &Snapshot{
			ID:           "01HGZ8VNRYXS8QKNJV5GRWPWDQ",
			Categories:   validBoard(),
			ActivePlayer: Player1,
			PlayerNames:  DefaultPlayerNames(),
		}
	}

	tests := []struct {
		name    string
		mutate  func(s *Snapshot)
		wantErr bool
	}{
		{"valid", func(s *Snapshot) {}, false},
		{"bad active player", func(s *Snapshot) { s.ActivePlayer = 3 }, true},
		{"negative score", func(s *Snapshot) { s.Scores.Player2 = -1 }, true},
		{"no categories", func(s *Snapshot) { s.Categories = nil }, true},
		{"duplicate point value", func(s *Snapshot) {
			s.Categories[0].Questions[1] = NewChoiceQuestion("dup", 1, []string{"A"}, 0)
		}, true},
		{"unsorted", func(s *Snapshot) {
			qs := s.Categories[0].Questions
			qs[0], qs[1] = qs[1], qs[0]
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	var nilSnapshot *Snapshot
	if err := nilSnapshot.Validate(); err == nil {
		t.Error("nil snapshot must be rejected")
	}
}
