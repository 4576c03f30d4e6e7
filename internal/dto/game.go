package dto

import "quiz-board/internal/domain"

// ConfirmNamesRequest represents the player names entered at game start
// @Description Request body for confirming player names
type ConfirmNamesRequest struct {
	Player1 string `json:"player1" example:"Ada"`
	Player2 string `json:"player2" example:"Linus"`
}

// SubmitAnswerRequest carries an option index for choice questions
// or a 1..10 rating for scale questions
// @Description Request body for answering the open question
type SubmitAnswerRequest struct {
	Value *int `json:"value" example:"2"`
}

// GameResponse is returned by every game command
type GameResponse struct {
	Applied bool     `json:"applied"`
	Game    GameView `json:"game"`
}

// GameView is the public view of the game
// @Description Board, scores and the currently open modal
type GameView struct {
	ID             string              `json:"id"`
	Mode           string              `json:"mode"`
	Categories     []CategoryView      `json:"categories"`
	Scores         domain.Scores       `json:"scores"`
	ActivePlayer   string              `json:"active_player"`
	PlayerNames    domain.PlayerNames  `json:"player_names"`
	ActiveQuestion *ActiveQuestionView `json:"active_question,omitempty"`
	AllAnswered    bool                `json:"all_answered"`
	Outcome        *OutcomeView        `json:"outcome,omitempty"`
}

type CategoryView struct {
	Name      string         `json:"name"`
	Questions []QuestionView `json:"questions"`
}

// QuestionView hides the correct answer until the question is answered.
type QuestionView struct {
	Prompt       string        `json:"prompt"`
	PointValue   int           `json:"point_value"`
	Answered     bool          `json:"answered"`
	Kind         string        `json:"kind"`
	Options      []string      `json:"options,omitempty"`
	Label        string        `json:"label,omitempty"`
	Media        *domain.Media `json:"media,omitempty"`
	CorrectIndex *int          `json:"correct_index,omitempty"`
	CorrectValue *int          `json:"correct_value,omitempty"`
}

type ActiveQuestionView struct {
	CategoryIndex int    `json:"category_index"`
	QuestionIndex int    `json:"question_index"`
	Phase         string `json:"phase"`
	Selection     *int   `json:"selection,omitempty"`
	Correct       *bool  `json:"correct,omitempty"`
}

type OutcomeView struct {
	Winner     string `json:"winner,omitempty"`
	WinnerName string `json:"winner_name,omitempty"`
	Tie        bool   `json:"tie"`
}

// HealthResponse reports process and snapshot store health
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// NewGameView converts the service state into the API view.
func NewGameView(state domain.GameState) GameView {
	view := GameView{
		ID:           state.ID,
		Mode:         string(state.Mode),
		Categories:   make([]CategoryView, 0, len(state.Board)),
		Scores:       state.Scores,
		ActivePlayer: state.ActivePlayer.String(),
		PlayerNames:  state.PlayerNames,
		AllAnswered:  state.AllAnswered,
	}

	for _, c := range state.Board {
		cv := CategoryView{Name: c.Name, Questions: make([]QuestionView, 0, len(c.Questions))}
		for _, q := range c.Questions {
			cv.Questions = append(cv.Questions, newQuestionView(q))
		}
		view.Categories = append(view.Categories, cv)
	}

	if aq := state.ActiveQuestion; aq != nil {
		av := &ActiveQuestionView{
			CategoryIndex: aq.CategoryIndex,
			QuestionIndex: aq.QuestionIndex,
			Phase:         string(aq.Phase),
			Selection:     aq.Selection,
		}
		if aq.Phase == domain.PhaseEvaluated {
			correct := aq.Correct
			av.Correct = &correct
		}
		view.ActiveQuestion = av
	}

	if o := state.Outcome; o != nil {
		ov := &OutcomeView{Tie: o.Tie}
		if !o.Tie {
			ov.Winner = o.Winner.String()
			ov.WinnerName = state.PlayerNames.Of(o.Winner)
		}
		view.Outcome = ov
	}
	return view
}

func newQuestionView(q domain.Question) QuestionView {
	qv := QuestionView{
		Prompt:     q.Prompt,
		PointValue: q.PointValue,
		Answered:   q.Answered,
		Kind:       string(q.Kind),
	}
	switch q.Kind {
	case domain.KindChoice:
		qv.Options = append([]string(nil), q.Choice.Options...)
		if q.Answered {
			idx := q.Choice.CorrectIndex
			qv.CorrectIndex = &idx
		}
	case domain.KindScale:
		qv.Label = q.Scale.Label
		media := q.Scale.Media
		qv.Media = &media
		if q.Answered {
			v := q.Scale.CorrectValue
			qv.CorrectValue = &v
		}
	case domain.KindDisabled:
		qv.Options = append([]string(nil), q.Placeholder.Options...)
	}
	return qv
}
