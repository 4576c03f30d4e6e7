package domain

import (
	"fmt"
)

// QuestionKind tags which payload a Question carries.
type QuestionKind string

const (
	KindChoice   QuestionKind = "choice"
	KindScale    QuestionKind = "scale"
	KindDisabled QuestionKind = "disabled"
)

// MediaKind is the type of asset shown with a scale question.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

const (
	MinPointValue = 1
	MaxPointValue = 5

	ScaleMin = 1
	ScaleMax = 10

	// NoCorrectIndex marks a placeholder that has no correct option.
	NoCorrectIndex = -1

	ScaleLabel          = "Rate it on a scale from 1 to 10"
	PlaceholderPrompt   = "Special question (coming soon)"
	PlaceholderFiller   = "—"
	placeholderOptCount = 4
)

// Media references an image or video asset.
type Media struct {
	Kind    MediaKind `json:"type"`
	Locator string    `json:"path"`
}

// ChoicePayload is a multiple choice question.
type ChoicePayload struct {
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// ScalePayload is a question rated on a 1..10 scale.
type ScalePayload struct {
	Label        string `json:"label"`
	Media        Media  `json:"media"`
	CorrectValue int    `json:"correctValue"`
}

// PlaceholderPayload fills a cell that cannot be played.
type PlaceholderPayload struct {
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// Question is a single grid cell. Exactly one payload matching Kind is set.
type Question struct {
	Prompt      string              `json:"prompt"`
	PointValue  int                 `json:"pointValue"`
	Answered    bool                `json:"answered"`
	Kind        QuestionKind        `json:"kind"`
	Choice      *ChoicePayload      `json:"choice,omitempty"`
	Scale       *ScalePayload       `json:"scale,omitempty"`
	Placeholder *PlaceholderPayload `json:"placeholder,omitempty"`
}

func NewChoiceQuestion(prompt string, pointValue int, options []string, correctIndex int) Question {
	opts := make([]string, len(options))
	copy(opts, options)
	return Question{
		Prompt:     prompt,
		PointValue: pointValue,
		Kind:       KindChoice,
		Choice:     &ChoicePayload{Options: opts, CorrectIndex: correctIndex},
	}
}

func NewScaleQuestion(prompt string, pointValue int, media Media, correctValue int) Question {
	return Question{
		Prompt:     prompt,
		PointValue: pointValue,
		Kind:       KindScale,
		Scale:      &ScalePayload{Label: ScaleLabel, Media: media, CorrectValue: correctValue},
	}
}

// NewPlaceholderQuestion builds a disabled cell. It is answered from creation.
func NewPlaceholderQuestion(prompt string, pointValue int) Question {
	if prompt == "" {
		prompt = PlaceholderPrompt
	}
	opts := make([]string, placeholderOptCount)
	for i := range opts {
		opts[i] = PlaceholderFiller
	}
	return Question{
		Prompt:      prompt,
		PointValue:  pointValue,
		Answered:    true,
		Kind:        KindDisabled,
		Placeholder: &PlaceholderPayload{Options: opts, CorrectIndex: NoCorrectIndex},
	}
}

// Playable reports whether the cell can still be opened.
func (q Question) Playable() bool {
	return q.Kind != KindDisabled && !q.Answered
}

// Accepts reports whether value lies in the question's answer domain.
func (q Question) Accepts(value int) bool {
	switch q.Kind {
	case KindChoice:
		return value >= 0 && value < len(q.Choice.Options)
	case KindScale:
		return value >= ScaleMin && value <= ScaleMax
	default:
		return false
	}
}

// IsCorrect compares a submitted value with the expected answer.
// Scale answers must match exactly.
func (q Question) IsCorrect(value int) bool {
	switch q.Kind {
	case KindChoice:
		return value == q.Choice.CorrectIndex
	case KindScale:
		return value == q.Scale.CorrectValue
	default:
		return false
	}
}

// Validate checks the tagged union invariants.
func (q Question) Validate() error {
	if q.PointValue < MinPointValue || q.PointValue > MaxPointValue {
		return NewMalformedSnapshotError(fmt.Sprintf("point value %d out of range", q.PointValue))
	}
	switch q.Kind {
	case KindChoice:
		if q.Choice == nil || q.Scale != nil || q.Placeholder != nil {
			return NewMalformedSnapshotError("choice question must carry only a choice payload")
		}
		if len(q.Choice.Options) == 0 {
			return NewMalformedSnapshotError("choice question has no options")
		}
		if q.Choice.CorrectIndex < 0 || q.Choice.CorrectIndex >= len(q.Choice.Options) {
			return NewMalformedSnapshotError(fmt.Sprintf("correct index %d out of range", q.Choice.CorrectIndex))
		}
	case KindScale:
		if q.Scale == nil || q.Choice != nil || q.Placeholder != nil {
			return NewMalformedSnapshotError("scale question must carry only a scale payload")
		}
		if q.Scale.CorrectValue < ScaleMin || q.Scale.CorrectValue > ScaleMax {
			return NewMalformedSnapshotError(fmt.Sprintf("correct value %d out of range", q.Scale.CorrectValue))
		}
	case KindDisabled:
		if q.Placeholder == nil || q.Choice != nil || q.Scale != nil {
			return NewMalformedSnapshotError("placeholder must carry only a placeholder payload")
		}
		if !q.Answered {
			return NewMalformedSnapshotError("placeholder must be answered")
		}
	default:
		return NewMalformedSnapshotError(fmt.Sprintf("unknown question kind %q", q.Kind))
	}
	return nil
}

// Clone returns a deep copy.
func (q Question) Clone() Question {
	out := q
	if q.Choice != nil {
		c := *q.Choice
		c.Options = append([]string(nil), q.Choice.Options...)
		out.Choice = &c
	}
	if q.Scale != nil {
		s := *q.Scale
		out.Scale = &s
	}
	if q.Placeholder != nil {
		p := *q.Placeholder
		p.Options = append([]string(nil), q.Placeholder.Options...)
		out.Placeholder = &p
	}
	return out
}
