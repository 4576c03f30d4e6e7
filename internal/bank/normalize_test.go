package bank

import (
	"testing"

	"quiz-board/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func choiceRecord(prompt string, points float64, correct float64, answers ...interface{}) RawQuestion {
	return RawQuestion{
		"question":      prompt,
		"answers":       answers,
		"correctAnswer": correct,
		"pointValue":    points,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		record     RawQuestion
		wantKind   domain.QuestionKind
		wantPrompt string
		wantIssue  bool
	}{
		{
			name:       "choice copied through",
			record:     choiceRecord("Capital?", 3, 2, "A", "B", "C", "D"),
			wantKind:   domain.KindChoice,
			wantPrompt: "Capital?",
		},
		{
			name: "media without options becomes scale",
			record: RawQuestion{
				"prompt":        "How old is this?",
				"media":         map[string]interface{}{"type": "image", "path": "img/1.png"},
				"correctAnswer": float64(7),
				"pointValue":    float64(2),
			},
			wantKind:   domain.KindScale,
			wantPrompt: "How old is this?",
		},
		{
			name: "scale without prompt uses the rating label",
			record: RawQuestion{
				"media":        map[string]interface{}{"path": "clip.mp4"},
				"correctValue": 4,
				"pointValue":   5,
			},
			wantKind:   domain.KindScale,
			wantPrompt: domain.ScaleLabel,
		},
		{
			name:       "unknown shape becomes placeholder",
			record:     RawQuestion{"prompt": "Guess the song", "pointValue": float64(4)},
			wantKind:   domain.KindDisabled,
			wantPrompt: "Guess the song",
		},
		{
			name:       "empty record becomes placeholder with default prompt",
			record:     RawQuestion{},
			wantKind:   domain.KindDisabled,
			wantPrompt: domain.PlaceholderPrompt,
		},
		{
			name:       "empty answers list is not a choice",
			record:     RawQuestion{"answers": []interface{}{}, "pointValue": float64(1)},
			wantKind:   domain.KindDisabled,
			wantPrompt: domain.PlaceholderPrompt,
		},
		{
			name:       "choice with out of range correct answer degrades",
			record:     choiceRecord("Broken", 1, 9, "A", "B"),
			wantKind:   domain.KindDisabled,
			wantPrompt: "Broken",
			wantIssue:  true,
		},
		{
			name: "scale with out of range value degrades",
			record: RawQuestion{
				"media":         map[string]interface{}{"path": "a.png"},
				"correctAnswer": float64(12),
				"pointValue":    float64(1),
			},
			wantKind:   domain.KindDisabled,
			wantPrompt: domain.PlaceholderPrompt,
			wantIssue:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, reason := classify(tt.record)
			assert.Equal(t, tt.wantKind, q.Kind)
			assert.Equal(t, tt.wantPrompt, q.Prompt)
			assert.Equal(t, tt.wantIssue, reason != "")
			if q.Kind == domain.KindDisabled {
				assert.True(t, q.Answered, "placeholder must be answered from creation")
				assert.Equal(t, domain.NoCorrectIndex, q.Placeholder.CorrectIndex)
			} else {
				assert.False(t, q.Answered)
			}
		})
	}
}

func TestClassify_MediaKind(t *testing.T) {
	q, _ := classify(RawQuestion{
		"media":        map[string]interface{}{"path": "clips/intro.webm"},
		"correctValue": 3,
		"pointValue":   1,
	})
	require.Equal(t, domain.KindScale, q.Kind)
	assert.Equal(t, domain.MediaVideo, q.Scale.Media.Kind)
	assert.Equal(t, "clips/intro.webm", q.Scale.Media.Locator)
	assert.Equal(t, 3, q.Scale.CorrectValue)
}

func TestNormalize_SortsAndFiltersGrid(t *testing.T) {
	dataset := Dataset{
		{Name: "History", Questions: []RawQuestion{
			choiceRecord("five", 5, 0, "A"),
			choiceRecord("one", 1, 0, "A"),
			choiceRecord("three", 3, 0, "A"),
			choiceRecord("three again", 3, 0, "A"),
			{"question": "no points", "answers": []interface{}{"A"}, "correctAnswer": float64(0)},
			choiceRecord("nine", 9, 0, "A"),
		}},
	}

	board, issues := Normalize(dataset)

	require.Len(t, board, domain.BoardColumns)
	history := board[0]
	assert.Equal(t, "History", history.Name)
	require.Len(t, history.Questions, 3)
	assert.Equal(t, []int{1, 3, 5}, []int{
		history.Questions[0].PointValue,
		history.Questions[1].PointValue,
		history.Questions[2].PointValue,
	})
	assert.Equal(t, "three", history.Questions[1].Prompt, "first record wins for a duplicate point value")

	_, ok := history.Cell(2)
	assert.False(t, ok, "missing point values are never fabricated")

	for ci := 1; ci < domain.BoardColumns; ci++ {
		assert.Empty(t, board[ci].Questions)
	}
	assert.NotEmpty(t, issues)
	require.NoError(t, board[:1].Validate())
}

func TestNormalize_OnlyFirstFiveCategories(t *testing.T) {
	dataset := make(Dataset, 7)
	for i := range dataset {
		dataset[i] = RawCategory{Name: string(rune('A' + i))}
	}

	board, _ := Normalize(dataset)

	require.Len(t, board, domain.BoardColumns)
	assert.Equal(t, "A", board[0].Name)
	assert.Equal(t, "E", board[4].Name)
}

func TestNormalize_Deterministic(t *testing.T) {
	dataset := Dataset{
		{Name: "Mixed", Questions: []RawQuestion{
			choiceRecord("c", 2, 1, "A", "B"),
			{"media": map[string]interface{}{"path": "a.png"}, "correctAnswer": float64(6), "pointValue": float64(1)},
			{"prompt": "later", "pointValue": float64(3)},
		}},
	}

	first, firstIssues := Normalize(dataset)
	second, secondIssues := Normalize(dataset)

	assert.Equal(t, first, second)
	assert.Equal(t, firstIssues, secondIssues)

	first[0].Questions[0].Answered = true
	assert.False(t, second[0].Questions[0].Answered, "boards must not share questions")
}
