package domain

import (
	"fmt"
)

// BoardColumns is the number of categories on a board.
const BoardColumns = 5

// Category is one board column.
// Questions are sorted by PointValue with at most one per value.
type Category struct {
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Cell returns the index of the question worth pointValue, if any.
func (c Category) Cell(pointValue int) (int, bool) {
	for i, q := range c.Questions {
		if q.PointValue == pointValue {
			return i, true
		}
	}
	return 0, false
}

// Board is the ordered list of categories, in display order.
type Board []Category

// Question looks up a question by category and question index.
func (b Board) Question(categoryIndex, questionIndex int) (*Question, bool) {
	if categoryIndex < 0 || categoryIndex >= len(b) {
		return nil, false
	}
	questions := b[categoryIndex].Questions
	if questionIndex < 0 || questionIndex >= len(questions) {
		return nil, false
	}
	return &questions[questionIndex], true
}

// AllAnswered reports whether no playable question remains.
func (b Board) AllAnswered() bool {
	for _, c := range b {
		for _, q := range c.Questions {
			if !q.Answered {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for i, c := range b {
		qs := make([]Question, len(c.Questions))
		for j, q := range c.Questions {
			qs[j] = q.Clone()
		}
		out[i] = Category{Name: c.Name, Questions: qs}
	}
	return out
}

// Validate checks every question and the one-question-per-value rule.
func (b Board) Validate() error {
	if len(b) == 0 {
		return NewMalformedSnapshotError("board has no categories")
	}
	for ci, c := range b {
		seen := make(map[int]bool, len(c.Questions))
		prev := 0
		for qi, q := range c.Questions {
			if err := q.Validate(); err != nil {
				return fmt.Errorf("category %d question %d: %w", ci, qi, err)
			}
			if seen[q.PointValue] {
				return NewMalformedSnapshotError(fmt.Sprintf("category %d has duplicate point value %d", ci, q.PointValue))
			}
			if q.PointValue < prev {
				return NewMalformedSnapshotError(fmt.Sprintf("category %d is not sorted by point value", ci))
			}
			seen[q.PointValue] = true
			prev = q.PointValue
		}
	}
	return nil
}
