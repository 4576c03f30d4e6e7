package bank

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"quiz-board/internal/domain"
)

// Normalize classifies every record and builds exactly domain.BoardColumns categories.
// It is pure: the same dataset always yields an equal board.
func Normalize(dataset Dataset) (domain.Board, []Issue) {
	var issues []Issue
	board := make(domain.Board, domain.BoardColumns)

	for ci := 0; ci < domain.BoardColumns; ci++ {
		if ci >= len(dataset) {
			issues = append(issues, Issue{Category: ci, Question: -1, Reason: "missing category, column left empty"})
			board[ci] = domain.Category{Questions: []domain.Question{}}
			continue
		}
		raw := dataset[ci]

		questions := make([]domain.Question, 0, len(raw.Questions))
		for qi, record := range raw.Questions {
			q, reason := classify(record)
			if reason != "" {
				issues = append(issues, Issue{Category: ci, Question: qi, Reason: reason})
			}
			questions = append(questions, q)
		}

		sort.SliceStable(questions, func(i, j int) bool {
			return questions[i].PointValue < questions[j].PointValue
		})

		kept := make([]domain.Question, 0, domain.MaxPointValue)
		seen := make(map[int]bool, domain.MaxPointValue)
		for _, q := range questions {
			if q.PointValue < domain.MinPointValue || q.PointValue > domain.MaxPointValue {
				issues = append(issues, Issue{Category: ci, Question: -1,
					Reason: fmt.Sprintf("point value %d is outside the grid, dropped %q", q.PointValue, q.Prompt)})
				continue
			}
			if seen[q.PointValue] {
				issues = append(issues, Issue{Category: ci, Question: -1,
					Reason: fmt.Sprintf("duplicate point value %d, dropped %q", q.PointValue, q.Prompt)})
				continue
			}
			seen[q.PointValue] = true
			kept = append(kept, q)
		}

		board[ci] = domain.Category{Name: raw.Name, Questions: kept}
	}

	if len(dataset) > domain.BoardColumns {
		issues = append(issues, Issue{Category: domain.BoardColumns, Question: -1,
			Reason: fmt.Sprintf("%d extra categories ignored", len(dataset)-domain.BoardColumns)})
	}
	return board, issues
}

// classify decides the question variant. A non-empty reason means the record was degraded.
func classify(record RawQuestion) (domain.Question, string) {
	prompt, _ := stringField(record, "question", "prompt")
	pointValue, _ := intField(record, "pointValue", "points")

	if options := stringsField(record, "answers", "options"); len(options) > 0 {
		correct, ok := intField(record, "correctAnswer", "correctIndex")
		if !ok || correct < 0 || correct >= len(options) {
			return domain.NewPlaceholderQuestion(prompt, pointValue), "choice question has no valid correct answer"
		}
		return domain.NewChoiceQuestion(prompt, pointValue, options, correct), ""
	}

	if media, ok := mediaField(record); ok {
		value, ok := intField(record, "correctValue", "correctAnswer")
		if !ok || value < domain.ScaleMin || value > domain.ScaleMax {
			return domain.NewPlaceholderQuestion(prompt, pointValue), "scale question has no valid correct value"
		}
		if prompt == "" {
			prompt = domain.ScaleLabel
		}
		return domain.NewScaleQuestion(prompt, pointValue, media, value), ""
	}

	return domain.NewPlaceholderQuestion(prompt, pointValue), ""
}

func stringField(record RawQuestion, keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := record[key].(string); ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}

// intField accepts whole numbers as decoded by either JSON (float64) or YAML (int).
func intField(record RawQuestion, keys ...string) (int, bool) {
	for _, key := range keys {
		switch v := record[key].(type) {
		case int:
			return v, true
		case int64:
			return int(v), true
		case uint64:
			return int(v), true
		case float64:
			if v == math.Trunc(v) && !math.IsInf(v, 0) {
				return int(v), true
			}
		}
	}
	return 0, false
}

func stringsField(record RawQuestion, keys ...string) []string {
	for _, key := range keys {
		list, ok := record[key].([]interface{})
		if !ok || len(list) == 0 {
			continue
		}
		out := make([]string, 0, len(list))
		for _, item := range list {
			if item == nil {
				out = append(out, "")
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	}
	return nil
}

func mediaField(record RawQuestion) (domain.Media, bool) {
	m, ok := asRecord(record["media"])
	if !ok {
		return domain.Media{}, false
	}
	locator, ok := stringField(m, "path", "locator", "src")
	if !ok {
		return domain.Media{}, false
	}
	kind, _ := stringField(m, "type", "kind")
	return domain.Media{Kind: mediaKind(kind, locator), Locator: locator}, true
}

func mediaKind(kind, locator string) domain.MediaKind {
	switch domain.MediaKind(strings.ToLower(kind)) {
	case domain.MediaImage:
		return domain.MediaImage
	case domain.MediaVideo:
		return domain.MediaVideo
	}
	switch strings.ToLower(filepath.Ext(locator)) {
	case ".mp4", ".webm", ".mov", ".ogv":
		return domain.MediaVideo
	default:
		return domain.MediaImage
	}
}
