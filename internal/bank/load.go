package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quiz-board/internal/domain"
	"quiz-board/internal/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Loader holds a parsed dataset and hands out fresh boards built from it.
type Loader struct {
	dataset Dataset
}

// NewLoader wraps an already parsed dataset.
func NewLoader(dataset Dataset) *Loader {
	return &Loader{dataset: dataset}
}

// LoadFile reads a JSON or YAML question bank. The format follows the file extension.
func LoadFile(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewInvalidBankError("failed to read question bank", err).WithContext("path", path)
	}
	loader, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, err
	}

	_, issues := Normalize(loader.dataset)
	for _, issue := range issues {
		logger.Get().Warn("Question bank record normalized",
			zap.String("path", path),
			zap.Int("category", issue.Category),
			zap.Int("question", issue.Question),
			zap.String("reason", issue.Reason),
		)
	}
	logger.Get().Info("Question bank loaded",
		zap.String("path", path),
		zap.Int("entries", len(loader.dataset)),
		zap.Int("issues", len(issues)),
	)
	return loader, nil
}

// FormatFromPath picks YAML for .yaml/.yml and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes a dataset. Only an unparsable document is an error;
// entries of unexpected shape are kept and left to Normalize.
func Parse(data []byte, format Format) (*Loader, error) {
	var doc interface{}
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
			return nil, domain.NewInvalidBankError("parse yaml", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, domain.NewInvalidBankError("parse json", err)
		}
	default:
		return nil, domain.NewInvalidBankError(fmt.Sprintf("unsupported format %q", format), nil)
	}

	entries, ok := doc.([]interface{})
	if !ok {
		return nil, domain.NewInvalidBankError("question bank must be a list of categories", nil)
	}

	dataset := make(Dataset, 0, len(entries))
	for _, entry := range entries {
		dataset = append(dataset, toRawCategory(entry))
	}
	return NewLoader(dataset), nil
}

// Board builds a fresh board. Every call returns an independent copy.
func (l *Loader) Board() domain.Board {
	board, _ := Normalize(l.dataset)
	return board
}

// Dataset exposes the parsed entries.
func (l *Loader) Dataset() Dataset {
	return l.dataset
}

func toRawCategory(entry interface{}) RawCategory {
	record, ok := asRecord(entry)
	if !ok {
		return RawCategory{}
	}
	name, _ := stringField(record, "name", "category")
	cat := RawCategory{Name: name}

	list, _ := record["questions"].([]interface{})
	for _, item := range list {
		q, ok := asRecord(item)
		if !ok {
			q = RawQuestion{}
		}
		cat.Questions = append(cat.Questions, q)
	}
	return cat
}

// asRecord accepts both JSON objects and YAML mappings.
func asRecord(v interface{}) (RawQuestion, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return RawQuestion(m), true
	case RawQuestion:
		return m, true
	case map[interface{}]interface{}:
		out := make(RawQuestion, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
