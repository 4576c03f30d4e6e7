// Package bank turns a loosely structured question dataset into a normalized board.
package bank

import "fmt"

// Format of a dataset file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// RawQuestion is a question record of unknown shape, as decoded from the dataset.
type RawQuestion map[string]interface{}

// RawCategory is one dataset entry.
type RawCategory struct {
	Name      string
	Questions []RawQuestion
}

// Dataset is the parsed but not yet normalized question bank.
type Dataset []RawCategory

// Issue records a record that was dropped or degraded during normalization.
type Issue struct {
	Category int
	Question int
	Reason   string
}

func (i Issue) String() string {
	return fmt.Sprintf("category %d, question %d: %s", i.Category, i.Question, i.Reason)
}
