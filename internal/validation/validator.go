package validation

import (
	"strconv"
	"unicode/utf8"

	"quiz-board/internal/domain"
)

// MaxPlayerNameLength is the longest accepted player name, in characters.
const MaxPlayerNameLength = 40

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ParseIndex validates a board coordinate from the path.
func (v *Validator) ParseIndex(field, raw string) (int, domain.ValidationErrors) {
	if raw == "" {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError(field, raw)}
	}
	if idx < 0 {
		return 0, domain.ValidationErrors{domain.NewMinValueError(field, idx, 0)}
	}
	return idx, nil
}

// ValidateConfirmNamesRequest checks name lengths. Blank names are allowed
// and fall back to the default seat names.
func (v *Validator) ValidateConfirmNamesRequest(player1, player2 string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if n := utf8.RuneCountInString(player1); n > MaxPlayerNameLength {
		errors = append(errors, domain.NewOutOfRangeError("player1", n, 0, MaxPlayerNameLength))
	}
	if n := utf8.RuneCountInString(player2); n > MaxPlayerNameLength {
		errors = append(errors, domain.NewOutOfRangeError("player2", n, 0, MaxPlayerNameLength))
	}
	return errors
}

// ValidateSubmitAnswerRequest only requires a value. Whether it fits the open
// question is decided by the game.
func (v *Validator) ValidateSubmitAnswerRequest(value *int) domain.ValidationErrors {
	if value == nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("value")}
	}
	return nil
}
