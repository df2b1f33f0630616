// Package parser extracts amounts, durations and transaction types from
// free-form voice transcripts and bank SMS texts.
package parser

import (
	"errors"
	"fmt"
)

// Slot names reported by ClarificationError.
const (
	SlotAmount   = "amount"
	SlotDuration = "duration"
	SlotType     = "type"
)

var (
	// ErrNeedsClarification is returned when a required value could not be
	// extracted. The parser never guesses a missing value.
	ErrNeedsClarification = errors.New("needs clarification")
	// ErrNotFinancial is returned for SMS texts without any credit or debit vocabulary.
	ErrNotFinancial = fmt.Errorf("not a recognized financial message: %w", ErrNeedsClarification)
)

// ClarificationError names the missing slot and the prompt to show the user.
type ClarificationError struct {
	Slot   string
	Prompt string
}

func (e *ClarificationError) Error() string {
	return e.Prompt
}

// Is reports a match against ErrNeedsClarification.
func (e *ClarificationError) Is(target error) bool {
	return target == ErrNeedsClarification
}

func clarify(slot, prompt string) error {
	return &ClarificationError{Slot: slot, Prompt: prompt}
}
