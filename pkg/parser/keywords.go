package parser

import (
	"slices"
	"strings"
	"unicode"
)

// Language hints returned by ParseCommand.
const (
	LangEnglish = "en"
	LangTelugu  = "te"
	LangHindi   = "hi"
)

var (
	incomeKeywords = []string{
		"income", "add", "credit", "received", "got", "earn", "salary",
		"aadaayam", "aay", "ఆదాయం", "आय", "జోడించు", "जोड़ो",
	}
	expenseKeywords = []string{
		"expense", "spend", "spent", "debit", "kharchu", "kharcha", "paid", "pay", "to",
		"ఖర్చు", "డబ్బు", "खर्च", "पैसा",
	}
	teluguKeywords = []string{"ఆదాయం", "ఖర్చు", "డబ్బు", "జోడించు"}
	hindiKeywords  = []string{"आय", "खर्च", "पैसा", "जोड़ो"}

	interruptWords = []string{"cancel", "stop", "reset"}
	// leading words skipped before looking for an interrupt
	fillerWords = []string{"please", "ok", "okay", "no", "just", "oh"}
	generalBalance = []string{"general", "balance"}
)

// words splits lowered text into letter/digit runs.
func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r) && !unicode.Is(unicode.Mc, r)
	})
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// containsKeyword matches Latin keywords against whole words, allowing an
// inflected suffix for keywords of four letters or more ("earned", "salary's").
// Keywords in other scripts match as substrings.
func containsKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	ws := words(lower)
	for _, k := range keywords {
		if !isASCII(k) {
			if strings.Contains(lower, k) {
				return true
			}
			continue
		}
		for _, w := range ws {
			if w == k || (len(k) >= 4 && strings.HasPrefix(w, k)) {
				return true
			}
		}
	}
	return false
}

// DetectType returns "income", "expense" or "" from voice vocabulary.
// Income vocabulary wins when both are present.
func DetectType(text string) string {
	switch {
	case containsKeyword(text, incomeKeywords):
		return "income"
	case containsKeyword(text, expenseKeywords):
		return "expense"
	}
	return ""
}

// DetectLanguage returns a language hint from script-specific keywords.
func DetectLanguage(text string) string {
	switch {
	case containsKeyword(text, teluguKeywords):
		return LangTelugu
	case containsKeyword(text, hindiKeywords):
		return LangHindi
	}
	return LangEnglish
}

// IsInterrupt reports whether the utterance asks to abandon the dialogue.
// The interrupt word must lead the utterance, after optional fillers such as
// "please", so "spent 40 at the bus stop" is not a cancel.
func IsInterrupt(text string) bool {
	for _, w := range words(text) {
		if slices.Contains(fillerWords, w) {
			continue
		}
		return slices.Contains(interruptWords, w)
	}
	return false
}

// IsGeneralBalance reports whether the utterance declines a goal.
func IsGeneralBalance(text string) bool {
	return containsKeyword(text, generalBalance)
}

// MatchName returns the index of the first name contained in text, compared
// case-insensitively, or -1.
func MatchName(text string, names []string) int {
	lower := strings.ToLower(strings.TrimSpace(text))
	for i, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if lower == n || strings.Contains(lower, n) {
			return i
		}
	}
	return -1
}
