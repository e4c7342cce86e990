// Package strength grades passwords against a fixed set of criteria and maps
// the combined score to a coarse label. Evaluation is pure: the same input
// always produces the same report and nothing is ever persisted.
package strength

import (
	"fmt"
	"strings"
	"unicode"
)

// Labels ordered from worst to best.
const (
	LabelVeryWeak = "Very Weak"
	LabelWeak     = "Weak"
	LabelFair     = "Fair"
	LabelGood     = "Good"
	LabelStrong   = "Strong"
)

// commonPatterns are substrings that immediately mark a password as guessable.
// Matched against the lowercase form of the input.
var commonPatterns = []string{
	"123", "abc", "qwe", "asd", "password", "admin", "user",
	"123456", "password123", "admin123", "qwerty", "letmein",
}

// Criterion is the graded outcome of a single check.
type Criterion struct {
	Score   int    `json:"score"`
	Max     int    `json:"max"`
	Message string `json:"message"`
}

// Details holds one Criterion per check. The set of checks is closed, so this
// is a fixed struct rather than a map.
type Details struct {
	Length     Criterion `json:"length"`
	Uppercase  Criterion `json:"uppercase"`
	Lowercase  Criterion `json:"lowercase"`
	Numbers    Criterion `json:"numbers"`
	Symbols    Criterion `json:"symbols"`
	Complexity Criterion `json:"complexity"`
	Uniqueness Criterion `json:"uniqueness"`
	Patterns   Criterion `json:"patterns"`
}

// Report is the full strength analysis of a single password.
type Report struct {
	Score    int      `json:"score"`
	Max      int      `json:"max_score"`
	Label    string   `json:"label"`
	Feedback []string `json:"feedback"`
	Details  Details  `json:"details"`
}

const maxFeedback = 5

// Evaluate scores a password and returns the full report.
func Evaluate(password string) Report {
	if password == "" {
		return emptyReport()
	}

	details := Details{
		Length:     checkLength(password),
		Uppercase:  checkClass(password, unicode.IsUpper, "Contains uppercase letters", "Add uppercase letters (A-Z)"),
		Lowercase:  checkClass(password, unicode.IsLower, "Contains lowercase letters", "Add lowercase letters (a-z)"),
		Numbers:    checkClass(password, unicode.IsDigit, "Contains numbers", "Add numbers (0-9)"),
		Symbols:    checkSymbols(password),
		Complexity: checkComplexity(password),
		Uniqueness: checkUniqueness(password),
		Patterns:   checkPatterns(password),
	}

	score, max := sum(details)

	return Report{
		Score:    score,
		Max:      max,
		Label:    labelFor(score, max),
		Feedback: feedback(details, score, max),
		Details:  details,
	}
}

func emptyReport() Report {
	details := Details{
		Length:     Criterion{Max: 3, Message: "Password is empty"},
		Uppercase:  Criterion{Max: 1, Message: "No uppercase letters"},
		Lowercase:  Criterion{Max: 1, Message: "No lowercase letters"},
		Numbers:    Criterion{Max: 1, Message: "No numbers"},
		Symbols:    Criterion{Max: 1, Message: "No symbols"},
		Complexity: Criterion{Max: 1, Message: "Not complex enough"},
		Uniqueness: Criterion{Max: 1, Message: "No password entered"},
		Patterns:   Criterion{Max: 1, Message: "No password entered"},
	}
	_, max := sum(details)
	return Report{
		Score:    0,
		Max:      max,
		Label:    LabelVeryWeak,
		Feedback: []string{"Enter a password to analyze"},
		Details:  details,
	}
}

// checkLength awards the highest tier reached: 8, 12, and 16 characters.
func checkLength(password string) Criterion {
	n := len([]rune(password))
	switch {
	case n >= 16:
		return Criterion{Score: 3, Max: 3, Message: "Excellent length (16+ characters)"}
	case n >= 12:
		return Criterion{Score: 2, Max: 3, Message: "Very good length (12+ characters)"}
	case n >= 8:
		return Criterion{Score: 1, Max: 3, Message: "Good length (8+ characters)"}
	default:
		return Criterion{Max: 3, Message: fmt.Sprintf("Too short (%d characters). Use at least 8 characters.", n)}
	}
}

func checkClass(password string, member func(rune) bool, ok, missing string) Criterion {
	if strings.ContainsFunc(password, member) {
		return Criterion{Score: 1, Max: 1, Message: ok}
	}
	return Criterion{Max: 1, Message: missing}
}

func isSymbol(r rune) bool {
	return !unicode.IsUpper(r) && !unicode.IsLower(r) && !unicode.IsDigit(r)
}

func checkSymbols(password string) Criterion {
	return checkClass(password, isSymbol, "Contains symbols", "Add symbols (!@#$%^&*)")
}

func classCount(password string) int {
	count := 0
	for _, member := range []func(rune) bool{unicode.IsUpper, unicode.IsLower, unicode.IsDigit, isSymbol} {
		if strings.ContainsFunc(password, member) {
			count++
		}
	}
	return count
}

// checkComplexity rewards passwords of 8+ characters drawing on at least
// three of the four character classes.
func checkComplexity(password string) Criterion {
	if len([]rune(password)) >= 8 && classCount(password) >= 3 {
		return Criterion{Score: 1, Max: 1, Message: "Good complexity with multiple character types"}
	}
	return Criterion{Max: 1, Message: "Use a mix of uppercase, lowercase, numbers, and symbols"}
}

// checkUniqueness requires at least 80% of characters to be distinct.
func checkUniqueness(password string) Criterion {
	runes := []rune(password)
	distinct := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		distinct[r] = struct{}{}
	}
	if float64(len(distinct))/float64(len(runes)) >= 0.8 {
		return Criterion{Score: 1, Max: 1, Message: "Good character variety"}
	}
	return Criterion{Max: 1, Message: "Use more unique characters"}
}

func checkPatterns(password string) Criterion {
	lower := strings.ToLower(password)
	for _, pattern := range commonPatterns {
		if strings.Contains(lower, pattern) {
			return Criterion{Max: 1, Message: "Avoid common patterns and words"}
		}
	}
	return Criterion{Score: 1, Max: 1, Message: "No common patterns detected"}
}

func sum(d Details) (score, max int) {
	for _, c := range d.ordered() {
		score += c.Score
		max += c.Max
	}
	return score, max
}

// ordered returns the criteria in their fixed reporting order.
func (d Details) ordered() []Criterion {
	return []Criterion{
		d.Length, d.Uppercase, d.Lowercase, d.Numbers,
		d.Symbols, d.Complexity, d.Uniqueness, d.Patterns,
	}
}

func labelFor(score, max int) string {
	percentage := float64(score) / float64(max) * 100
	switch {
	case percentage <= 20:
		return LabelVeryWeak
	case percentage <= 40:
		return LabelWeak
	case percentage <= 60:
		return LabelFair
	case percentage <= 80:
		return LabelGood
	default:
		return LabelStrong
	}
}

// feedback lists the message of every criterion scoring below its max, in
// reporting order, capped at maxFeedback entries. A perfect score yields a
// single success message instead.
func feedback(d Details, score, max int) []string {
	if score == max {
		return []string{"Excellent! Your password is very strong."}
	}

	var out []string
	for _, c := range d.ordered() {
		if c.Score < c.Max {
			out = append(out, c.Message)
			if len(out) == maxFeedback {
				break
			}
		}
	}
	return out
}
