package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateEmptyPassword(t *testing.T) {
	report := Evaluate("")

	assert.Equal(t, 0, report.Score)
	assert.Equal(t, 10, report.Max)
	assert.Equal(t, LabelVeryWeak, report.Label)
	assert.Equal(t, []string{"Enter a password to analyze"}, report.Feedback)
	assert.Equal(t, "Password is empty", report.Details.Length.Message)
	assert.Equal(t, "No password entered", report.Details.Uniqueness.Message)
}

func TestEvaluateDeterministic(t *testing.T) {
	first := Evaluate("Tr0ub4dor&3")
	second := Evaluate("Tr0ub4dor&3")
	assert.Equal(t, first, second)
}

func TestLengthTiers(t *testing.T) {
	tests := []struct {
		password string
		want     int
	}{
		{"a", 0},
		{"aaaaaaa", 0},
		{"aaaaaaaa", 1},
		{"aaaaaaaaaaa", 1},
		{"aaaaaaaaaaaa", 2},
		{"aaaaaaaaaaaaaaa", 2},
		{"aaaaaaaaaaaaaaaa", 3},
	}

	prev := -1
	for _, tt := range tests {
		report := Evaluate(tt.password)
		assert.Equal(t, tt.want, report.Details.Length.Score, "length score for %q", tt.password)
		assert.GreaterOrEqual(t, report.Details.Length.Score, prev, "length score must not decrease with length")
		prev = report.Details.Length.Score
	}
}

func TestEvaluateAllClassesAndComplexity(t *testing.T) {
	report := Evaluate("Tr0ub4dor&3")

	assert.Equal(t, 1, report.Details.Uppercase.Score)
	assert.Equal(t, 1, report.Details.Lowercase.Score)
	assert.Equal(t, 1, report.Details.Numbers.Score)
	assert.Equal(t, 1, report.Details.Symbols.Score)
	assert.Equal(t, 1, report.Details.Complexity.Score)
}

func TestComplexityRequiresLengthAndThreeClasses(t *testing.T) {
	// Three classes but only 7 characters.
	assert.Equal(t, 0, Evaluate("Aa1Aa1A").Details.Complexity.Score)
	// Long enough but only two classes.
	assert.Equal(t, 0, Evaluate("aaaabbbb1234").Details.Complexity.Score)
	// Both conditions met.
	assert.Equal(t, 1, Evaluate("Aa1xxxxx").Details.Complexity.Score)
}

func TestUniqueness(t *testing.T) {
	// 8 distinct characters out of 8.
	assert.Equal(t, 1, Evaluate("abcdefgh").Details.Uniqueness.Score)
	// 2 distinct characters out of 8.
	assert.Equal(t, 0, Evaluate("abababab").Details.Uniqueness.Score)
}

func TestPatternDenylist(t *testing.T) {
	for _, p := range []string{"MyPassword!", "xxqwertyxx", "letmein2020", "Hello123World", "ADMINISTRATOR"} {
		report := Evaluate(p)
		assert.Equal(t, 0, report.Details.Patterns.Score, "expected pattern hit in %q", p)
	}

	clean := Evaluate("Zk9&mVt2Lp")
	assert.Equal(t, 1, clean.Details.Patterns.Score)
}

func TestLabelThresholds(t *testing.T) {
	tests := []struct {
		score, max int
		want       string
	}{
		{0, 10, LabelVeryWeak},
		{2, 10, LabelVeryWeak},
		{4, 10, LabelWeak},
		{6, 10, LabelFair},
		{8, 10, LabelGood},
		{9, 10, LabelStrong},
		{10, 10, LabelStrong},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, labelFor(tt.score, tt.max), "label for %d/%d", tt.score, tt.max)
	}
}

func TestPerfectScoreFeedback(t *testing.T) {
	// 16+ chars, all four classes, high variety, no denylisted substrings.
	report := Evaluate("Zk9&mVt2Lp#xWq4!")

	require.Equal(t, report.Max, report.Score)
	assert.Equal(t, LabelStrong, report.Label)
	assert.Equal(t, []string{"Excellent! Your password is very strong."}, report.Feedback)
}

func TestMaxScoreIsSumOfCriteria(t *testing.T) {
	// 3 for length plus 1 each for the seven remaining criteria.
	for _, p := range []string{"", "aaa", "Tr0ub4dor&3", "Zk9&mVt2Lp#xWq4!"} {
		report := Evaluate(p)
		assert.Equal(t, 10, report.Max, "max for %q", p)

		sum := 0
		for _, c := range []Criterion{
			report.Details.Length, report.Details.Uppercase, report.Details.Lowercase,
			report.Details.Numbers, report.Details.Symbols, report.Details.Complexity,
			report.Details.Uniqueness, report.Details.Patterns,
		} {
			sum += c.Max
		}
		assert.Equal(t, sum, report.Max, "max must be the sum over criteria for %q", p)
	}
}

func TestFeedbackOrderAndCap(t *testing.T) {
	// Short, single-class, repeated: six of the eight criteria fail.
	report := Evaluate("aaa")

	require.NotEmpty(t, report.Feedback)
	assert.LessOrEqual(t, len(report.Feedback), 5)
	// Length is the first criterion in reporting order.
	assert.Equal(t, report.Details.Length.Message, report.Feedback[0])
}

func TestScoreNeverStored(t *testing.T) {
	// Two evaluations of different inputs must not share state.
	weak := Evaluate("abc")
	strong := Evaluate("Zk9&mVt2Lp#xWq4!")

	assert.Less(t, weak.Score, strong.Score)
	assert.Equal(t, weak, Evaluate("abc"))
}
