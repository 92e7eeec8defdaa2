package token_optimizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/swiftctx/swiftctx/token_optimizer/contracts"
)

// ErrTokenLimitExceeded is returned by the strict variant when the bundle
// cannot be shrunk under the budget.
var ErrTokenLimitExceeded = errors.New("token limit exceeded")

// charsPerToken is the rough chars-to-tokens approximation used for budget
// accounting.
const charsPerToken = 4

// tokenOptimizer applies best-effort, lossy text shrinking: strip comments,
// then collapse runs of blank lines. It never touches dependency logic and
// is idempotent on text already under budget.
type tokenOptimizer struct {
	budget int
}

// NewTokenOptimizer creates an optimizer for the given token budget.
func NewTokenOptimizer(budget int) contracts.ITokenOptimizer {
	return &tokenOptimizer{budget: budget}
}

// EstimateTokens approximates the token count of a text.
func (to *tokenOptimizer) EstimateTokens(text string) int {
	return (len(text) + charsPerToken - 1) / charsPerToken
}

// Optimize shrinks the text toward the budget. Passes are applied in order
// of increasing loss and stop as soon as the text fits.
func (to *tokenOptimizer) Optimize(text string) string {
	if to.EstimateTokens(text) <= to.budget {
		return text
	}

	text = stripComments(text)
	if to.EstimateTokens(text) <= to.budget {
		return text
	}

	return collapseBlankLines(text)
}

// OptimizeStrict fails instead of returning an over-budget result.
func (to *tokenOptimizer) OptimizeStrict(text string) (string, error) {
	optimized := to.Optimize(text)
	if used := to.EstimateTokens(optimized); used > to.budget {
		return "", fmt.Errorf("%w: %d tokens used, budget is %d",
			ErrTokenLimitExceeded, used, to.budget)
	}
	return optimized, nil
}

// stripComments removes line and block comments outside string literals.
// Trailing whitespace left behind by removed line comments is trimmed.
func stripComments(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	inLineComment := false
	inBlockComment := false
	inString := false

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch {
		case inLineComment:
			if c == '\n' {
				inLineComment = false
				out.WriteRune(c)
			}
		case inBlockComment:
			if c == '*' && i+1 < len(runes) && runes[i+1] == '/' {
				inBlockComment = false
				i++
			}
		case inString:
			out.WriteRune(c)
			if c == '\\' && i+1 < len(runes) {
				i++
				out.WriteRune(runes[i])
			} else if c == '"' {
				inString = false
			}
		default:
			if c == '"' {
				inString = true
				out.WriteRune(c)
			} else if c == '/' && i+1 < len(runes) && runes[i+1] == '/' {
				inLineComment = true
				i++
			} else if c == '/' && i+1 < len(runes) && runes[i+1] == '*' {
				inBlockComment = true
				i++
			} else {
				out.WriteRune(c)
			}
		}
	}

	lines := strings.Split(out.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// collapseBlankLines reduces every run of blank lines to a single one.
func collapseBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))

	previousBlank := false
	for _, line := range lines {
		blank := strings.TrimSpace(line) == ""
		if blank && previousBlank {
			continue
		}
		result = append(result, line)
		previousBlank = blank
	}
	return strings.Join(result, "\n")
}
