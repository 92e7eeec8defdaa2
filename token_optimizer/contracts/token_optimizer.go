package contracts

// ITokenOptimizer shrinks rendered bundle text toward a token budget.
type ITokenOptimizer interface {
	// EstimateTokens approximates the token count of a text.
	EstimateTokens(text string) int

	// Optimize applies lossy shrinking passes until the text fits the
	// budget or no pass can remove anything further. Text already under
	// budget is returned unchanged.
	Optimize(text string) string

	// OptimizeStrict behaves like Optimize but fails with
	// ErrTokenLimitExceeded when the shrunk text still exceeds the budget.
	OptimizeStrict(text string) (string, error)
}
