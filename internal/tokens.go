package internal

import (
	"fmt"

	"github.com/tiktoken-go/tokenizer"
)

// CountTokens counts the number of tokens in a string using the GPT-4o
// tokenizer. Document summaries use it for the read-time estimate so the
// numbers line up with what the upstream generation step was billed for.
func CountTokens(content string) (int, error) {
	enc, err := tokenizer.ForModel(tokenizer.GPT4o)
	if err != nil {
		return 0, fmt.Errorf("failed to get tokenizer: %w", err)
	}

	ids, _, err := enc.Encode(content)
	if err != nil {
		return 0, fmt.Errorf("failed to encode string: %w", err)
	}
	return len(ids), nil
}
