package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONArray returns the first bracket-balanced [...] substring of text.
// Brackets inside JSON string literals are ignored. Surrounding prose and
// markdown fences are tolerated.
func ExtractJSONArray(text string) (string, bool) {
	for start := strings.IndexByte(text, '['); start >= 0; {
		if end, ok := balancedEnd(text, start); ok {
			return text[start : end+1], true
		}
		next := strings.IndexByte(text[start+1:], '[')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", false
}

// balancedEnd returns the index of the bracket closing text[start].
func balancedEnd(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// ParseStructuredReply extracts the first JSON array from a model reply and decodes it into T.
// Every failure wraps ErrMalformedResponse.
func ParseStructuredReply[T any](text string) (T, error) {
	var out T
	raw, ok := ExtractJSONArray(text)
	if !ok {
		return out, fmt.Errorf("%w: no JSON array found", ErrMalformedResponse)
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return out, nil
}
