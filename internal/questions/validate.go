package questions

import (
	"fmt"
	"strings"
)

const maxQuestions = 3

var validTypes = map[string]bool{
	TypeText:    true,
	TypeNumber:  true,
	TypeBoolean: true,
	TypeSelect:  true,
}

// validate normalizes the first three raw entries of a model reply. Entries
// that are not objects or carry no question text are dropped.
func validate(raw []any) []GeneratedQuestion {
	if len(raw) > maxQuestions {
		raw = raw[:maxQuestions]
	}

	out := make([]GeneratedQuestion, 0, len(raw))
	for i, entry := range raw {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		q := GeneratedQuestion{
			ID:       fmt.Sprintf("ai_question_%d", i+1),
			Type:     TypeText,
			Required: true,
		}
		if id, ok := obj["id"].(string); ok && strings.TrimSpace(id) != "" {
			q.ID = id
		}
		if text, ok := obj["question"].(string); ok {
			q.Question = strings.TrimSpace(text)
		}
		if typ, ok := obj["type"].(string); ok && validTypes[typ] {
			q.Type = typ
		}
		if required, ok := obj["required"].(bool); ok {
			q.Required = required
		}
		if q.Type == TypeSelect {
			q.Options = stringOptions(obj["options"])
		}

		if q.Question == "" {
			continue
		}
		out = append(out, q)
	}
	return out
}

func stringOptions(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	opts := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			opts = append(opts, s)
		}
	}
	if len(opts) == 0 {
		return nil
	}
	return opts
}
