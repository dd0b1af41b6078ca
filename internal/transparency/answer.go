package transparency

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ValueKind identifies which branch of AnswerValue is populated.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindText
	KindBool
	KindNumber
)

// AnswerValue is the decoded form of a free-form form answer: a string, boolean,
// number, or null.
type AnswerValue struct {
	kind   ValueKind
	text   string
	flag   bool
	number json.Number
}

// TextValue builds a text answer.
func TextValue(s string) AnswerValue { return AnswerValue{kind: KindText, text: s} }

// BoolValue builds a boolean answer.
func BoolValue(b bool) AnswerValue { return AnswerValue{kind: KindBool, flag: b} }

// NumberValue builds a numeric answer from its JSON literal.
func NumberValue(n json.Number) AnswerValue { return AnswerValue{kind: KindNumber, number: n} }

// Kind returns the populated branch.
func (v AnswerValue) Kind() ValueKind { return v.kind }

// Text renders the value for text analysis. Null renders as "", booleans as
// "true"/"false", and numbers as their JSON literal.
func (v AnswerValue) Text() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindBool:
		if v.flag {
			return "true"
		}
		return "false"
	case KindNumber:
		return v.number.String()
	default:
		return ""
	}
}

// Truthy reports whether the value counts as provided: null, false, zero,
// and the empty string do not.
func (v AnswerValue) Truthy() bool {
	switch v.kind {
	case KindText:
		return v.text != ""
	case KindBool:
		return v.flag
	case KindNumber:
		f, err := v.number.Float64()
		return err != nil || f != 0
	default:
		return false
	}
}

// UnmarshalJSON accepts strings, booleans, numbers, and null. Objects and
// arrays are rejected.
func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = AnswerValue{}
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = TextValue(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return err
		}
		*v = BoolValue(b)
	case '{', '[':
		return fmt.Errorf("answer must be a string, boolean, number, or null")
	default:
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("answer must be a string, boolean, number, or null")
		}
		*v = NumberValue(n)
	}
	return nil
}

// MarshalJSON renders the value in its original JSON type.
func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindBool:
		return json.Marshal(v.flag)
	case KindNumber:
		return []byte(v.number.String()), nil
	default:
		return []byte("null"), nil
	}
}

// Answer is one response to one question on a product form.
type Answer struct {
	QuestionID string      `json:"questionId"`
	Answer     AnswerValue `json:"answer"`
}

func (a Answer) lowerText() string {
	return strings.ToLower(a.Answer.Text())
}
