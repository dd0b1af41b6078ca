package transparency

import (
	"encoding/json"
	"testing"
)

func TestAnswerDecodesScalarKinds(t *testing.T) {
	raw := `[
		{"questionId":"a","answer":"Made in Portugal"},
		{"questionId":"b","answer":true},
		{"questionId":"c","answer":12.50},
		{"questionId":"d","answer":null},
		{"questionId":"e"}
	]`
	var answers []Answer
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	cases := []struct {
		kind   ValueKind
		text   string
		truthy bool
	}{
		{KindText, "Made in Portugal", true},
		{KindBool, "true", true},
		{KindNumber, "12.50", true},
		{KindNull, "", false},
		{KindNull, "", false},
	}
	for i, tc := range cases {
		got := answers[i].Answer
		if got.Kind() != tc.kind {
			t.Fatalf("answer %d: expected kind %d, got %d", i, tc.kind, got.Kind())
		}
		if got.Text() != tc.text {
			t.Fatalf("answer %d: expected text %q, got %q", i, tc.text, got.Text())
		}
		if got.Truthy() != tc.truthy {
			t.Fatalf("answer %d: expected truthy=%v", i, tc.truthy)
		}
	}
}

func TestAnswerTruthiness(t *testing.T) {
	cases := []struct {
		name string
		v    AnswerValue
		want bool
	}{
		{"empty string", TextValue(""), false},
		{"whitespace", TextValue(" "), true},
		{"zero string", TextValue("0"), true},
		{"false", BoolValue(false), false},
		{"zero", NumberValue("0"), false},
		{"zero float", NumberValue("0.0"), false},
		{"negative", NumberValue("-1"), true},
		{"null", AnswerValue{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Truthy(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestAnswerRejectsCompositeValues(t *testing.T) {
	for _, raw := range []string{
		`{"questionId":"a","answer":{"x":1}}`,
		`{"questionId":"a","answer":["x"]}`,
	} {
		var a Answer
		if err := json.Unmarshal([]byte(raw), &a); err == nil {
			t.Fatalf("expected error for %s", raw)
		}
	}
}

func TestAnswerMarshalKeepsOriginalType(t *testing.T) {
	out, err := json.Marshal([]Answer{
		{QuestionID: "b", Answer: BoolValue(true)},
		{QuestionID: "n", Answer: NumberValue("3")},
		{QuestionID: "z"},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"questionId":"b","answer":true},{"questionId":"n","answer":3},{"questionId":"z","answer":null}]`
	if string(out) != want {
		t.Fatalf("expected %s, got %s", want, out)
	}
}
