package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "bare", text: `["a","b"]`, want: `["a","b"]`, wantOK: true},
		{name: "surrounding prose", text: "Here you go:\n[\"a\"]\nHope this helps [really].", want: `["a"]`, wantOK: true},
		{name: "markdown fence", text: "```json\n[{\"id\":\"q1\"}]\n```", want: `[{"id":"q1"}]`, wantOK: true},
		{name: "nested", text: `x [[1,2],[3]] y`, want: `[[1,2],[3]]`, wantOK: true},
		{name: "bracket inside string", text: `["use ] carefully", "ok"]`, want: `["use ] carefully", "ok"]`, wantOK: true},
		{name: "escaped quote inside string", text: `["say \"]\" now"] tail`, want: `["say \"]\" now"]`, wantOK: true},
		{name: "unbalanced first then balanced", text: `note [ draft ... final: ["x"]`, want: `["x"]`, wantOK: true},
		{name: "truncated", text: `["a", "b"`, wantOK: false},
		{name: "no array", text: `{"a":1}`, wantOK: false},
		{name: "empty", text: ``, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONArray(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ExtractJSONArray ok = %v, want %v (got %q)", ok, tt.wantOK, got)
			}
			if ok && got != tt.want {
				t.Fatalf("ExtractJSONArray = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONArraySkipsStrayOpeningBracket(t *testing.T) {
	got, ok := ExtractJSONArray(`see [1] and ["x"]`)
	if !ok || got != `[1]` {
		t.Fatalf("expected first balanced array [1], got %q ok=%v", got, ok)
	}
}

func TestParseStructuredReply(t *testing.T) {
	got, err := ParseStructuredReply[[]string]("Sure!\n[\"one\", \"two\", \"three\"]")
	if err != nil {
		t.Fatalf("ParseStructuredReply: %v", err)
	}
	if len(got) != 3 || got[0] != "one" || got[2] != "three" {
		t.Fatalf("unexpected result %v", got)
	}
}

func TestParseStructuredReplyMalformed(t *testing.T) {
	cases := []string{
		"no json here",
		`[1, 2,]`,
		`["a", {"b": }]`,
	}
	for _, text := range cases {
		_, err := ParseStructuredReply[[]json.RawMessage](text)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Fatalf("expected ErrMalformedResponse for %q, got %v", text, err)
		}
	}
}

func TestParseStructuredReplyTypeMismatch(t *testing.T) {
	_, err := ParseStructuredReply[[]string](`[1, 2, 3]`)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}
