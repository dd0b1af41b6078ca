package util

import "testing"

func TestDigest(t *testing.T) {
	prompt := "Generate exactly 3 questions"
	got := Digest(prompt)
	if got != Digest(prompt) {
		t.Fatalf("expected stable digest, got %s", got)
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("digest contains non-hex character: %c", ch)
		}
	}
	if len(got) != 16 {
		t.Fatalf("expected 16 hex characters, got %d", len(got))
	}
	if got == Digest(prompt+"!") {
		t.Fatalf("expected different digests for different input")
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{in: "short", n: 50, want: "short"},
		{in: "abcdef", n: 3, want: "abc..."},
		{in: "çğüşöı", n: 2, want: "çğ..."},
		{in: "anything", n: 0, want: ""},
	}
	for _, tt := range tests {
		if got := Preview(tt.in, tt.n); got != tt.want {
			t.Fatalf("Preview(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
