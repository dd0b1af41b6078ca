package transparency

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"transparency-ai/internal/llm"
)

func TestBasicRecommendations(t *testing.T) {
	cases := []struct {
		name string
		b    Breakdown
		want []string
	}{
		{
			name: "all zero picks first area",
			b:    Breakdown{},
			want: []string{areaRecommendations["completeness"], certificationAdvice, documentationAdvice},
		},
		{
			name: "all perfect pads with filler",
			b:    Breakdown{Completeness: 100, Quality: 100, Transparency: 100, Compliance: 100},
			want: []string{areaRecommendations["completeness"], fillerAdvice, fillerAdvice},
		},
		{
			name: "tie resolves to earlier area",
			b:    Breakdown{Completeness: 100, Quality: 80, Transparency: 50, Compliance: 50},
			want: []string{areaRecommendations["transparency"], certificationAdvice, fillerAdvice},
		},
		{
			name: "low quality adds documentation",
			b:    Breakdown{Completeness: 90, Quality: 30, Transparency: 100, Compliance: 75},
			want: []string{areaRecommendations["quality"], documentationAdvice, fillerAdvice},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BasicRecommendations(tc.b)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestRecommendWithoutAIUsesRules(t *testing.T) {
	b := Breakdown{Completeness: 20}
	got := Recommender{}.Recommend(context.Background(), "Widget", "Other", nil, b)
	if !reflect.DeepEqual(got, BasicRecommendations(b)) {
		t.Fatalf("expected rule-based recommendations, got %v", got)
	}
}

func TestRecommendUsesModelReply(t *testing.T) {
	client := &fakeClient{reply: "Sure!\n```json\n[\"Publish audits\", \"Add test reports\", \"List suppliers\", \"Extra\"]\n```"}
	r := Recommender{AI: llm.NewOrchestrator(client)}
	b := Breakdown{Completeness: 100, Quality: 75, Transparency: 100, Compliance: 25}

	got := r.Recommend(context.Background(), "Phone", "Electronics", []Answer{text("q", "x")}, b)

	want := []string{"Publish audits", "Add test reports", "List suppliers"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for _, fragment := range []string{`"Phone"`, "Category: Electronics", "Quality: 75.0/100", "Compliance: 25.0/100"} {
		if !strings.Contains(client.lastPrompt, fragment) {
			t.Fatalf("prompt missing %q:\n%s", fragment, client.lastPrompt)
		}
	}
}

func TestRecommendPadsShortModelReply(t *testing.T) {
	client := &fakeClient{reply: `["Publish audits", 5, "   "]`}
	r := Recommender{AI: llm.NewOrchestrator(client)}
	b := Breakdown{}

	got := r.Recommend(context.Background(), "Phone", "Electronics", nil, b)

	want := []string{"Publish audits", areaRecommendations["completeness"], certificationAdvice}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRecommendFallsBack(t *testing.T) {
	b := Breakdown{Completeness: 100, Quality: 100, Transparency: 0, Compliance: 50}
	cases := []struct {
		name   string
		client *fakeClient
	}{
		{"model error", &fakeClient{err: errors.New("quota exceeded")}},
		{"no array", &fakeClient{reply: "I cannot help with that."}},
		{"invalid json", &fakeClient{reply: `["unterminated`}},
		{"no strings", &fakeClient{reply: `[1, {"a": 2}, ""]`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Recommender{AI: llm.NewOrchestrator(tc.client)}
			got := r.Recommend(context.Background(), "Shirt", "Clothing", nil, b)
			if !reflect.DeepEqual(got, BasicRecommendations(b)) {
				t.Fatalf("expected rule-based fallback, got %v", got)
			}
			if tc.client.calls != 1 {
				t.Fatalf("expected exactly one model call, got %d", tc.client.calls)
			}
		})
	}
}
