package transparency

import (
	"context"

	"transparency-ai/internal/llm"
)

type fakeClient struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeClient) Generate(_ context.Context, prompt string, _ llm.Options) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.reply, f.err
}

func (f *fakeClient) Model() string    { return "fake-model" }
func (f *fakeClient) Provider() string { return "fake" }

func text(id, s string) Answer {
	return Answer{QuestionID: id, Answer: TextValue(s)}
}
