package generation

import (
	"context"

	"transparency-ai/internal/llm"
)

type fakeClient struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
	lastOpts   llm.Options
}

func (f *fakeClient) Generate(_ context.Context, prompt string, opts llm.Options) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastOpts = opts
	return f.reply, f.err
}

func (f *fakeClient) Model() string    { return "fake-model" }
func (f *fakeClient) Provider() string { return "fake" }
