// Package llm abstracts chat-completion providers behind one interface.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Request is a single completion request with a system persona and a
// user prompt.
type Request struct {
	System string
	User   string
}

// Completer is the provider abstraction interface.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}

// Options carries provider credentials and endpoints.
type Options struct {
	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string
	GeminiKey     string
	GeminiModel   string
	Timeout       time.Duration
}

// New creates a completer by provider name. Credentials are not
// validated here; a missing key fails on the first completion.
func New(provider string, opts Options) (Completer, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAI(opts.OpenAIKey, opts.OpenAIBaseURL, opts.OpenAIModel, opts.Timeout), nil
	case "gemini", "google":
		return NewGemini(opts.GeminiKey, opts.GeminiModel), nil
	default:
		return nil, fmt.Errorf("unknown model provider: %s", provider)
	}
}
