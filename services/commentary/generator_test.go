package commentary

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/snypenet/rate-my-music/cache"
	"github.com/snypenet/rate-my-music/services/llm"
)

type fakeCompleter struct {
	name     string
	response string
	err      error
	lastReq  llm.Request
	calls    int
}

func (f *fakeCompleter) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeCompleter) Name() string { return f.name }

func TestGenerateSummaryUsesAnalystPersona(t *testing.T) {
	store := cache.NewMemoryCache()
	store.Set("drake-hotline bling", "You used to call me on my cell phone")
	completer := &fakeCompleter{name: "OpenAI", response: "A summary."}
	generator := NewGenerator(store, completer)

	text, err := generator.Generate(context.Background(), "drake-hotline bling", KindSummary)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if text != "A summary." {
		t.Errorf("Expected completion to be returned verbatim, got %q", text)
	}

	if completer.lastReq.System != "You are an expert music analyst." {
		t.Errorf("Unexpected system prompt: %q", completer.lastReq.System)
	}
	if !strings.Contains(completer.lastReq.User, "Summarize the theme and meaning") {
		t.Errorf("Expected summary wording in user prompt, got %q", completer.lastReq.User)
	}
	if !strings.HasSuffix(completer.lastReq.User, "Lyrics:\nYou used to call me on my cell phone") {
		t.Errorf("Expected lyrics at the end of the user prompt, got %q", completer.lastReq.User)
	}
}

func TestGenerateRatingUsesReviewerPersona(t *testing.T) {
	store := cache.NewMemoryCache()
	store.Set("drake-hotline bling", "some lyrics")
	completer := &fakeCompleter{name: "OpenAI", response: "Rated T for Teen."}
	generator := NewGenerator(store, completer)

	text, err := generator.Generate(context.Background(), "drake-hotline bling", KindRating)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if text != "Rated T for Teen." {
		t.Errorf("Expected completion to be returned verbatim, got %q", text)
	}

	if completer.lastReq.System != "You are an expert content reviewer for song lyrics." {
		t.Errorf("Unexpected system prompt: %q", completer.lastReq.System)
	}
	if !strings.Contains(completer.lastReq.User, "ESRB") {
		t.Errorf("Expected rating wording in user prompt, got %q", completer.lastReq.User)
	}
}

func TestGenerateEmbedsLyricsVerbatim(t *testing.T) {
	store := cache.NewMemoryCache()
	lyrics := "line one\nline two \"quoted\"\n100% done"
	store.Set("key", lyrics)
	completer := &fakeCompleter{name: "OpenAI", response: "ok"}
	generator := NewGenerator(store, completer)

	if _, err := generator.Generate(context.Background(), "key", KindSummary); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if !strings.HasSuffix(completer.lastReq.User, "Lyrics:\n"+lyrics) {
		t.Errorf("Expected lyrics embedded unchanged, got %q", completer.lastReq.User)
	}
}

func TestGenerateCacheMiss(t *testing.T) {
	store := cache.NewMemoryCache()
	completer := &fakeCompleter{name: "OpenAI", response: "never used"}
	generator := NewGenerator(store, completer)

	_, err := generator.Generate(context.Background(), "unknown-song", KindSummary)
	if !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("Expected ErrCacheMiss, got %v", err)
	}
	if completer.calls != 0 {
		t.Errorf("Expected no model call on a cache miss, got %d", completer.calls)
	}
}

func TestGenerateProviderError(t *testing.T) {
	store := cache.NewMemoryCache()
	store.Set("key", "lyrics")
	cause := errors.New("model exploded")
	completer := &fakeCompleter{name: "OpenAI", err: cause}
	generator := NewGenerator(store, completer)

	_, err := generator.Generate(context.Background(), "key", KindSummary)
	if err == nil {
		t.Fatal("Expected an error from a failing provider")
	}

	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("Expected UpstreamError, got %T: %v", err, err)
	}
	if upstreamErr.Provider != "OpenAI" {
		t.Errorf("Expected provider %q, got %q", "OpenAI", upstreamErr.Provider)
	}
	if err.Error() != "OpenAI API error: model exploded" {
		t.Errorf("Unexpected error message: %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Expected the provider error to be wrapped")
	}
}

func TestGenerateReturnsCompletionUntrimmed(t *testing.T) {
	store := cache.NewMemoryCache()
	store.Set("key", "lyrics")
	completer := &fakeCompleter{name: "OpenAI", response: "  raw output  "}
	generator := NewGenerator(store, completer)

	text, err := generator.Generate(context.Background(), "key", KindRating)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if text != "  raw output  " {
		t.Errorf("Expected untrimmed completion, got %q", text)
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	store := cache.NewMemoryCache()
	store.Set("key", "lyrics")
	completer := &fakeCompleter{name: "OpenAI", response: "x"}
	generator := NewGenerator(store, completer)

	_, err := generator.Generate(context.Background(), "key", Kind("haiku"))
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("Expected ErrUnknownKind, got %v", err)
	}
	if completer.calls != 0 {
		t.Errorf("Expected no model call for an unknown kind, got %d", completer.calls)
	}
}
