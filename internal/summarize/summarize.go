// Package summarize turns article text into natural-language summaries.
//
// The live implementation calls Gemini; when no API key is configured the
// deterministic fallback is selected instead. Summarization failure is never
// fatal: every error path degrades to the fallback output.
package summarize

import (
	"context"

	"ainewsdesk/internal/logger"
	"ainewsdesk/internal/news"
)

// Length selects the target summary size.
type Length string

const (
	Short Length = "short"
	Long  Length = "long"
)

const (
	shortMaxChars = 100
	longMaxChars  = 300

	shortMaxTokens = 100
	longMaxTokens  = 300
	memoMaxTokens  = 150

	// Context sent to the model is capped to keep prompts bounded.
	contextMaxChars = 2000
	memoMaxItems    = 10
)

// Summarizer generates item summaries and a cross-item industry memo.
type Summarizer interface {
	Summarize(ctx context.Context, text string, length Length, lang Language) string
	IndustryMemo(ctx context.Context, items []news.Item, lang Language) string
}

// New selects the live Gemini summarizer when an API key is configured, the
// deterministic fallback otherwise.
func New(apiKey, model string) Summarizer {
	if apiKey == "" {
		logger.Info("GEMINI_API_KEY not set, using fallback summarizer")
		return &Fallback{}
	}
	g, err := NewGemini(apiKey, model)
	if err != nil {
		logger.Error("Failed to create Gemini client, using fallback summarizer", "error", err)
		return &Fallback{}
	}
	return g
}

// Fallback produces deterministic summaries without any external capability.
type Fallback struct{}

// Summarize truncates the text to the length cap. The localized
// "summary unavailable" marker is appended only when truncation occurred.
func (f *Fallback) Summarize(_ context.Context, text string, length Length, lang Language) string {
	return fallbackSummary(text, length, lang)
}

// IndustryMemo returns the fixed localized placeholder sentence.
func (f *Fallback) IndustryMemo(_ context.Context, _ []news.Item, lang Language) string {
	return promptsFor(lang).MemoFallback
}

func fallbackSummary(text string, length Length, lang Language) string {
	max := shortMaxChars
	if length == Long {
		max = longMaxChars
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "... (" + promptsFor(lang).Fallback + ")"
}
