package summarize

import (
	"context"
	"fmt"
	"strings"

	"ainewsdesk/internal/logger"
	"ainewsdesk/internal/metrics"
	"ainewsdesk/internal/news"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini is the live summarizer backed by the Gemini API. Every failure path
// degrades to the deterministic fallback output.
type Gemini struct {
	client   *genai.Client
	model    string
	fallback Fallback
}

func NewGemini(apiKey, model string) (*Gemini, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

func (g *Gemini) Summarize(ctx context.Context, text string, length Length, lang Language) string {
	p := promptsFor(lang)
	instruction := p.Short
	maxTokens := int32(shortMaxTokens)
	if length == Long {
		instruction = p.Long
		maxTokens = longMaxTokens
	}

	prompt := instruction + "\n\nArticle content:\n" + truncateRunes(text, contextMaxChars)

	out, err := g.generate(ctx, prompt, maxTokens)
	if err != nil || out == "" {
		logger.Error("Gemini summarize failed, using fallback", "length", string(length), "lang", string(lang), "error", err)
		metrics.Global.IncrementSummariesFallenBack()
		return fallbackSummary(text, length, lang)
	}
	metrics.Global.IncrementSummariesGenerated()
	return out
}

func (g *Gemini) IndustryMemo(ctx context.Context, items []news.Item, lang Language) string {
	p := promptsFor(lang)
	if len(items) == 0 {
		return p.MemoFallback
	}

	limit := len(items)
	if limit > memoMaxItems {
		limit = memoMaxItems
	}
	var b strings.Builder
	for _, n := range items[:limit] {
		b.WriteString("- " + n.Title + ": " + n.SummaryShort + "\n")
	}

	out, err := g.generate(ctx, p.Memo+"\n\n"+b.String(), memoMaxTokens)
	if err != nil || out == "" {
		logger.Error("Gemini memo generation failed, using fallback", "lang", string(lang), "error", err)
		metrics.Global.IncrementSummariesFallenBack()
		return p.MemoFallback
	}
	metrics.Global.IncrementSummariesGenerated()
	return out
}

func (g *Gemini) generate(ctx context.Context, prompt string, maxTokens int32) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetMaxOutputTokens(maxTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}
	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])), nil
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
