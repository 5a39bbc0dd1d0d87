package news

import (
	"encoding/base64"
	"sort"
	"strings"
	"time"

	"ainewsdesk/internal/feeds"
)

// Category is the fixed news taxonomy.
type Category string

const (
	CategoryModel      Category = "model"
	CategoryTool       Category = "tool"
	CategoryBusiness   Category = "business"
	CategoryResearch   Category = "research"
	CategoryRegulation Category = "regulation"
)

// categoryOrder is the tie-break order for classification.
var categoryOrder = []Category{
	CategoryModel,
	CategoryTool,
	CategoryBusiness,
	CategoryResearch,
	CategoryRegulation,
}

// Item is a scored news item served to the front-end.
type Item struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Source       string   `json:"source"`
	URL          string   `json:"url"`
	Date         string   `json:"date"`
	SummaryShort string   `json:"summaryShort"`
	SummaryLong  string   `json:"summaryLong"`
	Tags         []string `json:"tags"`
	Category     Category `json:"category"`
	Company      string   `json:"company,omitempty"`
	Importance   int      `json:"importance"`

	published time.Time
}

// Published reports the parsed publish time used for ordering.
func (n Item) Published() time.Time { return n.published }

var highKeywords = []string{
	"GPT-5", "GPT 5", "Gemini 3", "Gemini 1.5", "Claude Opus", "Claude 3.5",
	"Claude 4", "Antigravity", "OpenAI", "DeepMind", "Anthropic",
}

var mediumKeywords = []string{
	"LLM", "Generative AI", "Transformer", "Agent", "Copilot", "Cursor",
	"Vertex AI", "Azure OpenAI",
}

var lowKeywords = []string{
	"AI", "Machine Learning", "Update", "Release",
}

var categoryKeywords = map[Category][]string{
	CategoryModel:      {"GPT", "Gemini", "Claude", "Llama", "Mistral", "Model", "LLM"},
	CategoryTool:       {"Antigravity", "Cursor", "Copilot", "IDE", "SDK", "API", "Tool"},
	CategoryBusiness:   {"Investment", "Acquisition", "Partnership", "Revenue", "IPO"},
	CategoryResearch:   {"Paper", "Research", "Study", "Algorithm", "Benchmark"},
	CategoryRegulation: {"Regulation", "Law", "Policy", "Safety", "Ethics", "EU AI Act"},
}

const (
	maxImportance = 100
	minImportance = 21 // items scoring 20 or below are dropped
	maxTags       = 5
)

// FilterAndScore maps raw feed items to scored news items, drops the
// low-importance ones and orders the rest by publish date descending with
// importance as tie-break. The same now reference is used for every item so
// recency bonuses are consistent within one pass.
func FilterAndScore(raw []feeds.RawItem, now time.Time) []Item {
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		item := ScoreItem(r, now)
		if item.Importance < minImportance {
			continue
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].published.Equal(items[j].published) {
			return items[i].published.After(items[j].published)
		}
		return items[i].Importance > items[j].Importance
	})
	return items
}

// ScoreItem assigns importance, tags and a category to one raw item.
func ScoreItem(r feeds.RawItem, now time.Time) Item {
	text := strings.ToLower(r.Title + " " + r.Snippet)
	score := 0
	var tags []string

	for _, kw := range highKeywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			score += 30
			tags = appendTag(tags, kw)
		}
	}
	for _, kw := range mediumKeywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			score += 10
			tags = appendTag(tags, kw)
		}
	}
	for _, kw := range lowKeywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			score += 5
		}
	}

	// Primary AI labs get a source bonus
	if strings.Contains(r.Source, "OpenAI") || strings.Contains(r.Source, "DeepMind") {
		score += 20
	}

	// Recency bonus
	age := now.Sub(r.Published)
	if age < 24*time.Hour {
		score += 20
	} else if age < 48*time.Hour {
		score += 10
	}

	if score > maxImportance {
		score = maxImportance
	}

	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}
	if tags == nil {
		tags = []string{}
	}

	return Item{
		ID:           base64.StdEncoding.EncodeToString([]byte(r.Link)),
		Title:        r.Title,
		Source:       r.Source,
		URL:          r.Link,
		Date:         r.PubDate,
		SummaryShort: placeholderSummary(r.Snippet, 100),
		SummaryLong:  placeholderSummary(r.Snippet, 300),
		Tags:         tags,
		Category:     classify(text),
		Company:      r.Company,
		Importance:   score,
		published:    r.Published,
	}
}

// classify picks the category with the strictly highest keyword count.
// Ties keep the earlier category in the fixed order; zero matches default to
// the model category.
func classify(text string) Category {
	best := CategoryModel
	bestCount := 0
	for _, cat := range categoryOrder {
		count := 0
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(text, strings.ToLower(kw)) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = cat
		}
	}
	return best
}

func appendTag(tags []string, tag string) []string {
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}

// placeholderSummary truncates the snippet as a stand-in until the summarizer
// overwrites it.
func placeholderSummary(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		runes = runes[:max]
	}
	return string(runes) + "..."
}
