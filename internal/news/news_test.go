package news

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"ainewsdesk/internal/feeds"
)

func rawItem(title, snippet string, published time.Time) feeds.RawItem {
	return feeds.RawItem{
		Title:     title,
		Link:      "https://example.com/" + strings.ReplaceAll(title, " ", "-"),
		PubDate:   published.Format(time.RFC3339),
		Published: published,
		Snippet:   snippet,
		Content:   snippet,
		Source:    "Example Blog",
	}
}

func TestScoreItemRecentFlagshipModel(t *testing.T) {
	now := time.Now()
	item := ScoreItem(rawItem("GPT-5 sets new benchmarks", "The new flagship is here", now.Add(-1*time.Hour)), now)

	if item.Importance < 50 {
		t.Errorf("importance = %d, want >= 50 (keyword + recency)", item.Importance)
	}
	if item.Category != CategoryModel {
		t.Errorf("category = %q, want %q", item.Category, CategoryModel)
	}
	if len(item.Tags) == 0 || item.Tags[0] != "GPT-5" {
		t.Errorf("tags = %v, want leading GPT-5 tag", item.Tags)
	}
}

func TestScoreItemClampedAt100(t *testing.T) {
	now := time.Now()
	text := "GPT-5 Gemini 1.5 Claude Opus OpenAI DeepMind Anthropic LLM Copilot"
	item := ScoreItem(rawItem(text, text, now), now)

	if item.Importance != 100 {
		t.Errorf("importance = %d, want clamped to 100", item.Importance)
	}
}

func TestScoreItemTagsCappedAndUnique(t *testing.T) {
	now := time.Now()
	text := "GPT-5 Gemini 1.5 Claude Opus OpenAI DeepMind Anthropic LLM Agent Copilot"
	item := ScoreItem(rawItem(text, text, now), now)

	if len(item.Tags) > 5 {
		t.Errorf("got %d tags, want at most 5", len(item.Tags))
	}
	seen := map[string]bool{}
	for _, tag := range item.Tags {
		if seen[tag] {
			t.Errorf("duplicate tag %q in %v", tag, item.Tags)
		}
		seen[tag] = true
	}
}

func TestScoreItemSourceBonus(t *testing.T) {
	now := time.Now()
	old := now.Add(-100 * time.Hour)

	plain := rawItem("Anthropic ships a change", "details inside", old)
	boosted := plain
	boosted.Source = "OpenAI Blog"

	a := ScoreItem(plain, now)
	b := ScoreItem(boosted, now)
	if b.Importance-a.Importance != 20 {
		t.Errorf("source bonus = %d, want 20", b.Importance-a.Importance)
	}
}

func TestScoreItemRecencyTiers(t *testing.T) {
	now := time.Now()
	base := "Anthropic posts an announcement"

	fresh := ScoreItem(rawItem(base, "", now.Add(-1*time.Hour)), now)
	dayOld := ScoreItem(rawItem(base, "", now.Add(-30*time.Hour)), now)
	stale := ScoreItem(rawItem(base, "", now.Add(-72*time.Hour)), now)

	if fresh.Importance-stale.Importance != 20 {
		t.Errorf("<24h bonus = %d, want 20", fresh.Importance-stale.Importance)
	}
	if dayOld.Importance-stale.Importance != 10 {
		t.Errorf("<48h bonus = %d, want 10", dayOld.Importance-stale.Importance)
	}
}

func TestScoreItemIdempotent(t *testing.T) {
	now := time.Now()
	raw := rawItem("GPT-5 and the Transformer agenda", "LLM research update", now.Add(-3*time.Hour))

	a := ScoreItem(raw, now)
	b := ScoreItem(raw, now)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("scoring is not idempotent:\n%+v\n%+v", a, b)
	}
}

func TestScoreItemStableID(t *testing.T) {
	now := time.Now()
	raw := rawItem("Anthropic update", "", now)

	a := ScoreItem(raw, now)
	b := ScoreItem(raw, now.Add(time.Minute))
	if a.ID == "" || a.ID != b.ID {
		t.Errorf("id not stable across runs: %q vs %q", a.ID, b.ID)
	}
}

func TestClassifyMajorityWins(t *testing.T) {
	got := classify(strings.ToLower("Investment acquisition partnership around one Model"))
	if got != CategoryBusiness {
		t.Errorf("category = %q, want %q", got, CategoryBusiness)
	}
}

func TestClassifyTieKeepsFirstCategory(t *testing.T) {
	// One model keyword, one tool keyword: the fixed order prefers model.
	got := classify(strings.ToLower("Claude meets the SDK"))
	if got != CategoryModel {
		t.Errorf("category = %q, want %q on tie", got, CategoryModel)
	}
}

func TestClassifyDefaultsToModel(t *testing.T) {
	got := classify("nothing relevant in here at all")
	if got != CategoryModel {
		t.Errorf("category = %q, want default %q", got, CategoryModel)
	}
}

func TestFilterAndScoreDropsLowImportance(t *testing.T) {
	now := time.Now()
	old := now.Add(-100 * time.Hour)
	items := FilterAndScore([]feeds.RawItem{
		rawItem("Weekly gardening notes", "tomatoes and soil", old),
		rawItem("GPT-5 lands", "OpenAI ships GPT-5", now.Add(-1*time.Hour)),
	}, now)

	for _, item := range items {
		if item.Importance <= 20 {
			t.Errorf("item %q with importance %d survived the filter", item.Title, item.Importance)
		}
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
}

func TestFilterAndScoreOrdering(t *testing.T) {
	now := time.Now()
	items := FilterAndScore([]feeds.RawItem{
		rawItem("Anthropic note one", "", now.Add(-40*time.Hour)),
		rawItem("GPT-5 and Gemini 1.5 head to head", "OpenAI DeepMind", now.Add(-2*time.Hour)),
		rawItem("Anthropic note two", "", now.Add(-10*time.Hour)),
	}, now)

	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1], items[i]
		if prev.Published().Before(cur.Published()) {
			t.Errorf("items out of date order: %q before %q", prev.Title, cur.Title)
		}
		if prev.Published().Equal(cur.Published()) && prev.Importance < cur.Importance {
			t.Errorf("tie not broken by importance: %d before %d", prev.Importance, cur.Importance)
		}
	}
}

func TestFilterAndScoreImportanceBounds(t *testing.T) {
	now := time.Now()
	items := FilterAndScore([]feeds.RawItem{
		rawItem("GPT-5 Gemini 1.5 Claude Opus OpenAI DeepMind Anthropic", "LLM Agent Copilot AI", now),
		rawItem("Anthropic announcement", "", now),
	}, now)

	for _, item := range items {
		if item.Importance < 0 || item.Importance > 100 {
			t.Errorf("importance %d out of [0,100] for %q", item.Importance, item.Title)
		}
	}
}

func TestPlaceholderSummaries(t *testing.T) {
	now := time.Now()
	snippet := strings.Repeat("x", 400)
	item := ScoreItem(rawItem("Anthropic research drop", snippet, now), now)

	if item.SummaryShort != snippet[:100]+"..." {
		t.Errorf("short placeholder = %d chars, want first 100 + ellipsis", len(item.SummaryShort))
	}
	if item.SummaryLong != snippet[:300]+"..." {
		t.Errorf("long placeholder = %d chars, want first 300 + ellipsis", len(item.SummaryLong))
	}
}
