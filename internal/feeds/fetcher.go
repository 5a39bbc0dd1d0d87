package feeds

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"ainewsdesk/internal/logger"
	"ainewsdesk/internal/metrics"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// RawItem is a normalized feed entry. It lives only within one pipeline run.
type RawItem struct {
	Title     string
	Link      string
	PubDate   string
	Published time.Time
	Snippet   string
	Content   string
	Source    string
	Company   string
}

// Fetcher downloads and parses all configured feeds concurrently.
type Fetcher struct {
	sources []Source
	timeout time.Duration
}

func NewFetcher(sources []Source, timeout time.Duration) *Fetcher {
	return &Fetcher{sources: sources, timeout: timeout}
}

// FetchAll fetches every source in parallel and concatenates the results in
// source-table order. A failing source contributes nothing; its error is
// logged and swallowed. Only when every single source fails is an error
// returned.
func (f *Fetcher) FetchAll(ctx context.Context) ([]RawItem, error) {
	results := make([][]RawItem, len(f.sources))
	failed := make([]bool, len(f.sources))

	var wg sync.WaitGroup
	for i, src := range f.sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			items, err := f.fetchOne(ctx, src)
			if err != nil {
				logger.Error("Failed to fetch feed", "source", src.Name, "url", src.URL, "error", err)
				metrics.Global.IncrementFeedsFailed()
				failed[i] = true
				return
			}
			logger.Debug("Fetched feed", "source", src.Name, "items", len(items))
			metrics.Global.IncrementFeedsFetched()
			results[i] = items
		}(i, src)
	}
	wg.Wait()

	failedCount := 0
	for _, bad := range failed {
		if bad {
			failedCount++
		}
	}
	if len(f.sources) > 0 && failedCount == len(f.sources) {
		return nil, fmt.Errorf("all %d feed sources failed", len(f.sources))
	}

	var all []RawItem
	for _, items := range results {
		all = append(all, items...)
	}
	return all, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, src Source) ([]RawItem, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]RawItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		items = append(items, normalize(entry, src, now))
	}
	return items, nil
}

// normalize fills in placeholders for absent feed fields.
func normalize(entry *gofeed.Item, src Source, now time.Time) RawItem {
	title := entry.Title
	if title == "" {
		title = "No Title"
	}

	published := now
	pubDate := now.Format(time.RFC3339)
	if entry.PublishedParsed != nil {
		published = *entry.PublishedParsed
		pubDate = entry.Published
	} else if entry.UpdatedParsed != nil {
		published = *entry.UpdatedParsed
		pubDate = entry.Updated
	}
	if pubDate == "" {
		pubDate = published.Format(time.RFC3339)
	}

	snippet := entry.Description
	if snippet == "" {
		snippet = entry.Content
	}
	content := entry.Content
	if content == "" {
		content = entry.Description
	}

	return RawItem{
		Title:     title,
		Link:      entry.Link,
		PubDate:   pubDate,
		Published: published,
		Snippet:   stripHTML(snippet),
		Content:   stripHTML(content),
		Source:    src.Name,
		Company:   src.Company,
	}
}

// stripHTML flattens feed HTML into plain text with collapsed whitespace.
func stripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
