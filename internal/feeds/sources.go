package feeds

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Source is one configured syndication endpoint plus display metadata.
type Source struct {
	URL     string `yaml:"url"`
	Name    string `yaml:"name"`
	Company string `yaml:"company,omitempty"`
}

// SourcesConfig is YAML config structure
// sources:
//   - url: https://...
//     name: OpenAI Blog
//     company: OpenAI
type SourcesConfig struct {
	Sources []Source `yaml:"sources"`
}

// DefaultSources is the built-in feed table, used when no YAML override exists.
var DefaultSources = []Source{
	{URL: "https://openai.com/news/rss.xml", Name: "OpenAI Blog", Company: "OpenAI"},
	{URL: "https://blog.google/technology/ai/rss/", Name: "Google AI Blog", Company: "Google"},
	{URL: "https://feeds.feedburner.com/blogspot/gJZg", Name: "Google Developers Blog", Company: "Google"},
	{URL: "https://blogs.microsoft.com/ai/feed/", Name: "Microsoft AI Blog", Company: "Microsoft"},
	{URL: "https://huggingface.co/blog/feed.xml", Name: "Hugging Face Blog", Company: "Hugging Face"},
	{URL: "https://stability.ai/blog?format=rss", Name: "Stability AI Blog", Company: "Stability AI"},
	{URL: "https://ai.meta.com/blog/rss.xml", Name: "Meta AI Blog", Company: "Meta"},
	{URL: "https://techcrunch.com/category/artificial-intelligence/feed/", Name: "TechCrunch AI", Company: "TechCrunch"},
	{URL: "https://www.technologyreview.com/topic/artificial-intelligence/feed", Name: "MIT Tech Review", Company: "MIT"},
}

// LoadSources reads the feed-source table from a YAML file. A missing file is
// not an error: the built-in table is returned instead.
func LoadSources(path string) ([]Source, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSources, nil
		}
		return nil, err
	}
	defer f.Close()

	var cfg SourcesConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	if len(cfg.Sources) == 0 {
		return DefaultSources, nil
	}
	return cfg.Sources, nil
}
