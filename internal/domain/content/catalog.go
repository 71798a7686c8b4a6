package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the immutable set of feed items. Build it once at startup;
// concurrent readers need no synchronization afterwards.
type Catalog struct {
	items []Item
	byID  map[string]int
}

// NewCatalog builds a catalog from the given items, preserving order.
// Catalog order is the tie-breaker for equal-score ranking.
func NewCatalog(items []Item) (*Catalog, error) {
	byID := make(map[string]int, len(items))
	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item at position %d has no id", i)
		}
		if _, dup := byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog item id %q", item.ID)
		}
		byID[item.ID] = i
	}
	return &Catalog{items: items, byID: byID}, nil
}

// LoadCatalog reads a YAML catalog file. An empty path falls back to the
// built-in seed.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return NewCatalog(SeedItems())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var doc struct {
		Items []Item `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no items", path)
	}

	return NewCatalog(doc.Items)
}

// Items returns the catalog entries in load order.
func (c *Catalog) Items() []Item {
	return c.items
}

// Get looks an item up by id.
func (c *Catalog) Get(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// SeedItems returns the built-in demo catalog.
func SeedItems() []Item {
	return []Item{
		{ID: "edu_01", Category: CategoryEducate, Type: TypeText,
			Text: "Tip: Try 4-7-8 breathing to calm quickly."},
		{ID: "edu_02", Category: CategoryEducate, Type: TypeArticle,
			URL:  "https://www.sleepfoundation.org/how-sleep-works/why-do-we-need-sleep",
			Text: "Article: Why consistent sleep improves mood & focus."},
		{ID: "edu_03", Category: CategoryEducate, Type: TypeText,
			Text: "Study hack: 25-min focus + 5-min stretch."},
		{ID: "laugh_01", Category: CategoryLaugh, Type: TypeImage,
			URL: "https://i.imgur.com/8Q3Zt.jpg", Text: "Otter encouragement 🦦"},
		{ID: "laugh_02", Category: CategoryLaugh, Type: TypeVideo,
			URL: "https://example.com/funny-dog-10s.mp4", Text: "10s dog zoomies 🐶"},
		{ID: "laugh_03", Category: CategoryLaugh, Type: TypeText,
			Text: "Joke: Why did the web dev stay calm? Because he had async support 😌"},
		{ID: "mot_01", Category: CategoryMotivate, Type: TypeText,
			Text: "Micro-win: sip water now 💧"},
		{ID: "mot_02", Category: CategoryMotivate, Type: TypeText,
			Text: "Two minutes of stretching resets your posture."},
		{ID: "mot_03", Category: CategoryMotivate, Type: TypeText,
			Text: "A 7-minute walk beats a 7-minute scroll."},
	}
}
