// Package content defines the content catalog entities and feed reactions.
package content

// Category is a feed tab. Every catalog item belongs to exactly one.
type Category string

const (
	CategoryEducate  Category = "Educate"
	CategoryLaugh    Category = "Laugh"
	CategoryMotivate Category = "Motivate"
)

// ParseCategory maps a request string onto a known category.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryEducate, CategoryLaugh, CategoryMotivate:
		return Category(s), true
	}
	return "", false
}

// ContentType describes how an item is presented.
type ContentType string

const (
	TypeText    ContentType = "text"
	TypeImage   ContentType = "image"
	TypeVideo   ContentType = "video"
	TypeArticle ContentType = "article"
)

// Reaction is user feedback on a feed item.
type Reaction string

const (
	ReactionSmile Reaction = "smile"
	ReactionSad   Reaction = "sad"
	ReactionOther Reaction = "other"
)

// Item is a single catalog entry. Items are immutable after catalog load.
type Item struct {
	ID       string      `json:"id" yaml:"id"`
	Category Category    `json:"category" yaml:"category"`
	Type     ContentType `json:"type" yaml:"type"`
	URL      string      `json:"url,omitempty" yaml:"url,omitempty"`
	Text     string      `json:"text,omitempty" yaml:"text,omitempty"`
	Score    int         `json:"score" yaml:"score"`
}

// BackupFor picks the secondary category blended into a feed alongside the
// requested tab. Low moods lean on Laugh, neutral on Motivate, high on
// Educate; the first preference that differs from the tab wins.
func BackupFor(mood int, tab Category) Category {
	var prefs [2]Category
	switch {
	case mood <= 2:
		prefs = [2]Category{CategoryLaugh, CategoryMotivate}
	case mood == 3:
		prefs = [2]Category{CategoryMotivate, CategoryEducate}
	default:
		prefs = [2]Category{CategoryEducate, CategoryMotivate}
	}

	for _, c := range prefs {
		if c != tab {
			return c
		}
	}
	return prefs[0]
}
