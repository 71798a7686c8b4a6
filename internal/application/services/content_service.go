package services

import (
	"sort"
	"sync"

	"github.com/moodrise/moodrise-go/internal/domain/content"
	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/logging"
	"github.com/moodrise/moodrise-go/pkg/config"
)

// ContentService ranks the feed and maintains the reinforcement ledger.
// The catalog is immutable; the ledger is the only mutable piece and is
// guarded by its own lock. Unknown item ids are tolerated: the ledger
// accepts feedback for any id.
type ContentService struct {
	catalog   *content.Catalog
	profanity *ProfanityService
	logger    *logging.ChanneledLogger

	mu            sync.RWMutex
	reinforcement map[string]int
}

// NewContentService creates the content service over a loaded catalog.
func NewContentService(catalog *content.Catalog, profanity *ProfanityService, logger *logging.ChanneledLogger) *ContentService {
	return &ContentService{
		catalog:       catalog,
		profanity:     profanity,
		logger:        logger,
		reinforcement: make(map[string]int),
	}
}

// ApplyFeedback adjusts an item's ledger entry: smile +1, sad -1 with a
// floor, anything else is a no-op. Entries are created lazily and never
// deleted.
func (s *ContentService) ApplyFeedback(itemID string, reaction content.Reaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	base, exists := s.reinforcement[itemID]
	switch reaction {
	case content.ReactionSmile:
		s.reinforcement[itemID] = base + 1
	case content.ReactionSad:
		next := base - 1
		if next < config.ReinforcementFloor {
			next = config.ReinforcementFloor
		}
		s.reinforcement[itemID] = next
	default:
		if !exists {
			return
		}
	}

	if s.logger != nil {
		s.logger.Content().Debug("Feedback applied", "itemId", itemID, "reaction", string(reaction), "value", s.reinforcement[itemID])
	}
}

// Reinforcement returns the ledger value for an item and whether an entry
// exists.
func (s *ContentService) Reinforcement(itemID string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.reinforcement[itemID]
	return v, ok
}

// effectiveScore ranks by the ledger entry when one exists, otherwise the
// item's base score. Caller must hold s.mu for reading.
func (s *ContentService) effectiveScore(item content.Item) int {
	if v, ok := s.reinforcement[item.ID]; ok {
		return v
	}
	return item.Score
}

// Curated builds the feed for a tab: items from the requested category
// interleaved roughly 2:1 with a mood-chosen backup category, hidden items
// excluded, each category sorted by effective score descending with
// catalog order as the tie-break. Returned items have their text cleansed.
func (s *ContentService) Curated(mood int, tab content.Category, limit int, hiddenIDs map[string]bool) []content.Item {
	if limit <= 0 {
		limit = config.FeedDefaultLimit
	}
	backup := content.BackupFor(mood, tab)

	s.mu.RLock()
	primary := s.rankedCategory(tab, hiddenIDs)
	cross := s.rankedCategory(backup, hiddenIDs)
	s.mu.RUnlock()

	out := make([]content.Item, 0, limit)
	for len(out) < limit && (len(primary) > 0 || len(cross) > 0) {
		if len(primary) > 0 {
			out = append(out, primary[0])
			primary = primary[1:]
		}
		if len(out) < limit && len(primary) > 0 {
			out = append(out, primary[0])
			primary = primary[1:]
		}
		if len(out) < limit && len(cross) > 0 {
			out = append(out, cross[0])
			cross = cross[1:]
		}
	}

	for i := range out {
		out[i].Text = s.profanity.Cleanse(out[i].Text)
	}

	if s.logger != nil {
		s.logger.Content().Debug("Feed curated", "tab", string(tab), "backup", string(backup), "mood", mood, "count", len(out))
	}
	return out
}

// rankedCategory copies one category's visible items sorted by effective
// score. Caller must hold s.mu for reading.
func (s *ContentService) rankedCategory(cat content.Category, hiddenIDs map[string]bool) []content.Item {
	var items []content.Item
	for _, item := range s.catalog.Items() {
		if item.Category != cat || hiddenIDs[item.ID] {
			continue
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return s.effectiveScore(items[i]) > s.effectiveScore(items[j])
	})
	return items
}
