package services

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholder replaces each banned word in outgoing text.
const placeholder = "•••"

// bannedWords is the fixed demo list.
var bannedWords = []string{"damn", "hell", "shit", "fuck", "bitch", "asshole"}

// ProfanityService rewrites banned words in outgoing content text.
// Matching is case-insensitive and whole-word; cleansing is idempotent
// since the placeholder never matches the banned set.
type ProfanityService struct {
	pattern *regexp.Regexp
}

// NewProfanityService compiles the banned-word matcher once.
func NewProfanityService() *ProfanityService {
	return &ProfanityService{
		pattern: regexp.MustCompile(fmt.Sprintf(`(?i)\b(%s)\b`, strings.Join(bannedWords, "|"))),
	}
}

// Cleanse returns the text with every banned word replaced.
func (s *ProfanityService) Cleanse(text string) string {
	if text == "" {
		return text
	}
	return s.pattern.ReplaceAllString(text, placeholder)
}
