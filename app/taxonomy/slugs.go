package taxonomy

import (
	"log/slog"
	"strings"
)

// slugs is the flat allow-list of known single-word category slugs. Derived
// from the category identifiers registered by the podcast index.
var slugs = map[string]bool{
	"arts": true, "books": true, "design": true, "fashion": true, "beauty": true,
	"food": true, "performing": true, "visual": true, "business": true,
	"careers": true, "entrepreneurship": true, "investing": true, "management": true,
	"marketing": true, "nonprofit": true, "comedy": true, "interviews": true,
	"improv": true, "standup": true, "education": true, "courses": true,
	"howto": true, "language": true, "learning": true, "selfimprovement": true,
	"fiction": true, "drama": true, "history": true, "health": true, "fitness": true,
	"alternative": true, "medicine": true, "mental": true, "nutrition": true,
	"sexuality": true, "kids": true, "family": true, "parenting": true, "pets": true,
	"animals": true, "stories": true, "leisure": true, "animation": true,
	"manga": true, "automotive": true, "aviation": true, "crafts": true,
	"games": true, "hobbies": true, "home": true, "garden": true,
	"videogames": true, "music": true, "commentary": true, "news": true,
	"daily": true, "entertainment": true, "government": true, "politics": true,
	"buddhism": true, "christianity": true, "hinduism": true, "islam": true,
	"judaism": true, "religion": true, "spirituality": true, "science": true,
	"astronomy": true, "chemistry": true, "earth": true, "life": true,
	"mathematics": true, "natural": true, "nature": true, "physics": true,
	"social": true, "society": true, "culture": true, "documentary": true,
	"personal": true, "journals": true, "philosophy": true, "places": true,
	"travel": true, "relationships": true, "sports": true, "baseball": true,
	"basketball": true, "cricket": true, "fantasy": true, "football": true,
	"golf": true, "hockey": true, "rugby": true, "running": true, "soccer": true,
	"swimming": true, "tennis": true, "volleyball": true, "wilderness": true,
	"wrestling": true, "technology": true, "truecrime": true, "tv": true,
	"film": true, "aftershows": true, "reviews": true, "climate": true,
	"weather": true, "tabletop": true, "roleplaying": true, "cryptocurrency": true,
}

// compounds are slug pairs that only count when both halves appear among the
// words of one original category string. Neither half is a valid slug alone.
// Ordered so repeated classification of the same string is deterministic.
var compounds = []struct {
	slug  string
	first string
	rest  string
}{
	{"videogames", "video", "games"},
	{"truecrime", "true", "crime"},
	{"aftershows", "after", "shows"},
	{"selfimprovement", "self", "improvement"},
	{"howto", "how", "to"},
}

// Classify normalizes one free-text category string into known slugs. The
// string is lower-cased, stripped of ampersands and hyphens, and split on
// whitespace; each resulting word is matched against the allow-list, and
// compound pairs whose both halves co-occur synthesize their combined slug.
// Unknown words are dropped; a half of a compound without its partner is
// dropped with a warning rather than ingested alone.
func Classify(category string) []string {
	normalized := strings.ToLower(category)
	normalized = strings.ReplaceAll(normalized, "&", " ")
	normalized = strings.ReplaceAll(normalized, "-", "")
	words := strings.Fields(normalized)
	if len(words) == 0 {
		return nil
	}

	present := make(map[string]bool, len(words))
	for _, w := range words {
		present[w] = true
	}

	consumed := make(map[string]bool)
	var out []string
	for _, c := range compounds {
		if present[c.first] && present[c.rest] {
			consumed[c.first] = true
			consumed[c.rest] = true
			out = append(out, c.slug)
		}
	}

	for _, w := range words {
		if consumed[w] {
			continue
		}
		if slugs[w] {
			out = append(out, w)
			continue
		}
		if isCompoundHalf(w) {
			slog.Warn("Category compound half without its partner, dropping", "word", w, "category", category)
		}
	}

	return dedupe(out)
}

func isCompoundHalf(w string) bool {
	for _, c := range compounds {
		if w == c.first || w == c.rest {
			return true
		}
	}
	return false
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
