// Package taxonomy resolves free-text podcast category strings against the
// fixed two-level category taxonomy and a flat list of known category slugs.
package taxonomy

import (
	"log/slog"
	"strings"
)

// categories is the two-level taxonomy: canonical parent name to canonical
// child names. Parents without children map to an empty list.
var categories = map[string][]string{
	"Arts":       {"Books", "Design", "Fashion & Beauty", "Food", "Performing Arts", "Visual Arts"},
	"Business":   {"Careers", "Entrepreneurship", "Investing", "Management", "Marketing", "Non-Profit"},
	"Comedy":     {"Comedy Interviews", "Improv", "Stand-Up"},
	"Education":  {"Courses", "How To", "Language Learning", "Self-Improvement"},
	"Fiction":    {"Comedy Fiction", "Drama", "Science Fiction"},
	"Government": {},
	"History":    {},
	"Health & Fitness": {
		"Alternative Health", "Fitness", "Medicine", "Mental Health", "Nutrition", "Sexuality",
	},
	"Kids & Family": {"Education for Kids", "Parenting", "Pets & Animals", "Stories for Kids"},
	"Leisure": {
		"Animation & Manga", "Automotive", "Aviation", "Crafts", "Games", "Hobbies",
		"Home & Garden", "Video Games",
	},
	"Music": {"Music Commentary", "Music History", "Music Interviews"},
	"News": {
		"Business News", "Daily News", "Entertainment News", "News Commentary", "Politics",
		"Sports News", "Tech News",
	},
	"Religion & Spirituality": {
		"Buddhism", "Christianity", "Hinduism", "Islam", "Judaism", "Religion", "Spirituality",
	},
	"Science": {
		"Astronomy", "Chemistry", "Earth Sciences", "Life Sciences", "Mathematics",
		"Natural Sciences", "Nature", "Physics", "Social Sciences",
	},
	"Society & Culture": {"Documentary", "Personal Journals", "Philosophy", "Places & Travel", "Relationships"},
	"Sports": {
		"Baseball", "Basketball", "Cricket", "Fantasy Sports", "Football", "Golf", "Hockey",
		"Rugby", "Running", "Soccer", "Swimming", "Tennis", "Volleyball", "Wilderness", "Wrestling",
	},
	"Technology": {},
	"True Crime": {},
	"TV & Film":  {"After Shows", "Film History", "Film Interviews", "Film Reviews", "TV Reviews"},
}

// Lookup resolves a category path against the taxonomy. Paths containing a
// single ">" separator must match both levels exactly (case-insensitive) and
// resolve to the canonical-cased "Parent > Child" form. Single-segment paths
// match only top-level categories. The second return is false when unmatched.
func Lookup(path string) (string, bool) {
	if strings.Count(path, ">") > 1 {
		slog.Warn("Malformed category path, too many separators", "path", path)
		return "", false
	}

	if parent, child, found := strings.Cut(path, ">"); found {
		parent = strings.TrimSpace(parent)
		child = strings.TrimSpace(child)
		for name, children := range categories {
			if !strings.EqualFold(name, parent) {
				continue
			}
			for _, c := range children {
				if strings.EqualFold(c, child) {
					return name + " > " + c, true
				}
			}
			return "", false
		}
		return "", false
	}

	single := strings.TrimSpace(path)
	for name := range categories {
		if strings.EqualFold(name, single) {
			return name, true
		}
	}
	return "", false
}
