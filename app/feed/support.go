package feed

// Support records which extension capabilities a document was found to
// exercise: phase number to the set of satisfied tag names. Entries are only
// ever added during a parse, never removed.
type Support map[int]map[string]bool

// Add marks a phase/tag pair as satisfied.
func (s Support) Add(phase int, tag string) {
	tags, ok := s[phase]
	if !ok {
		tags = make(map[string]bool)
		s[phase] = tags
	}
	tags[tag] = true
}

// Has reports whether a phase/tag pair has been marked.
func (s Support) Has(phase int, tag string) bool {
	return s[phase][tag]
}
