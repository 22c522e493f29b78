package taxonomy

import (
	"testing"
)

func TestLookupTwoLevel(t *testing.T) {
	got, ok := Lookup("health & fitness > mental health")
	if !ok {
		t.Fatal("Expected match for two-level path")
	}
	if got != "Health & Fitness > Mental Health" {
		t.Errorf("Expected canonical casing, got: %s", got)
	}
}

func TestLookupSingleLevel(t *testing.T) {
	got, ok := Lookup("tRUe cRimE")
	if !ok || got != "True Crime" {
		t.Errorf("Expected 'True Crime', got: %s (%v)", got, ok)
	}

	// Child names do not match at the top level.
	if _, ok := Lookup("Mental Health"); ok {
		t.Error("Expected child-only name to be unmatched as a single segment")
	}
}

func TestLookupMalformed(t *testing.T) {
	if _, ok := Lookup("A > B > C"); ok {
		t.Error("Expected path with two separators to be unmatched")
	}
	if _, ok := Lookup("Arts > Nonexistent"); ok {
		t.Error("Expected unknown child to be unmatched")
	}
	if _, ok := Lookup(""); ok {
		t.Error("Expected empty path to be unmatched")
	}
}

func TestClassifySimple(t *testing.T) {
	got := Classify("Technology")
	if len(got) != 1 || got[0] != "technology" {
		t.Errorf("Expected [technology], got: %v", got)
	}

	got = Classify("Health & Fitness")
	if len(got) != 2 || got[0] != "health" || got[1] != "fitness" {
		t.Errorf("Expected [health fitness], got: %v", got)
	}
}

func TestClassifyCompounds(t *testing.T) {
	got := Classify("Video Games")
	if len(got) != 1 || got[0] != "videogames" {
		t.Errorf("Expected [videogames], got: %v", got)
	}

	// A lone compound half yields nothing, not the half itself.
	if got := Classify("How"); len(got) != 0 {
		t.Errorf("Expected no slugs for lone compound half, got: %v", got)
	}

	// Hyphenated compounds arrive as a single already-joined word.
	got = Classify("Self-Improvement")
	if len(got) != 1 || got[0] != "selfimprovement" {
		t.Errorf("Expected [selfimprovement], got: %v", got)
	}
}

func TestClassifyUnknownWordsDropped(t *testing.T) {
	got := Classify("Absolutely Unmatched Nonsense")
	if len(got) != 0 {
		t.Errorf("Expected no slugs, got: %v", got)
	}
}
