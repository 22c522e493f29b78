package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/feedshape/feed-shape/app/feed"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnection(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func TestUpsertFeed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedRepository(db)

	if err := repo.UpsertFeed("daily", "https://example.com/feed.xml"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	f, err := repo.GetFeed("daily")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if f == nil {
		t.Fatal("Expected feed to exist")
	}
	if f.FeedURL != "https://example.com/feed.xml" {
		t.Errorf("Expected feed URL to be stored, got: %s", f.FeedURL)
	}

	// Upserting again with a new URL updates in place
	if err := repo.UpsertFeed("daily", "https://example.com/v2.xml"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	updated, err := repo.GetFeed("daily")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if updated.FeedURL != "https://example.com/v2.xml" {
		t.Errorf("Expected updated feed URL, got: %s", updated.FeedURL)
	}
	if updated.ID != f.ID {
		t.Errorf("Expected stable feed ID across upserts, got: %s and %s", f.ID, updated.ID)
	}

	count, err := repo.GetFeedCount()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 feed, got: %d", count)
	}
}

func TestGetFeedNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedRepository(db)

	f, err := repo.GetFeed("missing")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if f != nil {
		t.Error("Expected nil for unknown feed")
	}

	doc, err := repo.GetFeedDocument("missing")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if doc != nil {
		t.Error("Expected nil document for unknown feed")
	}
}

func TestUpdateFeedDocument(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFeedRepository(db)

	if err := repo.UpsertFeed("daily", "https://example.com/feed.xml"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	pubDate := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	doc := &feed.Feed{
		Title:       "Test Podcast",
		Link:        "https://example.com",
		Description: "A test",
		Language:    "en",
		Medium:      "podcast",
		Image:       &feed.Image{URL: "https://example.com/art.png"},
		PubDate:     &pubDate,
		Support:     feed.Support{},
	}
	source := []byte("<rss/>")
	nextFetch := time.Now().UTC().Add(time.Hour)

	if err := repo.UpdateFeedDocument("daily", doc, source, nextFetch); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	f, err := repo.GetFeed("daily")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if f.Title != "Test Podcast" {
		t.Errorf("Expected title 'Test Podcast', got: %s", f.Title)
	}
	if f.ImageURL != "https://example.com/art.png" {
		t.Errorf("Expected image URL to be stored, got: %s", f.ImageURL)
	}
	if f.Medium != "podcast" {
		t.Errorf("Expected medium 'podcast', got: %s", f.Medium)
	}
	if f.LastFetchedAt == nil {
		t.Error("Expected last fetched timestamp to be set")
	}

	document, err := repo.GetFeedDocument("daily")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(document) == 0 {
		t.Error("Expected stored document to be non-empty")
	}

	stored, err := repo.GetFeedSource("daily")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(stored) != "<rss/>" {
		t.Errorf("Expected raw source to round-trip, got: %s", string(stored))
	}
}

func TestUpsertEpisodeAndDuplicates(t *testing.T) {
	db := setupTestDB(t)
	feedRepo := NewFeedRepository(db)
	episodeRepo := NewEpisodeRepository(db)

	if err := feedRepo.UpsertFeed("daily", "https://example.com/feed.xml"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	pubDate := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	episode := &feed.Episode{
		GUID:        "ep-1",
		Title:       "Episode One",
		Description: "First",
		Duration:    1800,
		PubDate:     &pubDate,
		Season:      &feed.Numbering{Number: 2},
		Enclosure: feed.Enclosure{
			URL:    "https://example.com/1.mp3",
			Length: 1024,
			Type:   "audio/mpeg",
		},
	}

	if err := episodeRepo.UpsertEpisode("daily", episode, "hash-1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	isDuplicate, id, err := episodeRepo.CheckDuplicate("daily", "hash-1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !isDuplicate || id == nil {
		t.Error("Expected stored episode to be reported as duplicate")
	}

	isDuplicate, _, err = episodeRepo.CheckDuplicate("daily", "hash-other")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if isDuplicate {
		t.Error("Expected unknown hash to not be a duplicate")
	}

	// Same guid replaces the stored row
	episode.Title = "Episode One (updated)"
	if err := episodeRepo.UpsertEpisode("daily", episode, "hash-2"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	episodes, err := episodeRepo.GetEpisodes("daily", 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(episodes) != 1 {
		t.Fatalf("Expected 1 episode, got: %d", len(episodes))
	}
	if episodes[0].Title != "Episode One (updated)" {
		t.Errorf("Expected updated title, got: %s", episodes[0].Title)
	}
	if episodes[0].Season == nil || *episodes[0].Season != 2 {
		t.Error("Expected season 2 to be stored")
	}

	count, err := episodeRepo.GetEpisodeCount("daily")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected episode count 1, got: %d", count)
	}
}
