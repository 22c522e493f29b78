package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/feedshape/feed-shape/app/feed"
)

var _ FeedRepository = (*FeedRepositorySqlite)(nil)

// FeedRepositorySqlite handles database operations for feeds
type FeedRepositorySqlite struct {
	db *DB
}

func NewFeedRepository(db *DB) *FeedRepositorySqlite {
	return &FeedRepositorySqlite{db: db}
}

// UpsertFeed inserts or updates a feed subscription
func (r *FeedRepositorySqlite) UpsertFeed(feedName, feedURL string) error {
	_, err := r.db.Exec(`
		INSERT INTO feeds (id, name, feed_url)
		VALUES (?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			feed_url = excluded.feed_url,
			updated_at = CURRENT_TIMESTAMP
	`, uuid.NewString(), feedName, feedURL)

	if err != nil {
		return fmt.Errorf("failed to upsert feed: %w", err)
	}

	return nil
}

// UpdateFeedDocument stores the normalized feed document and the raw source
// it was produced from after successful processing, and schedules the next
// fetch.
func (r *FeedRepositorySqlite) UpdateFeedDocument(feedName string, doc *feed.Feed, sourceData []byte, nextFetch time.Time) error {
	document, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal feed document: %w", err)
	}

	var imageURL string
	if doc.Image != nil {
		imageURL = doc.Image.URL
	}

	_, err = r.db.Exec(`
		UPDATE feeds
		SET title = ?, link = ?, description = ?, image_url = ?, language = ?,
		    medium = ?, document = ?, source_data = ?, feed_published_at = ?,
		    last_fetched_at = CURRENT_TIMESTAMP, next_fetch_at = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE name = ?
	`, doc.Title, doc.Link, doc.Description, imageURL, doc.Language,
		doc.Medium, document, sourceData, doc.PubDate, nextFetch, feedName)

	if err != nil {
		return fmt.Errorf("failed to update feed document: %w", err)
	}

	return nil
}

// GetFeed retrieves a feed by its subscription name
func (r *FeedRepositorySqlite) GetFeed(feedName string) (*Feed, error) {
	var f Feed
	err := r.db.QueryRow(`
		SELECT id, name, feed_url, title, link, description, image_url, language, medium,
		       last_fetched_at, next_fetch_at, feed_published_at, created_at, updated_at
		FROM feeds
		WHERE name = ?
	`, feedName).Scan(
		&f.ID, &f.Name, &f.FeedURL, &f.Title, &f.Link, &f.Description, &f.ImageURL,
		&f.Language, &f.Medium, &f.LastFetchedAt, &f.NextFetchAt, &f.FeedPublishedAt,
		&f.CreatedAt, &f.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feed: %w", err)
	}

	return &f, nil
}

// GetFeedDocument retrieves the stored normalized document for a feed.
// Returns nil when the feed has not been processed yet.
func (r *FeedRepositorySqlite) GetFeedDocument(feedName string) ([]byte, error) {
	var document []byte
	err := r.db.QueryRow(`
		SELECT document FROM feeds WHERE name = ?
	`, feedName).Scan(&document)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feed document: %w", err)
	}

	return document, nil
}

// GetFeedSource retrieves the raw syndication document the feed was last
// processed from. Used to reprocess a feed without refetching it.
func (r *FeedRepositorySqlite) GetFeedSource(feedName string) ([]byte, error) {
	var sourceData []byte
	err := r.db.QueryRow(`
		SELECT source_data FROM feeds WHERE name = ?
	`, feedName).Scan(&sourceData)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get feed source: %w", err)
	}

	return sourceData, nil
}

// GetFeedCount returns the total number of feeds
func (r *FeedRepositorySqlite) GetFeedCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM feeds").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get feed count: %w", err)
	}
	return count, nil
}
