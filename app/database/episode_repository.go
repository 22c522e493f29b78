package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/feedshape/feed-shape/app/feed"
)

var _ EpisodeRepository = (*EpisodeRepositorySqlite)(nil)

// EpisodeRepositorySqlite handles database operations for episodes
type EpisodeRepositorySqlite struct {
	db *DB
}

func NewEpisodeRepository(db *DB) *EpisodeRepositorySqlite {
	return &EpisodeRepositorySqlite{db: db}
}

// UpsertEpisode stores a normalized episode, replacing a previous version
// with the same guid.
func (r *EpisodeRepositorySqlite) UpsertEpisode(feedName string, episode *feed.Episode, contentHash string) error {
	document, err := json.Marshal(episode)
	if err != nil {
		return fmt.Errorf("failed to marshal episode document: %w", err)
	}

	var season, episodeNumber *int
	if episode.Season != nil {
		n := int(episode.Season.Number)
		season = &n
	}
	if episode.EpisodeNumber != nil {
		n := int(episode.EpisodeNumber.Number)
		episodeNumber = &n
	}

	_, err = r.db.Exec(`
		INSERT INTO episodes (
			id, feed_id, guid, title, link,
			enclosure_url, enclosure_length, enclosure_type,
			duration, season, episode, published_at, document, content_hash
		)
		SELECT ?, feeds.id, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		FROM feeds WHERE feeds.name = ?
		ON CONFLICT (feed_id, guid) DO UPDATE SET
			title = excluded.title,
			link = excluded.link,
			enclosure_url = excluded.enclosure_url,
			enclosure_length = excluded.enclosure_length,
			enclosure_type = excluded.enclosure_type,
			duration = excluded.duration,
			season = excluded.season,
			episode = excluded.episode,
			published_at = excluded.published_at,
			document = excluded.document,
			content_hash = excluded.content_hash,
			updated_at = CURRENT_TIMESTAMP
	`, uuid.NewString(), episode.GUID, episode.Title, episode.Link,
		episode.Enclosure.URL, episode.Enclosure.Length, episode.Enclosure.Type,
		episode.Duration, season, episodeNumber, episode.PubDate, document, contentHash,
		feedName)

	if err != nil {
		return fmt.Errorf("failed to upsert episode: %w", err)
	}

	return nil
}

// CheckDuplicate checks if an episode with the given content hash already
// exists within the feed
func (r *EpisodeRepositorySqlite) CheckDuplicate(feedName, contentHash string) (bool, *string, error) {
	var duplicateID sql.NullString
	err := r.db.QueryRow(`
		SELECT episodes.id
		FROM episodes
		JOIN feeds ON feeds.id = episodes.feed_id
		WHERE feeds.name = ? AND episodes.content_hash = ?
		LIMIT 1
	`, feedName, contentHash).Scan(&duplicateID)

	if err == sql.ErrNoRows {
		return false, nil, nil
	}
	if err != nil {
		return false, nil, fmt.Errorf("failed to check duplicate: %w", err)
	}

	id := duplicateID.String
	return true, &id, nil
}

// GetEpisodes returns stored episodes for a feed, newest first
func (r *EpisodeRepositorySqlite) GetEpisodes(feedName string, limit int) ([]Episode, error) {
	rows, err := r.db.Query(`
		SELECT episodes.id, episodes.feed_id, episodes.guid, episodes.title, episodes.link,
		       episodes.enclosure_url, episodes.enclosure_length, episodes.enclosure_type,
		       episodes.duration, episodes.season, episodes.episode, episodes.published_at,
		       episodes.document, episodes.content_hash, episodes.created_at, episodes.updated_at
		FROM episodes
		JOIN feeds ON feeds.id = episodes.feed_id
		WHERE feeds.name = ?
		ORDER BY episodes.published_at DESC
		LIMIT ?
	`, feedName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get episodes: %w", err)
	}
	defer rows.Close()

	var episodes []Episode
	for rows.Next() {
		var e Episode
		err := rows.Scan(
			&e.ID, &e.FeedID, &e.GUID, &e.Title, &e.Link,
			&e.EnclosureURL, &e.EnclosureLength, &e.EnclosureType,
			&e.Duration, &e.Season, &e.Episode, &e.PublishedAt,
			&e.Document, &e.ContentHash, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan episode row: %w", err)
		}
		episodes = append(episodes, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating episode rows: %w", err)
	}

	return episodes, nil
}

// GetEpisodeCount returns the number of stored episodes for a feed
func (r *EpisodeRepositorySqlite) GetEpisodeCount(feedName string) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*)
		FROM episodes
		JOIN feeds ON feeds.id = episodes.feed_id
		WHERE feeds.name = ?
	`, feedName).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get episode count: %w", err)
	}
	return count, nil
}
