package tasks

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/feedshape/feed-shape/app/database"
	"github.com/feedshape/feed-shape/app/feed"
)

// episodeContentHash identifies an episode's payload for duplicate
// detection, independent of its position in the document.
func episodeContentHash(e *feed.Episode) string {
	h := sha256.New()
	h.Write([]byte(e.GUID))
	h.Write([]byte{0})
	h.Write([]byte(e.Enclosure.URL))
	h.Write([]byte{0})
	h.Write([]byte(e.Title))
	return hex.EncodeToString(h.Sum(nil))
}

// storeEpisodes persists the episodes of a parsed document, newest first up
// to maxItems, skipping episodes whose content is already stored.
func storeEpisodes(feedName string, doc *feed.Feed, maxItems int, episodeRepo database.EpisodeRepository) (int, int, error) {
	newCount := 0
	duplicateCount := 0

	for i, episode := range doc.Episodes {
		if maxItems > 0 && i >= maxItems {
			break
		}

		contentHash := episodeContentHash(episode)
		isDuplicate, _, err := episodeRepo.CheckDuplicate(feedName, contentHash)
		if err != nil {
			return newCount, duplicateCount, fmt.Errorf("failed to check for duplicates: %w", err)
		}
		if isDuplicate {
			duplicateCount++
			continue
		}

		if err := episodeRepo.UpsertEpisode(feedName, episode, contentHash); err != nil {
			return newCount, duplicateCount, fmt.Errorf("failed to upsert episode: %w", err)
		}
		newCount++
	}

	return newCount, duplicateCount, nil
}
