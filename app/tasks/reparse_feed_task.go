package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/feedshape/feed-shape/app/config"
	"github.com/feedshape/feed-shape/app/database"
	"github.com/feedshape/feed-shape/app/feed"
)

// ReparseFeedTask re-runs normalization over the stored raw document of a
// feed without refetching it. Useful after parser or subscription changes.
type ReparseFeedTask struct {
	Task
	FeedConfig  *config.Config
	parser      *feed.Parser
	feedRepo    database.FeedRepository
	episodeRepo database.EpisodeRepository
}

func NewReparseFeedTask(feedName string, feedConfig *config.Config, parser *feed.Parser, feedRepo database.FeedRepository, episodeRepo database.EpisodeRepository) *ReparseFeedTask {
	return &ReparseFeedTask{
		Task:        NewTask(TaskTypeReparseFeed, feedName),
		FeedConfig:  feedConfig,
		parser:      parser,
		feedRepo:    feedRepo,
		episodeRepo: episodeRepo,
	}
}

func (t *ReparseFeedTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	data, err := t.feedRepo.GetFeedSource(t.FeedName)
	if err != nil {
		return fmt.Errorf("failed to get stored feed source: %w", err)
	}
	if len(data) == 0 {
		slog.Warn("No stored source to reparse, skipping", "feed", t.FeedName)
		return nil
	}

	doc := t.parser.Parse(data)
	if doc == nil {
		return fmt.Errorf("stored feed source is unparsable: %s", t.FeedName)
	}

	nextFetch := time.Now().UTC().Add(t.FeedConfig.Settings.GetRefreshInterval())
	if err := t.feedRepo.UpdateFeedDocument(t.FeedName, doc, data, nextFetch); err != nil {
		return fmt.Errorf("failed to store feed document: %w", err)
	}

	newCount, duplicateCount, err := storeEpisodes(t.FeedName, doc, t.FeedConfig.Settings.MaxItems, t.episodeRepo)
	if err != nil {
		return fmt.Errorf("failed to store episodes: %w", err)
	}

	slog.Info("Task completed",
		"type", "ReparseFeed",
		"feed", t.FeedName,
		"duration", t.GetDuration(),
		"total", len(doc.Episodes),
		"duplicates", duplicateCount,
		"new", newCount)

	return nil
}
