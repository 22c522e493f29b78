package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/feedshape/feed-shape/app/config"
	"github.com/feedshape/feed-shape/app/database"
)

type SyncFeedConfigTask struct {
	Task
	FeedConfig *config.Config
	feedRepo   database.FeedRepository
}

func NewSyncFeedConfigTask(feedName string, feedConfig *config.Config, feedRepo database.FeedRepository) *SyncFeedConfigTask {
	return &SyncFeedConfigTask{
		Task:       NewTask(TaskTypeSyncFeedConfig, feedName),
		FeedConfig: feedConfig,
		feedRepo:   feedRepo,
	}
}

func (t *SyncFeedConfigTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	err := t.feedRepo.UpsertFeed(
		t.FeedConfig.Name,
		t.FeedConfig.URL)
	if err != nil {
		slog.Error("Task failed", "type", "SyncFeedConfig", "feed", t.FeedName, "error", err)
		return fmt.Errorf("failed to sync subscription to database: %w", err)
	}

	slog.Info("Task completed",
		"type", "SyncFeedConfig",
		"feed", t.FeedName,
		"duration", t.GetDuration())

	return nil
}
