package tasks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/feedshape/feed-shape/app/config"
	"github.com/feedshape/feed-shape/app/database"
	"github.com/feedshape/feed-shape/app/feed"
)

type ProcessFeedTask struct {
	Task
	FeedConfig  *config.Config
	httpClient  *http.Client
	parser      *feed.Parser
	feedRepo    database.FeedRepository
	episodeRepo database.EpisodeRepository
	userAgent   string
}

func NewProcessFeedTask(feedName string, feedConfig *config.Config, httpClient *http.Client, parser *feed.Parser, feedRepo database.FeedRepository, episodeRepo database.EpisodeRepository, userAgent string) *ProcessFeedTask {
	return &ProcessFeedTask{
		Task:        NewTask(TaskTypeProcessFeed, feedName),
		FeedConfig:  feedConfig,
		httpClient:  httpClient,
		parser:      parser,
		feedRepo:    feedRepo,
		episodeRepo: episodeRepo,
		userAgent:   userAgent,
	}
}

func (t *ProcessFeedTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if !t.FeedConfig.Settings.Enabled {
		slog.Debug("Subscription disabled, skipping", "feed", t.FeedName)
		return nil
	}

	data, err := t.fetchFeed(ctx, t.FeedConfig.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch feed: %w", err)
	}

	doc := t.parser.Parse(data)
	if doc == nil {
		return fmt.Errorf("unparsable feed document: %s", t.FeedConfig.URL)
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
		"type", "ProcessFeed",
		"feed", t.FeedName,
		"duration", t.GetDuration(),
		"total", len(doc.Episodes),
		"duplicates", duplicateCount,
		"new", newCount)

	return nil
}

func (t *ProcessFeedTask) fetchFeed(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, t.FeedConfig.Settings.GetTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
