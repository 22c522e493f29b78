package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/feedshape/feed-shape/app/cfg"
	"github.com/feedshape/feed-shape/app/config"
	"github.com/feedshape/feed-shape/app/database"
	"github.com/feedshape/feed-shape/app/feed"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

type Scheduler struct {
	feedRepo    database.FeedRepository
	episodeRepo database.EpisodeRepository
	configCache *config.Cache
	httpClient  *http.Client
	parser      *feed.Parser
	userAgent   string
	interval    time.Duration
	workerCount int
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	taskQueue   chan TaskInterface
}

func NewScheduler(configCache *config.Cache, feedRepo database.FeedRepository,
	episodeRepo database.EpisodeRepository, httpClient *http.Client, parser *feed.Parser) TaskSchedulerInterface {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := cfg.Get()

	return &Scheduler{
		feedRepo:    feedRepo,
		episodeRepo: episodeRepo,
		configCache: configCache,
		httpClient:  httpClient,
		parser:      parser,
		userAgent:   cfg.UserAgent,
		interval:    time.Duration(cfg.SchedulerInterval) * time.Second,
		workerCount: cfg.WorkerCount,
		ctx:         ctx,
		cancel:      cancel,
		taskQueue:   make(chan TaskInterface, 300),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.enqueueStartupTasks()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.enqueueTasks()
			}
		}
	}()

}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	close(s.taskQueue)
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case s.taskQueue <- task:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

func (s *Scheduler) enqueueStartupTasks() {
	subscriptions := s.configCache.GetConfigs()
	if len(subscriptions) == 0 {
		slog.Debug("No subscriptions found")
		return
	}

	slog.Debug("Processing subscriptions", "count", len(subscriptions))

	for _, subscription := range subscriptions {
		syncTask := NewSyncFeedConfigTask(subscription.Name, subscription, s.feedRepo)
		if err := s.EnqueueTask(syncTask); err != nil {
			slog.Warn("Failed to enqueue SyncFeedConfigTask", "feed", subscription.Name, "error", err)
			continue
		}

		if !subscription.Settings.Enabled {
			slog.Debug("Subscription disabled, skipping ProcessFeedTask", "feed", subscription.Name)
			continue
		}

		processTask := NewProcessFeedTask(subscription.Name, subscription, s.httpClient, s.parser, s.feedRepo, s.episodeRepo, s.userAgent)
		if err := s.EnqueueTask(processTask); err != nil {
			slog.Warn("Failed to enqueue ProcessFeedTask", "feed", subscription.Name, "error", err)
		}
	}
}

func (s *Scheduler) enqueueTasks() {
	subscriptions := s.configCache.GetEnabledConfigs()
	if len(subscriptions) == 0 {
		slog.Debug("No enabled subscriptions found")
		return
	}

	slog.Debug("Checking enabled subscriptions for due refreshes", "count", len(subscriptions))

	for _, subscription := range subscriptions {
		stored, err := s.feedRepo.GetFeed(subscription.Name)
		if err != nil {
			slog.Warn("Failed to get feed from database, skipping", "feed", subscription.Name, "error", err)
			continue
		}
		if stored == nil {
			slog.Warn("Feed not found in database, skipping", "feed", subscription.Name)
			continue
		}

		now := time.Now().UTC()
		if stored.NextFetchAt != nil && stored.NextFetchAt.After(now) {
			slog.Debug("Feed not due for refresh yet", "feed", subscription.Name, "next_fetch_at", stored.NextFetchAt)
			continue
		}

		processTask := NewProcessFeedTask(subscription.Name, subscription, s.httpClient, s.parser, s.feedRepo, s.episodeRepo, s.userAgent)
		if err := s.EnqueueTask(processTask); err != nil {
			slog.Warn("Failed to enqueue ProcessFeedTask", "feed", subscription.Name, "error", err)
		}
	}
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return
			}
			s.executeTask(id, task)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
	defer cancel()

	err := task.Execute(taskCtx)

	if err != nil {
		slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", err)

		if task.CanRetry() {
			task.IncrementRetryCount()
			retryDelay := time.Duration(1<<uint(task.GetRetryCount()-1)) * time.Second
			if retryDelay > 30*time.Second {
				retryDelay = 30 * time.Second
			}

			slog.Warn("Task retry scheduled", "type", string(task.GetType()), "feed", task.GetFeedName(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "delay", retryDelay.String())

			go func() {
				time.Sleep(retryDelay)
				select {
				case <-s.ctx.Done():
					slog.Debug("Scheduler stopped, skipping task retry", "type", string(task.GetType()), "id", task.GetID())
					return
				default:
					if retryErr := s.EnqueueTask(task); retryErr != nil {
						slog.Error("Failed to re-enqueue task for retry", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", retryErr)
					}
				}
			}()
		} else {
			slog.Error("Task failed after maximum retries", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "last_error", err)
		}
	}
}
