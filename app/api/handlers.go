package api

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/feedshape/feed-shape/app/config"
	"github.com/feedshape/feed-shape/app/database"
	"github.com/feedshape/feed-shape/app/feed"
	"github.com/feedshape/feed-shape/app/tasks"
)

func NewHandler(configCache *config.Cache, feedRepo database.FeedRepository,
	episodeRepo database.EpisodeRepository, parser *feed.Parser,
	scheduler tasks.TaskSchedulerInterface) *Handler {
	return &Handler{
		feedRepo:    feedRepo,
		episodeRepo: episodeRepo,
		configCache: configCache,
		parser:      parser,
		scheduler:   scheduler,
	}
}

// GetFeed serves the stored normalized document for a subscribed feed.
func (h *Handler) GetFeed(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	if _, err := h.configCache.GetConfig(name); err != nil {
		slog.Error("Subscription not found", "feed", name, "error", err)
		c.Status(http.StatusNotFound)
		return
	}

	stored, err := h.feedRepo.GetFeed(name)
	if err != nil {
		slog.Error("Database error", "operation", "get_feed", "feed", name, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	if stored == nil {
		slog.Error("Feed not found in database", "feed", name)
		c.Status(http.StatusNotFound)
		return
	}

	document, err := h.feedRepo.GetFeedDocument(name)
	if err != nil {
		slog.Error("Database error", "operation", "get_feed_document", "feed", name, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	if document == nil {
		// Registered but not processed yet
		c.JSON(http.StatusAccepted, gin.H{"message": "Feed not processed yet"})
		return
	}

	if episodeCount, err := h.episodeRepo.GetEpisodeCount(name); err == nil {
		c.Header("X-Feed-Episodes", strconv.Itoa(episodeCount))
	}
	c.Header("X-Feed-Name", name)
	c.Header("X-Last-Updated", stored.UpdatedAt.Format(time.RFC3339))

	c.Data(http.StatusOK, "application/json; charset=utf-8", document)
}

// ParseDocument normalizes a syndication document posted as the request
// body, without storing anything.
func (h *Handler) ParseDocument(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	doc := h.parser.Parse(data)
	if doc == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unparsable feed document"})
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if feedCount, err := h.feedRepo.GetFeedCount(); err == nil {
		health["feeds"] = feedCount
	}

	health["loaded_subscriptions"] = h.configCache.GetConfigCount()

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"loaded_subscriptions": h.configCache.GetConfigCount(),
	}

	if feedCount, err := h.feedRepo.GetFeedCount(); err == nil {
		stats["feeds"] = feedCount
	}

	totalEpisodes := 0
	for name := range h.configCache.GetConfigs() {
		if count, err := h.episodeRepo.GetEpisodeCount(name); err == nil {
			totalEpisodes += count
		}
	}
	stats["episodes"] = totalEpisodes

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) APIListFeeds(c *gin.Context) {
	configs := h.configCache.GetConfigs()

	feeds := make([]map[string]interface{}, 0, len(configs))

	for _, subscription := range configs {
		feedInfo := map[string]interface{}{
			"name":             subscription.Name,
			"url":              subscription.URL,
			"title":            "",
			"enabled":          subscription.Settings.Enabled,
			"max_items":        subscription.Settings.MaxItems,
			"refresh_interval": subscription.Settings.GetRefreshInterval().String(),
		}

		if stored, err := h.feedRepo.GetFeed(subscription.Name); err == nil && stored != nil {
			feedInfo["title"] = stored.Title
			feedInfo["medium"] = stored.Medium
			feedInfo["last_fetched_at"] = stored.LastFetchedAt
			feedInfo["next_fetch_at"] = stored.NextFetchAt
			feedInfo["updated_at"] = stored.UpdatedAt
		}

		if episodeCount, err := h.episodeRepo.GetEpisodeCount(subscription.Name); err == nil {
			feedInfo["episode_count"] = episodeCount
		}

		feeds = append(feeds, feedInfo)
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"feeds": feeds,
		"total": len(feeds),
	})
}

func (h *Handler) APIGetFeedDetails(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing feed name parameter"})
		return
	}

	subscription, err := h.configCache.GetConfig(name)
	if err != nil {
		slog.Error("Subscription not found", "feed", name, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}

	stored, err := h.feedRepo.GetFeed(name)
	if err != nil {
		slog.Error("Database error", "operation", "get_feed", "feed", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if stored == nil {
		slog.Error("Feed not found in database", "feed", name)
		c.JSON(http.StatusNotFound, gin.H{"error": "Feed not found in database"})
		return
	}

	details := map[string]interface{}{
		"name":             name,
		"url":              subscription.URL,
		"title":            stored.Title,
		"language":         stored.Language,
		"medium":           stored.Medium,
		"enabled":          subscription.Settings.Enabled,
		"max_items":        subscription.Settings.MaxItems,
		"refresh_interval": subscription.Settings.GetRefreshInterval().String(),
		"timeout":          subscription.Settings.GetTimeout().String(),
	}

	details["database"] = map[string]interface{}{
		"id":                stored.ID,
		"name":              stored.Name,
		"last_fetched_at":   stored.LastFetchedAt,
		"next_fetch_at":     stored.NextFetchAt,
		"feed_published_at": stored.FeedPublishedAt,
		"created_at":        stored.CreatedAt,
		"updated_at":        stored.UpdatedAt,
	}

	if episodeCount, err := h.episodeRepo.GetEpisodeCount(name); err == nil {
		details["episodes"] = map[string]interface{}{
			"total": episodeCount,
		}
	}

	c.JSON(http.StatusOK, details)
}

func (h *Handler) APIReparseFeed(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing feed name parameter"})
		return
	}

	if _, err := h.configCache.GetConfig(name); err != nil {
		slog.Error("Subscription not found", "feed", name, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}

	stored, err := h.feedRepo.GetFeed(name)
	if err != nil {
		slog.Error("Database error", "operation", "get_feed", "feed", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if stored == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feed not found in database"})
		return
	}

	subscription, err := h.configCache.LoadConfig(name)
	if err != nil {
		slog.Error("Error reloading subscription", "feed", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to reload subscription",
			"details": err.Error(),
		})
		return
	}

	syncTask := tasks.NewSyncFeedConfigTask(name, subscription, h.feedRepo)
	if err := h.scheduler.EnqueueTask(syncTask); err != nil {
		slog.Error("Error enqueueing sync task", "feed", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to enqueue sync task",
			"details": err.Error(),
		})
		return
	}

	reparseTask := tasks.NewReparseFeedTask(name, subscription, h.parser, h.feedRepo, h.episodeRepo)
	if err := h.scheduler.EnqueueTask(reparseTask); err != nil {
		slog.Error("Error enqueueing reparse task", "feed", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to enqueue reparse task",
			"details": err.Error(),
		})
		return
	}

	response := gin.H{
		"success": true,
		"message": "Subscription reloaded and tasks enqueued successfully",
		"feed": gin.H{
			"name":  name,
			"title": stored.Title,
			"url":   subscription.URL,
		},
		"tasks": []gin.H{
			{
				"id":   syncTask.ID,
				"type": syncTask.Type,
			},
			{
				"id":   reparseTask.ID,
				"type": reparseTask.Type,
			},
		},
	}

	c.JSON(http.StatusOK, response)
}
