package api

import (
	"github.com/feedshape/feed-shape/app/config"
	"github.com/feedshape/feed-shape/app/database"
	"github.com/feedshape/feed-shape/app/feed"
	"github.com/feedshape/feed-shape/app/tasks"
)

type Handler struct {
	feedRepo    database.FeedRepository
	episodeRepo database.EpisodeRepository
	configCache *config.Cache
	parser      *feed.Parser
	scheduler   tasks.TaskSchedulerInterface
}
