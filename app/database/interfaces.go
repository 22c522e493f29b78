package database

import (
	"time"

	"github.com/feedshape/feed-shape/app/feed"
)

type FeedRepository interface {
	GetFeed(feedName string) (*Feed, error)
	GetFeedCount() (int, error)
	GetFeedDocument(feedName string) ([]byte, error)
	GetFeedSource(feedName string) ([]byte, error)

	UpsertFeed(feedName, feedURL string) error
	UpdateFeedDocument(feedName string, doc *feed.Feed, sourceData []byte, nextFetch time.Time) error
}

type EpisodeRepository interface {
	GetEpisodes(feedName string, limit int) ([]Episode, error)
	GetEpisodeCount(feedName string) (int, error)

	UpsertEpisode(feedName string, episode *feed.Episode, contentHash string) error
	CheckDuplicate(feedName, contentHash string) (bool, *string, error)
}
