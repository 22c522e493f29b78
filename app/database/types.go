package database

import (
	"time"
)

type Feed struct {
	ID              string // Database UUID
	Name            string // Subscription identifier derived from filename
	FeedURL         string // RSS/Atom feed URL from the subscription file
	Title           string
	Link            string
	Description     string
	ImageURL        string
	Language        string
	Medium          string
	LastFetchedAt   *time.Time
	NextFetchAt     *time.Time
	FeedPublishedAt *time.Time // Feed's own pubDate/published from RSS/Atom
	CreatedAt       time.Time
	UpdatedAt       time.Time // Tracks last successful processing
}

type Episode struct {
	ID              string
	FeedID          string
	GUID            string
	Title           string
	Link            string
	EnclosureURL    string
	EnclosureLength int64
	EnclosureType   string
	Duration        int
	Season          *int
	Episode         *int
	PublishedAt     *time.Time
	Document        []byte // Normalized episode JSON
	ContentHash     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
