package feed

import (
	"time"
)

// Feed is the normalized semantic model of one syndication document. Base
// RSS/Atom fields are owned by the base handler; podcast-namespace fields are
// owned by the extension rules that produce them.
type Feed struct {
	Title         string     `json:"title"`
	Link          string     `json:"link"`
	Description   string     `json:"description"`
	Language      string     `json:"language,omitempty"`
	Generator     string     `json:"generator,omitempty"`
	PubDate       *time.Time `json:"pubDate,omitempty"`
	LastBuildDate *time.Time `json:"lastBuildDate,omitempty"`
	Explicit      bool       `json:"explicit"`
	Author        string     `json:"author,omitempty"`
	Owner         *Owner     `json:"owner,omitempty"`
	Type          string     `json:"type,omitempty"`
	Image         *Image     `json:"image,omitempty"`

	// Categories holds normalized single-word slugs; ItunesCategories holds
	// canonical-cased "Parent > Child" taxonomy paths.
	Categories       []string `json:"categories,omitempty"`
	ItunesCategories []string `json:"itunesCategories,omitempty"`

	// Podcast namespace extensions.
	GUID        string        `json:"guid,omitempty"`
	Medium      string        `json:"medium,omitempty"`
	Locked      *Locked       `json:"locked,omitempty"`
	Fundings    []Funding     `json:"fundings,omitempty"`
	License     *License      `json:"license,omitempty"`
	Persons     []Person      `json:"persons,omitempty"`
	Location    *Location     `json:"location,omitempty"`
	Value       *Value        `json:"value,omitempty"`
	Images      []SrcSetImage `json:"images,omitempty"`
	Txts        []Txt         `json:"txts,omitempty"`
	Blocked     []Block       `json:"blocked,omitempty"`
	RemoteItems []RemoteItem  `json:"remoteItems,omitempty"`
	Publisher   *RemoteItem   `json:"publisher,omitempty"`
	LiveItems   []LiveItem    `json:"liveItems,omitempty"`

	// Relation links resolved through the namespace dispatch layer.
	SelfURL string `json:"selfUrl,omitempty"`
	HubURL  string `json:"hubUrl,omitempty"`
	NextURL string `json:"nextUrl,omitempty"`

	Episodes          []*Episode `json:"episodes"`
	NewestItemPubDate *time.Time `json:"newestItemPubDate,omitempty"`
	OldestItemPubDate *time.Time `json:"oldestItemPubDate,omitempty"`

	Support Support `json:"support"`
}

// Episode is the normalized model of one item or entry.
type Episode struct {
	GUID        string     `json:"guid"`
	Title       string     `json:"title"`
	Link        string     `json:"link,omitempty"`
	Description string     `json:"description"`
	Author      string     `json:"author,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	PubDate     *time.Time `json:"pubDate,omitempty"`
	Duration    int        `json:"duration"`
	Explicit    bool       `json:"explicit"`
	Enclosure   Enclosure  `json:"enclosure"`

	Season              *Numbering           `json:"season,omitempty"`
	EpisodeNumber       *Numbering           `json:"episode,omitempty"`
	Transcripts         []Transcript         `json:"transcripts,omitempty"`
	Chapters            *Chapters            `json:"chapters,omitempty"`
	Soundbites          []Soundbite          `json:"soundbites,omitempty"`
	Persons             []Person             `json:"persons,omitempty"`
	Location            *Location            `json:"location,omitempty"`
	License             *License             `json:"license,omitempty"`
	Value               *Value               `json:"value,omitempty"`
	AlternateEnclosures []AlternateEnclosure `json:"alternateEnclosures,omitempty"`
	SocialInteracts     []SocialInteract     `json:"socialInteracts,omitempty"`
	Txts                []Txt                `json:"txts,omitempty"`
}

// Owner is the itunes feed owner contact.
type Owner struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Image is the feed artwork, from <image>, <itunes:image> or <logo>.
type Image struct {
	URL    string `json:"url"`
	Title  string `json:"title,omitempty"`
	Link   string `json:"link,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Enclosure is the mandatory media payload reference of an episode.
type Enclosure struct {
	URL    string `json:"url"`
	Length int64  `json:"length"`
	Type   string `json:"type"`
}

// Numbering is a season or episode number with an optional display override.
type Numbering struct {
	Number float64 `json:"number"`
	Name   string  `json:"name,omitempty"`
}

// Locked records whether the feed owner allows importing to other platforms.
type Locked struct {
	Locked bool   `json:"locked"`
	Owner  string `json:"owner,omitempty"`
}

// Funding is one donation/support link.
type Funding struct {
	URL     string `json:"url"`
	Message string `json:"message,omitempty"`
}

// License identifies the license the feed or episode content is released
// under. URL resolves known identifiers through the license registry.
type License struct {
	Identifier string `json:"identifier"`
	URL        string `json:"url,omitempty"`
}

// Person is a host, guest or other credited participant.
type Person struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Group string `json:"group,omitempty"`
	Img   string `json:"img,omitempty"`
	Href  string `json:"href,omitempty"`
}

// Location describes what place a feed or episode is about.
type Location struct {
	Name string `json:"name"`
	Geo  string `json:"geo,omitempty"`
	OSM  string `json:"osm,omitempty"`
}

// Transcript is a reference to an episode transcript document.
type Transcript struct {
	URL      string `json:"url"`
	Type     string `json:"type,omitempty"`
	Language string `json:"language,omitempty"`
	Rel      string `json:"rel,omitempty"`
}

// Chapters is a reference to an external chapters document.
type Chapters struct {
	URL  string `json:"url"`
	Type string `json:"type,omitempty"`
}

// Soundbite is a highlighted clip within an episode.
type Soundbite struct {
	StartTime float64 `json:"startTime"`
	Duration  float64 `json:"duration"`
	Title     string  `json:"title,omitempty"`
}

// SrcSetImage is one candidate from a podcast:images srcset declaration.
type SrcSetImage struct {
	URL   string `json:"url"`
	Width int    `json:"width,omitempty"`
}

// Txt is a free-form text purpose/value pair.
type Txt struct {
	Purpose string `json:"purpose,omitempty"`
	Value   string `json:"value"`
}

// Block is a platform block-list entry. An empty ID addresses all platforms.
type Block struct {
	ID      string `json:"id,omitempty"`
	Blocked bool   `json:"blocked"`
}

// RemoteItem is a cross-reference to a feed or item hosted elsewhere.
type RemoteItem struct {
	FeedGUID string `json:"feedGuid"`
	FeedURL  string `json:"feedUrl,omitempty"`
	ItemGUID string `json:"itemGuid,omitempty"`
	Medium   string `json:"medium,omitempty"`
}

// Value is a payment-routing configuration.
type Value struct {
	Type       string           `json:"type"`
	Method     string           `json:"method"`
	Suggested  string           `json:"suggested,omitempty"`
	Recipients []ValueRecipient `json:"recipients,omitempty"`
	TimeSplits []ValueTimeSplit `json:"timeSplits,omitempty"`
}

// ValueRecipient is one payment destination with its split share.
type ValueRecipient struct {
	Name        string  `json:"name,omitempty"`
	Type        string  `json:"type"`
	Address     string  `json:"address"`
	CustomKey   string  `json:"customKey,omitempty"`
	CustomValue string  `json:"customValue,omitempty"`
	Split       float64 `json:"split"`
	Fee         bool    `json:"fee,omitempty"`
}

// ValueTimeSplit redirects a share of payments to a remote item during a
// playback time window.
type ValueTimeSplit struct {
	StartTime        float64     `json:"startTime"`
	Duration         float64     `json:"duration"`
	RemoteStartTime  float64     `json:"remoteStartTime,omitempty"`
	RemotePercentage float64     `json:"remotePercentage,omitempty"`
	RemoteItem       *RemoteItem `json:"remoteItem,omitempty"`
}

// AlternateEnclosure is an alternate encoding of the episode media, with one
// or more sources it can be fetched from.
type AlternateEnclosure struct {
	Type      string            `json:"type"`
	Length    int64             `json:"length,omitempty"`
	Bitrate   float64           `json:"bitrate,omitempty"`
	Height    int               `json:"height,omitempty"`
	Language  string            `json:"language,omitempty"`
	Title     string            `json:"title,omitempty"`
	Rel       string            `json:"rel,omitempty"`
	Default   bool              `json:"default,omitempty"`
	Sources   []EnclosureSource `json:"sources,omitempty"`
	Integrity *Integrity        `json:"integrity,omitempty"`
}

// EnclosureSource is one URI an alternate enclosure is available at.
type EnclosureSource struct {
	URI         string `json:"uri"`
	ContentType string `json:"contentType,omitempty"`
}

// Integrity carries a checksum or signature for an alternate enclosure.
type Integrity struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// SocialInteract points at the social "root post" for an episode.
type SocialInteract struct {
	Protocol   string `json:"protocol"`
	URI        string `json:"uri"`
	AccountID  string `json:"accountId,omitempty"`
	AccountURL string `json:"accountUrl,omitempty"`
	Priority   int    `json:"priority,omitempty"`
}

// LiveItem is an episode-shaped entry for a scheduled or running broadcast.
type LiveItem struct {
	Episode
	Status       string        `json:"status"`
	Start        *time.Time    `json:"start,omitempty"`
	End          *time.Time    `json:"end,omitempty"`
	ContentLinks []ContentLink `json:"contentLinks,omitempty"`
	Chat         *Chat         `json:"chat,omitempty"`
}

// ContentLink is a place where a live stream can be watched or heard.
type ContentLink struct {
	Href  string `json:"href"`
	Title string `json:"title,omitempty"`
}

// Chat is the chat room metadata attached to a live item.
type Chat struct {
	Server    string `json:"server"`
	Protocol  string `json:"protocol,omitempty"`
	AccountID string `json:"accountId,omitempty"`
	Space     string `json:"space,omitempty"`
}
