package feed

import (
	"bytes"
	"log/slog"
	"net/url"

	"github.com/feedshape/feed-shape/app/xmlnode"
)

// Parser is the entry point: one call turns a raw syndication document into
// a normalized Feed, or nil when the document is unrecoverable. A Parser is
// stateless apart from its options and safe for concurrent use.
type Parser struct {
	lenientGUID bool
}

type Option func(*Parser)

// WithLenientGUID admits items without a unique identifier. The default is
// strict rejection; controlled ingestion contexts opt in.
func WithLenientGUID() Option {
	return func(p *Parser) { p.lenientGUID = true }
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse processes one document end to end. Only document-fatal conditions
// yield nil: malformed XML, or a document that is neither RSS nor Atom
// shaped. Everything else degrades gracefully and is reflected in the
// returned feed and its support record.
func (p *Parser) Parse(data []byte) *Feed {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		slog.Warn("Discarding document: empty input")
		return nil
	}

	root, err := xmlnode.Parse(trimmed)
	if err != nil {
		slog.Warn("Discarding document: not well-formed XML", "error", err)
		return nil
	}

	docRoot, channel, itemTag := documentShape(root)
	if channel == nil {
		slog.Warn("Discarding document: neither RSS nor Atom shaped")
		return nil
	}

	aliases := namespaceAliases(docRoot)

	f := baseFeed(channel)
	applyGenericRelLinks(channel, f)
	applyNamespaceHandlers(channel, aliases, f)
	applyFeedRules(channel, f)

	for _, raw := range channel.Child(itemTag) {
		e := baseEpisode(raw)
		if reason, ok := p.validEpisode(e); !ok {
			slog.Warn("Dropping invalid item", "reason", reason, "guid", e.GUID, "title", e.Title)
			continue
		}
		applyItemRules(raw, e, f)
		f.Episodes = append(f.Episodes, e)
	}

	// Items without their own payment configuration inherit the feed-level
	// one by reference.
	if f.Value != nil {
		for _, e := range f.Episodes {
			if e.Value == nil {
				e.Value = f.Value
			}
		}
		for i := range f.LiveItems {
			if f.LiveItems[i].Value == nil {
				f.LiveItems[i].Value = f.Value
			}
		}
	}

	for _, e := range f.Episodes {
		if e.PubDate == nil {
			continue
		}
		if f.NewestItemPubDate == nil || e.PubDate.After(*f.NewestItemPubDate) {
			f.NewestItemPubDate = e.PubDate
		}
		if f.OldestItemPubDate == nil || e.PubDate.Before(*f.OldestItemPubDate) {
			f.OldestItemPubDate = e.PubDate
		}
	}
	if f.PubDate == nil {
		f.PubDate = f.NewestItemPubDate
	}

	return f
}

// documentShape decides RSS vs Atom. For Atom the feed node doubles as the
// channel; for RSS the namespace declarations live on the rss element.
func documentShape(root *xmlnode.Node) (docRoot, channel *xmlnode.Node, itemTag string) {
	if rss := xmlnode.First(root.Child("rss")); rss != nil {
		return rss, xmlnode.First(rss.Child("channel")), "item"
	}
	if fd := xmlnode.First(root.Child("feed")); fd != nil {
		return fd, fd, "entry"
	}
	return nil, nil, ""
}

// validEpisode applies the item validity rule: a parsable enclosure URL, a
// non-empty guid (unless lenient), and at least one of title/description.
func (p *Parser) validEpisode(e *Episode) (string, bool) {
	if e.Enclosure.URL == "" {
		return "missing enclosure URL", false
	}
	if u, err := url.Parse(e.Enclosure.URL); err != nil || u.Scheme == "" {
		return "unparsable enclosure URL", false
	}
	if e.GUID == "" && !p.lenientGUID {
		return "missing guid", false
	}
	if e.Title == "" && e.Description == "" {
		return "missing title and description", false
	}
	return "", true
}
