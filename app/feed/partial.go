package feed

// Partial updates are the only way extension rules touch the model. Each
// scope has its own update type whose fields are the strict set of fields
// extension rules own; base-handler fields never appear here. The merge
// policy is the same in both scopes: list fields concatenate in document
// order, scalar fields overwrite when set.

type feedUpdate struct {
	guid      *string
	medium    *string
	locked    *Locked
	license   *License
	location  *Location
	value     *Value
	publisher *RemoteItem

	selfURL *string
	hubURL  *string
	nextURL *string

	fundings    []Funding
	persons     []Person
	images      []SrcSetImage
	txts        []Txt
	blocked     []Block
	remoteItems []RemoteItem
	liveItems   []LiveItem
}

func (f *Feed) merge(u feedUpdate) {
	if u.guid != nil {
		f.GUID = *u.guid
	}
	if u.medium != nil {
		f.Medium = *u.medium
	}
	if u.locked != nil {
		f.Locked = u.locked
	}
	if u.license != nil {
		f.License = u.license
	}
	if u.location != nil {
		f.Location = u.location
	}
	if u.value != nil {
		f.Value = u.value
	}
	if u.publisher != nil {
		f.Publisher = u.publisher
	}
	if u.selfURL != nil {
		f.SelfURL = *u.selfURL
	}
	if u.hubURL != nil {
		f.HubURL = *u.hubURL
	}
	if u.nextURL != nil {
		f.NextURL = *u.nextURL
	}
	f.Fundings = append(f.Fundings, u.fundings...)
	f.Persons = append(f.Persons, u.persons...)
	f.Images = append(f.Images, u.images...)
	f.Txts = append(f.Txts, u.txts...)
	f.Blocked = append(f.Blocked, u.blocked...)
	f.RemoteItems = append(f.RemoteItems, u.remoteItems...)
	f.LiveItems = append(f.LiveItems, u.liveItems...)
}

type itemUpdate struct {
	season        *Numbering
	episodeNumber *Numbering
	chapters      *Chapters
	location      *Location
	license       *License
	value         *Value

	transcripts         []Transcript
	soundbites          []Soundbite
	persons             []Person
	alternateEnclosures []AlternateEnclosure
	socialInteracts     []SocialInteract
	txts                []Txt
}

func (e *Episode) merge(u itemUpdate) {
	if u.season != nil {
		e.Season = u.season
	}
	if u.episodeNumber != nil {
		e.EpisodeNumber = u.episodeNumber
	}
	if u.chapters != nil {
		e.Chapters = u.chapters
	}
	if u.location != nil {
		e.Location = u.location
	}
	if u.license != nil {
		e.License = u.license
	}
	if u.value != nil {
		e.Value = u.value
	}
	e.Transcripts = append(e.Transcripts, u.transcripts...)
	e.Soundbites = append(e.Soundbites, u.soundbites...)
	e.Persons = append(e.Persons, u.persons...)
	e.AlternateEnclosures = append(e.AlternateEnclosures, u.alternateEnclosures...)
	e.SocialInteracts = append(e.SocialInteracts, u.socialInteracts...)
	e.Txts = append(e.Txts, u.txts...)
}
